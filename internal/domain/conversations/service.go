package conversations

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fellipesaraiva88/aupet-ai-connect-sub003/internal/platform/logger"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrSendFailed   = errors.New("send failed")
)

// OutboundSender é o gateway de saída (adapter de WhatsApp).
type OutboundSender interface {
	Send(ctx context.Context, phone, body string) error
}

// PhoneResolver resolve o telefone canônico do tutor para o envio.
type PhoneResolver interface {
	PhoneOf(ctx context.Context, customerID string) (string, error)
}

type Service struct {
	repo   Repository
	sender OutboundSender
	phones PhoneResolver
	log    logger.Logger
	now    func() time.Time
}

func NewService(repo Repository, sender OutboundSender, phones PhoneResolver, log logger.Logger) *Service {
	if log == nil {
		log = logger.New(logger.Options{Level: logger.Error, Out: io.Discard})
	}
	return &Service{
		repo:   repo,
		sender: sender,
		phones: phones,
		log:    log,
		now:    time.Now,
	}
}

// EnsureOpen devolve a conversa aberta do tutor, criando uma se não existir.
func (s *Service) EnsureOpen(ctx context.Context, customerID string) (Conversation, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return Conversation{}, ErrInvalidInput
	}

	if c, err := s.repo.GetOpenByCustomer(ctx, customerID); err == nil {
		return c, nil
	}

	now := s.now()
	c := Conversation{
		ID:            uuid.NewString(),
		CustomerID:    customerID,
		Channel:       ChannelWhatsApp,
		Status:        StatusOpen,
		LastMessageAt: now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.repo.CreateConversation(ctx, c); err != nil {
		return Conversation{}, err
	}
	return c, nil
}

// RecordInbound registra uma mensagem recebida pelo webhook do gateway.
// Garante a conversa aberta do tutor; se a última foi resolvida, uma
// thread nova é aberta.
func (s *Service) RecordInbound(ctx context.Context, customerID, body string) (Message, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return Message{}, ErrInvalidInput
	}

	c, err := s.EnsureOpen(ctx, customerID)
	if err != nil {
		return Message{}, err
	}

	now := s.now()
	m := Message{
		ID:             uuid.NewString(),
		ConversationID: c.ID,
		Direction:      DirectionInbound,
		Body:           body,
		Status:         MessageReceived,
		CreatedAt:      now,
	}
	if err := s.repo.CreateMessage(ctx, m); err != nil {
		return Message{}, err
	}

	c.LastMessageAt = now
	c.UpdatedAt = now
	if err := s.repo.UpdateConversation(ctx, c); err != nil {
		return Message{}, err
	}

	return m, nil
}

// Send grava a mensagem como pending, tenta o gateway e marca sent ou
// failed. Em falha a mensagem fica no histórico como failed e o erro
// sobe embrulhado em ErrSendFailed.
func (s *Service) Send(ctx context.Context, conversationID, actorID, body string) (Message, error) {
	conversationID = strings.TrimSpace(conversationID)
	body = strings.TrimSpace(body)
	if conversationID == "" || body == "" {
		return Message{}, ErrInvalidInput
	}

	c, err := s.repo.GetConversation(ctx, conversationID)
	if err != nil {
		return Message{}, ErrNotFound
	}

	phone, err := s.phones.PhoneOf(ctx, c.CustomerID)
	if err != nil {
		return Message{}, fmt.Errorf("resolve phone: %w", err)
	}

	now := s.now()
	m := Message{
		ID:             uuid.NewString(),
		ConversationID: c.ID,
		Direction:      DirectionOutbound,
		Body:           body,
		Status:         MessagePending,
		ActorID:        strings.TrimSpace(actorID),
		CreatedAt:      now,
	}
	if err := s.repo.CreateMessage(ctx, m); err != nil {
		return Message{}, err
	}

	if err := s.sender.Send(ctx, phone, body); err != nil {
		m.Status = MessageFailed
		_ = s.repo.UpdateMessage(ctx, m) // best-effort: o erro original importa mais
		s.log.Error("conversations: envio falhou", map[string]any{
			"conversation_id": c.ID,
			"err":             err.Error(),
		})
		return m, fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	m.Status = MessageSent
	if err := s.repo.UpdateMessage(ctx, m); err != nil {
		return Message{}, err
	}

	c.LastMessageAt = now
	c.UpdatedAt = now
	if err := s.repo.UpdateConversation(ctx, c); err != nil {
		return Message{}, err
	}

	return m, nil
}

func (s *Service) ListConversations(ctx context.Context, filter ListFilter) ([]Conversation, error) {
	if filter.Limit <= 0 || filter.Limit > 200 {
		filter.Limit = 50
	}
	return s.repo.ListConversations(ctx, filter)
}

func (s *Service) ListMessages(ctx context.Context, conversationID string, limit int) ([]Message, error) {
	conversationID = strings.TrimSpace(conversationID)
	if conversationID == "" {
		return nil, ErrInvalidInput
	}
	if _, err := s.repo.GetConversation(ctx, conversationID); err != nil {
		return nil, ErrNotFound
	}
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return s.repo.ListMessages(ctx, conversationID, limit)
}

// Resolve fecha a conversa. Idempotente.
func (s *Service) Resolve(ctx context.Context, conversationID string) (Conversation, error) {
	conversationID = strings.TrimSpace(conversationID)
	if conversationID == "" {
		return Conversation{}, ErrInvalidInput
	}

	c, err := s.repo.GetConversation(ctx, conversationID)
	if err != nil {
		return Conversation{}, ErrNotFound
	}

	if c.Status == StatusResolved {
		return c, nil
	}

	c.Status = StatusResolved
	c.UpdatedAt = s.now()
	if err := s.repo.UpdateConversation(ctx, c); err != nil {
		return Conversation{}, err
	}
	return c, nil
}
