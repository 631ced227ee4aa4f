package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/fellipesaraiva88/aupet-ai-connect-sub003/internal/domain/conversations"
)

type conversationsRepo struct {
	mu       sync.RWMutex
	convos   map[string]conversations.Conversation
	messages map[string]conversations.Message
}

func NewConversationsRepo() conversations.Repository {
	return &conversationsRepo{
		convos:   make(map[string]conversations.Conversation),
		messages: make(map[string]conversations.Message),
	}
}

func (r *conversationsRepo) CreateConversation(ctx context.Context, c conversations.Conversation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(c.ID) == "" {
		return errors.New("conversation id required")
	}
	if _, exists := r.convos[c.ID]; exists {
		return errors.New("conversation already exists")
	}
	r.convos[c.ID] = c
	return nil
}

func (r *conversationsRepo) UpdateConversation(ctx context.Context, c conversations.Conversation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.convos[c.ID]; !exists {
		return ErrNotFound
	}
	r.convos[c.ID] = c
	return nil
}

func (r *conversationsRepo) GetConversation(ctx context.Context, id string) (conversations.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.convos[id]
	if !ok {
		return conversations.Conversation{}, ErrNotFound
	}
	return c, nil
}

func (r *conversationsRepo) GetOpenByCustomer(ctx context.Context, customerID string) (conversations.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.convos {
		if c.CustomerID == customerID && c.Status == conversations.StatusOpen {
			return c, nil
		}
	}
	return conversations.Conversation{}, ErrNotFound
}

func (r *conversationsRepo) ListConversations(ctx context.Context, filter conversations.ListFilter) ([]conversations.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]conversations.Conversation, 0)
	for _, c := range r.convos {
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		out = append(out, c)
	}

	// mais recentes primeiro, como um inbox
	sort.Slice(out, func(i, j int) bool {
		return out[i].LastMessageAt.After(out[j].LastMessageAt)
	})

	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (r *conversationsRepo) CreateMessage(ctx context.Context, m conversations.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(m.ID) == "" {
		return errors.New("message id required")
	}
	if _, exists := r.messages[m.ID]; exists {
		return errors.New("message already exists")
	}
	r.messages[m.ID] = m
	return nil
}

func (r *conversationsRepo) UpdateMessage(ctx context.Context, m conversations.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.messages[m.ID]; !exists {
		return ErrNotFound
	}
	r.messages[m.ID] = m
	return nil
}

func (r *conversationsRepo) ListMessages(ctx context.Context, conversationID string, limit int) ([]conversations.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]conversations.Message, 0)
	for _, m := range r.messages {
		if m.ConversationID == conversationID {
			out = append(out, m)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
