package conversations

import (
	"context"
	"errors"
	"testing"
	"time"
)

// -------------------------
// Fakes
// -------------------------

var errRepoNotFound = errors.New("repo: not found")

type testRepo struct {
	convos   map[string]Conversation
	messages map[string]Message
}

func newTestRepo() *testRepo {
	return &testRepo{
		convos:   map[string]Conversation{},
		messages: map[string]Message{},
	}
}

func (r *testRepo) CreateConversation(ctx context.Context, c Conversation) error {
	if c.ID == "" {
		return errors.New("repo: id required")
	}
	r.convos[c.ID] = c
	return nil
}

func (r *testRepo) UpdateConversation(ctx context.Context, c Conversation) error {
	if _, ok := r.convos[c.ID]; !ok {
		return errRepoNotFound
	}
	r.convos[c.ID] = c
	return nil
}

func (r *testRepo) GetConversation(ctx context.Context, id string) (Conversation, error) {
	c, ok := r.convos[id]
	if !ok {
		return Conversation{}, errRepoNotFound
	}
	return c, nil
}

func (r *testRepo) GetOpenByCustomer(ctx context.Context, customerID string) (Conversation, error) {
	for _, c := range r.convos {
		if c.CustomerID == customerID && c.Status == StatusOpen {
			return c, nil
		}
	}
	return Conversation{}, errRepoNotFound
}

func (r *testRepo) ListConversations(ctx context.Context, filter ListFilter) ([]Conversation, error) {
	out := make([]Conversation, 0)
	for _, c := range r.convos {
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *testRepo) CreateMessage(ctx context.Context, m Message) error {
	if m.ID == "" {
		return errors.New("repo: id required")
	}
	r.messages[m.ID] = m
	return nil
}

func (r *testRepo) UpdateMessage(ctx context.Context, m Message) error {
	if _, ok := r.messages[m.ID]; !ok {
		return errRepoNotFound
	}
	r.messages[m.ID] = m
	return nil
}

func (r *testRepo) ListMessages(ctx context.Context, conversationID string, limit int) ([]Message, error) {
	out := make([]Message, 0)
	for _, m := range r.messages {
		if m.ConversationID == conversationID {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeSender struct {
	calls []string // phones
	fail  bool
}

func (f *fakeSender) Send(ctx context.Context, phone, body string) error {
	f.calls = append(f.calls, phone)
	if f.fail {
		return errors.New("gateway: timeout")
	}
	return nil
}

type fakePhones struct {
	phones map[string]string
}

func (f *fakePhones) PhoneOf(ctx context.Context, customerID string) (string, error) {
	p, ok := f.phones[customerID]
	if !ok {
		return "", errors.New("customer not found")
	}
	return p, nil
}

func newTestService(repo *testRepo, sender *fakeSender) *Service {
	svc := NewService(repo, sender, &fakePhones{phones: map[string]string{
		"cust-1": "11999991234",
	}}, nil)
	svc.now = func() time.Time { return time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC) }
	return svc
}

// -------------------------
// Tests
// -------------------------

func TestService_EnsureOpen_ReusaConversaAberta(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo, &fakeSender{})

	c1, err := svc.EnsureOpen(context.Background(), "cust-1")
	if err != nil {
		t.Fatalf("EnsureOpen error: %v", err)
	}
	c2, err := svc.EnsureOpen(context.Background(), "cust-1")
	if err != nil {
		t.Fatalf("EnsureOpen #2 error: %v", err)
	}
	if c1.ID != c2.ID {
		t.Fatalf("expected same conversation, got %s vs %s", c1.ID, c2.ID)
	}
	if len(repo.convos) != 1 {
		t.Fatalf("expected 1 conversation, got %d", len(repo.convos))
	}
}

func TestService_RecordInbound_AbreThreadNovaAposResolver(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo, &fakeSender{})

	m1, err := svc.RecordInbound(context.Background(), "cust-1", "oi, a Luna está pronta?")
	if err != nil {
		t.Fatalf("RecordInbound error: %v", err)
	}
	if m1.Direction != DirectionInbound || m1.Status != MessageReceived {
		t.Fatalf("expected inbound/received, got %s/%s", m1.Direction, m1.Status)
	}

	if _, err := svc.Resolve(context.Background(), m1.ConversationID); err != nil {
		t.Fatalf("Resolve error: %v", err)
	}

	m2, err := svc.RecordInbound(context.Background(), "cust-1", "mais uma coisa")
	if err != nil {
		t.Fatalf("RecordInbound #2 error: %v", err)
	}
	if m2.ConversationID == m1.ConversationID {
		t.Fatalf("expected a new thread after resolve")
	}
	if len(repo.convos) != 2 {
		t.Fatalf("expected 2 conversations, got %d", len(repo.convos))
	}
}

func TestService_Send_MarcaSent(t *testing.T) {
	repo := newTestRepo()
	sender := &fakeSender{}
	svc := newTestService(repo, sender)

	c, err := svc.EnsureOpen(context.Background(), "cust-1")
	if err != nil {
		t.Fatalf("EnsureOpen error: %v", err)
	}

	m, err := svc.Send(context.Background(), c.ID, "user-1", "já está pronta!")
	if err != nil {
		t.Fatalf("Send error: %v", err)
	}
	if m.Status != MessageSent {
		t.Fatalf("expected sent, got %s", m.Status)
	}
	if m.ActorID != "user-1" {
		t.Fatalf("expected actor user-1, got %q", m.ActorID)
	}
	if len(sender.calls) != 1 || sender.calls[0] != "11999991234" {
		t.Fatalf("expected gateway called with canonical phone, got %#v", sender.calls)
	}
}

func TestService_Send_FalhaDoGateway_FicaFailedNoHistorico(t *testing.T) {
	repo := newTestRepo()
	sender := &fakeSender{fail: true}
	svc := newTestService(repo, sender)

	c, err := svc.EnsureOpen(context.Background(), "cust-1")
	if err != nil {
		t.Fatalf("EnsureOpen error: %v", err)
	}

	m, err := svc.Send(context.Background(), c.ID, "user-1", "já está pronta!")
	if !errors.Is(err, ErrSendFailed) {
		t.Fatalf("expected ErrSendFailed, got %v", err)
	}
	if m.Status != MessageFailed {
		t.Fatalf("expected failed, got %s", m.Status)
	}

	stored, ok := repo.messages[m.ID]
	if !ok {
		t.Fatalf("expected failed message kept in history")
	}
	if stored.Status != MessageFailed {
		t.Fatalf("expected persisted status failed, got %s", stored.Status)
	}
}

func TestService_Resolve_Idempotente(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo, &fakeSender{})

	c, err := svc.EnsureOpen(context.Background(), "cust-1")
	if err != nil {
		t.Fatalf("EnsureOpen error: %v", err)
	}

	r1, err := svc.Resolve(context.Background(), c.ID)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if r1.Status != StatusResolved {
		t.Fatalf("expected resolved, got %s", r1.Status)
	}

	r2, err := svc.Resolve(context.Background(), c.ID)
	if err != nil {
		t.Fatalf("Resolve #2 error: %v", err)
	}
	if r2.Status != StatusResolved {
		t.Fatalf("expected resolved after idempotent resolve, got %s", r2.Status)
	}
}
