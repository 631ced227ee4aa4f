package conversations

import "context"

type Repository interface {
	CreateConversation(ctx context.Context, c Conversation) error
	UpdateConversation(ctx context.Context, c Conversation) error
	GetConversation(ctx context.Context, id string) (Conversation, error)
	// GetOpenByCustomer devolve a conversa aberta do tutor, se houver.
	GetOpenByCustomer(ctx context.Context, customerID string) (Conversation, error)
	ListConversations(ctx context.Context, filter ListFilter) ([]Conversation, error)

	CreateMessage(ctx context.Context, m Message) error
	UpdateMessage(ctx context.Context, m Message) error
	ListMessages(ctx context.Context, conversationID string, limit int) ([]Message, error)
}

type ListFilter struct {
	Status ConversationStatus // vazio = todas
	Limit  int
}
