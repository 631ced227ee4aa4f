package conversations

import "time"

type Channel string

const (
	ChannelWhatsApp Channel = "whatsapp"
)

type ConversationStatus string

const (
	StatusOpen     ConversationStatus = "open"
	StatusResolved ConversationStatus = "resolved"
)

type Direction string

const (
	DirectionInbound  Direction = "inbound"
	DirectionOutbound Direction = "outbound"
)

// MessageStatus acompanha o ciclo de vida de uma mensagem.
// Entrantes nascem received; saíntes nascem pending e viram
// sent ou failed depois da tentativa no gateway.
type MessageStatus string

const (
	MessageReceived MessageStatus = "received"
	MessagePending  MessageStatus = "pending"
	MessageSent     MessageStatus = "sent"
	MessageFailed   MessageStatus = "failed"
)

// Conversation é a thread do tutor no inbox do console.
type Conversation struct {
	ID         string
	CustomerID string
	Channel    Channel
	Status     ConversationStatus

	LastMessageAt time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Message é uma mensagem dentro da conversa.
type Message struct {
	ID             string
	ConversationID string

	Direction Direction
	Body      string
	Status    MessageStatus

	// ActorID é o atendente que mandou (só em outbound, se autenticado).
	ActorID string

	CreatedAt time.Time
}
