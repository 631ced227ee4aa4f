package whatsapp

import (
	"context"

	"github.com/fellipesaraiva88/aupet-ai-connect-sub003/internal/domain/conversations"
)

// Sender implementa conversations.OutboundSender em cima do Client.
type Sender struct {
	client *Client
}

func NewSender(client *Client) *Sender {
	return &Sender{client: client}
}

var _ conversations.OutboundSender = (*Sender)(nil)

func (s *Sender) Send(ctx context.Context, phone, body string) error {
	if s == nil || s.client == nil {
		return ErrNotConfigured
	}
	return s.client.SendText(ctx, phone, body)
}
