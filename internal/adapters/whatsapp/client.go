package whatsapp

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fellipesaraiva88/aupet-ai-connect-sub003/internal/platform/httpclient"
)

var (
	ErrNotConfigured = errors.New("whatsapp client not configured")
	ErrSendRejected  = errors.New("whatsapp send rejected")
)

// Config do gateway de WhatsApp. BaseURL e APIKey vêm de env vars
// no serviço que instancia o cliente.
type Config struct {
	BaseURL string
	APIKey  string

	// Opcional: header onde vai a API key. Vazio usa "X-Api-Key".
	APIKeyHeader string

	Timeout time.Duration
}

// ConfigFromEnv lê WHATSAPP_BASE_URL / WHATSAPP_API_KEY / WHATSAPP_API_KEY_HEADER.
func ConfigFromEnv() Config {
	return Config{
		BaseURL:      strings.TrimSpace(os.Getenv("WHATSAPP_BASE_URL")),
		APIKey:       strings.TrimSpace(os.Getenv("WHATSAPP_API_KEY")),
		APIKeyHeader: strings.TrimSpace(os.Getenv("WHATSAPP_API_KEY_HEADER")),
	}
}

type Client struct {
	http       *httpclient.Client
	configured bool
}

func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimSpace(cfg.BaseURL)
	key := strings.TrimSpace(cfg.APIKey)
	if base == "" || key == "" {
		return &Client{}, nil
	}

	hc, err := httpclient.New(base, cfg.Timeout)
	if err != nil {
		return nil, err
	}

	header := strings.TrimSpace(cfg.APIKeyHeader)
	if header == "" {
		header = "X-Api-Key"
	}
	hc.WithHeader(header, key)

	return &Client{http: hc, configured: true}, nil
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.configured
}

// SendText manda uma mensagem de texto para o número (só dígitos).
func (c *Client) SendText(ctx context.Context, phone, body string) error {
	if !c.IsConfigured() {
		return ErrNotConfigured
	}
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return fmt.Errorf("%w: phone empty", ErrSendRejected)
	}

	req := map[string]string{
		"to":   phone,
		"type": "text",
		"body": body,
	}

	var resp struct {
		Status string `json:"status"`
	}
	if err := c.http.PostJSON(ctx, "/v1/messages", req, &resp); err != nil {
		return fmt.Errorf("whatsapp send: %w", err)
	}

	if resp.Status != "" && resp.Status != "queued" && resp.Status != "sent" {
		return fmt.Errorf("%w: status=%s", ErrSendRejected, resp.Status)
	}
	return nil
}
