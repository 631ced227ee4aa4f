package supabase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/fellipesaraiva88/aupet-ai-connect-sub003/internal/platform/httpclient"
	"github.com/fellipesaraiva88/aupet-ai-connect-sub003/internal/ports/auth"
)

var (
	ErrNotConfigured = errors.New("supabase verifier not configured")
	ErrUnauthorized  = errors.New("supabase unauthorized")
	ErrUpstream      = errors.New("supabase upstream error")
)

// Config do verificador. URL e AnonKey vêm de env vars no serviço.
type Config struct {
	URL     string
	AnonKey string
	Timeout time.Duration
}

// ConfigFromEnv lê SUPABASE_URL / SUPABASE_ANON_KEY.
func ConfigFromEnv() Config {
	return Config{
		URL:     strings.TrimSpace(os.Getenv("SUPABASE_URL")),
		AnonKey: strings.TrimSpace(os.Getenv("SUPABASE_ANON_KEY")),
	}
}

// Verifier implementa auth.TokenVerifier consultando o endpoint
// de usuário do GoTrue com o token do request.
type Verifier struct {
	http       *httpclient.Client
	configured bool
}

func NewVerifier(cfg Config) (*Verifier, error) {
	base := strings.TrimSpace(cfg.URL)
	key := strings.TrimSpace(cfg.AnonKey)
	if base == "" || key == "" {
		return &Verifier{}, nil
	}

	hc, err := httpclient.New(base, cfg.Timeout)
	if err != nil {
		return nil, err
	}
	hc.WithHeader("apikey", key)

	return &Verifier{http: hc, configured: true}, nil
}

func (v *Verifier) IsConfigured() bool {
	return v != nil && v.configured
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	if !v.IsConfigured() {
		return auth.Claims{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrUnauthorized
	}

	var out struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Role  string `json:"role"`
	}

	// bearer muda por request, então clonamos o client
	req := v.http.Clone().WithHeader("Authorization", "Bearer "+token)

	if err := req.GetJSON(ctx, "/auth/v1/user", &out); err != nil {
		var httpErr *httpclient.HTTPError
		if errors.As(err, &httpErr) {
			if httpErr.StatusCode == http.StatusUnauthorized || httpErr.StatusCode == http.StatusForbidden {
				return auth.Claims{}, ErrUnauthorized
			}
			return auth.Claims{}, fmt.Errorf("%w: status=%d", ErrUpstream, httpErr.StatusCode)
		}
		return auth.Claims{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	out.ID = strings.TrimSpace(out.ID)
	if out.ID == "" {
		return auth.Claims{}, errors.New("supabase response missing user id")
	}

	return auth.Claims{
		UserID: out.ID,
		Email:  strings.TrimSpace(out.Email),
		Role:   strings.TrimSpace(out.Role),
	}, nil
}
