package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const DefaultTimeout = 10 * time.Second

// maxBody limita quanto lemos de respostas upstream (erros incluídos).
const maxBody = 1 << 20

// Client é o wrapper fino de *http.Client que os adapters usam
// (gateway de WhatsApp, verificação de token no Supabase).
type Client struct {
	HTTP    *http.Client
	BaseURL string
	headers map[string]string
}

func New(baseURL string, timeout time.Duration) (*Client, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	c := &Client{
		HTTP:    &http.Client{Timeout: timeout},
		headers: map[string]string{},
	}

	baseURL = strings.TrimSpace(baseURL)
	if baseURL != "" {
		if _, err := url.ParseRequestURI(baseURL); err != nil {
			return nil, fmt.Errorf("httpclient: base url inválida: %w", err)
		}
		c.BaseURL = strings.TrimRight(baseURL, "/")
	}

	return c, nil
}

// WithHeader registra um header fixo (api key etc.) enviado em todo request.
func (c *Client) WithHeader(key, value string) *Client {
	key = strings.TrimSpace(key)
	if key != "" {
		c.headers[key] = value
	}
	return c
}

// Clone devolve uma cópia com mapa de headers próprio, para
// adicionar headers por request sem tocar no client base.
func (c *Client) Clone() *Client {
	dup := &Client{
		HTTP:    c.HTTP,
		BaseURL: c.BaseURL,
		headers: make(map[string]string, len(c.headers)),
	}
	for k, v := range c.headers {
		dup.headers[k] = v
	}
	return dup
}

// WithTransport troca o RoundTripper (injeção para testes).
func (c *Client) WithTransport(tr http.RoundTripper) *Client {
	if tr != nil {
		c.HTTP.Transport = tr
	}
	return c
}

// HTTPError é qualquer resposta fora de 2xx.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("http error: status=%d", e.StatusCode)
	}
	return fmt.Sprintf("http error: status=%d body=%s", e.StatusCode, e.Body)
}

// GetJSON faz GET e decodifica a resposta em out (out pode ser nil).
func (c *Client) GetJSON(ctx context.Context, pathOrURL string, out any) error {
	return c.do(ctx, http.MethodGet, pathOrURL, nil, out)
}

// PostJSON envia in como JSON e decodifica a resposta em out (ambos opcionais).
func (c *Client) PostJSON(ctx context.Context, pathOrURL string, in, out any) error {
	return c.do(ctx, http.MethodPost, pathOrURL, in, out)
}

func (c *Client) do(ctx context.Context, method, pathOrURL string, in, out any) error {
	if c == nil || c.HTTP == nil {
		return errors.New("httpclient: client nil")
	}

	fullURL, err := c.resolve(pathOrURL)
	if err != nil {
		return err
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("httpclient: marshal: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return fmt.Errorf("httpclient: new request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("httpclient: do: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxBody))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &HTTPError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(raw)),
		}
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("httpclient: unmarshal: %w", err)
	}
	return nil
}

func (c *Client) resolve(pathOrURL string) (string, error) {
	pathOrURL = strings.TrimSpace(pathOrURL)
	if pathOrURL == "" {
		return "", errors.New("httpclient: url vazia")
	}
	if strings.HasPrefix(pathOrURL, "http://") || strings.HasPrefix(pathOrURL, "https://") {
		return pathOrURL, nil
	}
	if c.BaseURL == "" {
		return "", errors.New("httpclient: path relativo exige BaseURL")
	}
	if !strings.HasPrefix(pathOrURL, "/") {
		pathOrURL = "/" + pathOrURL
	}
	return c.BaseURL + pathOrURL, nil
}
