package auth

import "context"

// TokenVerifier valida um token de acesso e devolve os claims associados.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}
