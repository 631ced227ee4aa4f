package auth

// Claims é a identidade extraída do token (atendente logado no console).
type Claims struct {
	UserID string
	Email  string
	Role   string
}
