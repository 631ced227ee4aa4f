package customers

import "time"

// Customer é o tutor/cliente da loja, dono de uma ou mais mascotas.
type Customer struct {
	ID string

	Name  string
	Phone string // canônico: só dígitos (DDD + número)
	Email string

	Address string
	Notes   string

	CreatedAt time.Time
	UpdatedAt time.Time
}
