package catalog

import "time"

// Kind separa produto (tem estoque) de serviço (não tem).
type Kind string

const (
	KindProduct Kind = "product"
	KindService Kind = "service"
)

func validKind(k Kind) bool {
	return k == KindProduct || k == KindService
}

// Item é um produto ou serviço do catálogo da loja.
type Item struct {
	ID string

	Name     string
	Kind     Kind
	Category string

	PriceCents int64
	Stock      int // sempre zero para serviços
	Active     bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
