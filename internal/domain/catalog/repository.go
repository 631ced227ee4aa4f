package catalog

import "context"

type Repository interface {
	Create(ctx context.Context, it Item) error
	Update(ctx context.Context, it Item) error
	GetByID(ctx context.Context, id string) (Item, error)
	List(ctx context.Context, filter ListFilter) ([]Item, error)
}

type ListFilter struct {
	Kind       Kind   // vazio = ambos
	OnlyActive bool
	Query      string // substring no nome
	Limit      int
}
