package pets

import "context"

type Repository interface {
	Create(ctx context.Context, p Pet) error
	GetByID(ctx context.Context, id string) (Pet, error)
	ListByCustomer(ctx context.Context, customerID string) ([]Pet, error)
	List(ctx context.Context) ([]Pet, error)
}
