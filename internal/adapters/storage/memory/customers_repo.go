package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/fellipesaraiva88/aupet-ai-connect-sub003/internal/domain/customers"
)

var ErrNotFound = errors.New("not found")

type customersRepo struct {
	mu   sync.RWMutex
	byID map[string]customers.Customer
}

func NewCustomersRepo() customers.Repository {
	return &customersRepo{
		byID: make(map[string]customers.Customer),
	}
}

func (r *customersRepo) Create(ctx context.Context, c customers.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(c.ID) == "" {
		return errors.New("customer id required")
	}
	if _, exists := r.byID[c.ID]; exists {
		return errors.New("customer already exists")
	}
	r.byID[c.ID] = c
	return nil
}

func (r *customersRepo) GetByID(ctx context.Context, id string) (customers.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return customers.Customer{}, ErrNotFound
	}
	return c, nil
}

func (r *customersRepo) List(ctx context.Context, filter customers.ListFilter) ([]customers.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q := strings.ToLower(filter.Query)
	out := make([]customers.Customer, 0)
	for _, c := range r.byID {
		if q != "" &&
			!strings.Contains(strings.ToLower(c.Name), q) &&
			!strings.Contains(c.Phone, q) {
			continue
		}
		out = append(out, c)
	}

	// Ordem estável por created_at asc (consistência em dev/testes).
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}
