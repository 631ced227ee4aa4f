package catalog

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotFound          = errors.New("not found")
	ErrBadState          = errors.New("invalid state")
	ErrInsufficientStock = errors.New("insufficient stock")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name       string
	Kind       Kind
	Category   string
	PriceCents int64
	Stock      int
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Item, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || !validKind(in.Kind) || in.PriceCents < 0 {
		return Item{}, ErrInvalidInput
	}

	stock := in.Stock
	if in.Kind == KindService {
		// Serviço não carrega estoque.
		stock = 0
	} else if stock < 0 {
		return Item{}, ErrInvalidInput
	}

	now := s.now()
	it := Item{
		ID:         uuid.NewString(),
		Name:       name,
		Kind:       in.Kind,
		Category:   strings.TrimSpace(in.Category),
		PriceCents: in.PriceCents,
		Stock:      stock,
		Active:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Create(ctx, it); err != nil {
		return Item{}, err
	}
	return it, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Item, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Item{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Item, error) {
	if filter.Limit <= 0 || filter.Limit > 200 {
		filter.Limit = 50
	}
	filter.Query = strings.TrimSpace(filter.Query)
	return s.repo.List(ctx, filter)
}

// AdjustStock aplica um delta (venda negativa, reposição positiva).
// O estoque nunca fica negativo; serviços não têm estoque.
func (s *Service) AdjustStock(ctx context.Context, id string, delta int) (Item, error) {
	id = strings.TrimSpace(id)
	if id == "" || delta == 0 {
		return Item{}, ErrInvalidInput
	}

	it, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Item{}, ErrNotFound
	}

	if it.Kind != KindProduct {
		return Item{}, ErrBadState
	}
	if it.Stock+delta < 0 {
		return Item{}, ErrInsufficientStock
	}

	it.Stock += delta
	it.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, it); err != nil {
		return Item{}, err
	}
	return it, nil
}

// Deactivate tira o item do catálogo ativo. Idempotente.
func (s *Service) Deactivate(ctx context.Context, id string) (Item, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Item{}, ErrInvalidInput
	}

	it, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Item{}, ErrNotFound
	}

	if !it.Active {
		return it, nil
	}

	it.Active = false
	it.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, it); err != nil {
		return Item{}, err
	}
	return it, nil
}
