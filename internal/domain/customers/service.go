package customers

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
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
	Name    string
	Phone   string
	Email   string
	Address string
	Notes   string
}

// Create persiste um novo tutor. Nome e telefone são obrigatórios;
// o telefone é normalizado para só dígitos antes de gravar.
func (s *Service) Create(ctx context.Context, in CreateInput) (Customer, error) {
	name := strings.TrimSpace(in.Name)
	phone := NormalizePhone(in.Phone)

	if name == "" || phone == "" {
		return Customer{}, ErrInvalidInput
	}

	now := s.now()
	c := Customer{
		ID:        uuid.NewString(),
		Name:      name,
		Phone:     phone,
		Email:     strings.TrimSpace(in.Email),
		Address:   strings.TrimSpace(in.Address),
		Notes:     strings.TrimSpace(in.Notes),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return Customer{}, err
	}
	return c, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Customer{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

// GetByPhone resolve um tutor pelo telefone canônico, por igualdade
// exata. A busca do repositório é substring, então um número mais curto
// poderia casar com o tutor errado; o filtro aqui fecha essa brecha.
func (s *Service) GetByPhone(ctx context.Context, phone string) (Customer, error) {
	phone = NormalizePhone(phone)
	if phone == "" {
		return Customer{}, ErrInvalidInput
	}

	matches, err := s.repo.List(ctx, ListFilter{Query: phone, Limit: -1})
	if err != nil {
		return Customer{}, err
	}
	for _, c := range matches {
		if c.Phone == phone {
			return c, nil
		}
	}
	return Customer{}, ErrNotFound
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Customer, error) {
	if filter.Limit <= 0 || filter.Limit > 200 {
		filter.Limit = 50
	}
	filter.Query = strings.TrimSpace(filter.Query)
	return s.repo.List(ctx, filter)
}
