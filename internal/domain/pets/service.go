package pets

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
	Species Species
	Size    Size

	Breed       string
	AgeBracket  AgeBracket
	Temperament Temperament
	Neutered    bool
	Vaccinated  bool

	Allergies    string
	MedicalNotes string
}

// Create valida nome, espécie e porte (obrigatórios, enum estrito) e
// persiste. Os demais campos passam direto.
func (s *Service) Create(ctx context.Context, customerID string, in CreateInput) (Pet, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return Pet{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" {
		return Pet{}, ErrInvalidInput
	}
	if !ValidSpecies(in.Species) {
		return Pet{}, ErrInvalidInput
	}
	if !ValidSize(in.Size) {
		return Pet{}, ErrInvalidInput
	}
	if !ValidAgeBracket(in.AgeBracket) || !ValidTemperament(in.Temperament) {
		return Pet{}, ErrInvalidInput
	}

	now := s.now()
	p := Pet{
		ID:           uuid.NewString(),
		CustomerID:   customerID,
		Name:         strings.TrimSpace(in.Name),
		Species:      in.Species,
		Size:         in.Size,
		Breed:        strings.TrimSpace(in.Breed),
		AgeBracket:   in.AgeBracket,
		Temperament:  in.Temperament,
		Neutered:     in.Neutered,
		Vaccinated:   in.Vaccinated,
		Allergies:    strings.TrimSpace(in.Allergies),
		MedicalNotes: strings.TrimSpace(in.MedicalNotes),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Pet{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByCustomer(ctx context.Context, customerID string) ([]Pet, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByCustomer(ctx, customerID)
}

func (s *Service) List(ctx context.Context) ([]Pet, error) {
	return s.repo.List(ctx)
}
