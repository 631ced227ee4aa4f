package appointments

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
	ErrBadState     = errors.New("invalid state")
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

type ScheduleInput struct {
	CustomerID  string
	PetID       string
	ServiceType ServiceType
	ScheduledAt time.Time
	Notes       string
	PriceCents  int64
	CreatedBy   string
}

func (s *Service) Schedule(ctx context.Context, in ScheduleInput) (Appointment, error) {
	customerID := strings.TrimSpace(in.CustomerID)
	petID := strings.TrimSpace(in.PetID)

	if customerID == "" || petID == "" {
		return Appointment{}, ErrInvalidInput
	}
	if !validServiceType(in.ServiceType) {
		return Appointment{}, ErrInvalidInput
	}
	if in.ScheduledAt.IsZero() {
		return Appointment{}, ErrInvalidInput
	}
	if in.PriceCents < 0 {
		return Appointment{}, ErrInvalidInput
	}

	now := s.now()
	a := Appointment{
		ID:          uuid.NewString(),
		CustomerID:  customerID,
		PetID:       petID,
		ServiceType: in.ServiceType,
		ScheduledAt: in.ScheduledAt,
		Status:      StatusScheduled,
		Notes:       strings.TrimSpace(in.Notes),
		PriceCents:  in.PriceCents,
		CreatedBy:   strings.TrimSpace(in.CreatedBy),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return Appointment{}, err
	}
	return a, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Appointment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Appointment{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByPet(ctx context.Context, petID string) ([]Appointment, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByPet(ctx, petID)
}

func (s *Service) ListByDay(ctx context.Context, day time.Time) ([]Appointment, error) {
	if day.IsZero() {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByDay(ctx, day)
}

// UpdateStatus aplica a tabela de transições. Transição ilegal devolve
// ErrBadState; o registro não muda.
func (s *Service) UpdateStatus(ctx context.Context, id string, to Status) (Appointment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Appointment{}, ErrInvalidInput
	}

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Appointment{}, ErrNotFound
	}

	if !canTransition(a.Status, to) {
		return Appointment{}, ErrBadState
	}

	a.Status = to
	a.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, a); err != nil {
		return Appointment{}, err
	}
	return a, nil
}

// Cancel é idempotente: cancelar um agendamento já cancelado devolve o
// registro como está. Só scheduled/confirmed podem ser cancelados.
func (s *Service) Cancel(ctx context.Context, id string) (Appointment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Appointment{}, ErrInvalidInput
	}

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Appointment{}, ErrNotFound
	}

	if a.Status == StatusCancelled {
		return a, nil
	}
	if !canTransition(a.Status, StatusCancelled) {
		return Appointment{}, ErrBadState
	}

	a.Status = StatusCancelled
	a.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, a); err != nil {
		return Appointment{}, err
	}
	return a, nil
}
