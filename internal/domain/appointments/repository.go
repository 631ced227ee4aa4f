package appointments

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, a Appointment) error
	Update(ctx context.Context, a Appointment) error
	GetByID(ctx context.Context, id string) (Appointment, error)
	ListByPet(ctx context.Context, petID string) ([]Appointment, error)
	// ListByDay devolve os agendamentos com scheduled_at dentro do dia
	// [dia 00:00, dia+1 00:00) em UTC.
	ListByDay(ctx context.Context, day time.Time) ([]Appointment, error)
}
