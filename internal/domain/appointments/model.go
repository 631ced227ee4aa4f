package appointments

import "time"

// Appointment é um serviço agendado para uma mascota.
type Appointment struct {
	ID         string
	CustomerID string
	PetID      string

	ServiceType ServiceType
	ScheduledAt time.Time
	Status      Status

	Notes      string
	PriceCents int64

	// CreatedBy é o atendente logado, quando houver claims no request.
	CreatedBy string

	CreatedAt time.Time
	UpdatedAt time.Time
}
