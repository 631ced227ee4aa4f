package postgres

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fellipesaraiva88/aupet-ai-connect-sub003/internal/domain/appointments"
)

type AppointmentsRepo struct {
	db *sql.DB
}

func NewAppointmentsRepo(db *sql.DB) *AppointmentsRepo {
	return &AppointmentsRepo{db: db}
}

func (r *AppointmentsRepo) Create(ctx context.Context, a appointments.Appointment) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO appointments (
			id, customer_id, pet_id,
			service_type, scheduled_at, status,
			notes, price_cents, created_by,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`,
		a.ID,
		a.CustomerID,
		a.PetID,
		string(a.ServiceType),
		a.ScheduledAt,
		string(a.Status),
		a.Notes,
		a.PriceCents,
		a.CreatedBy,
		a.CreatedAt,
		a.UpdatedAt,
	)
	return err
}

func (r *AppointmentsRepo) Update(ctx context.Context, a appointments.Appointment) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE appointments
		SET
			service_type = $2,
			scheduled_at = $3,
			status = $4,
			notes = $5,
			price_cents = $6,
			updated_at = $7
		WHERE id = $1
	`,
		a.ID,
		string(a.ServiceType),
		a.ScheduledAt,
		string(a.Status),
		a.Notes,
		a.PriceCents,
		a.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *AppointmentsRepo) GetByID(ctx context.Context, id string) (appointments.Appointment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return appointments.Appointment{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, customer_id, pet_id,
			service_type, scheduled_at, status,
			notes, price_cents, created_by,
			created_at, updated_at
		FROM appointments
		WHERE id = $1
	`, id)

	a, err := scanAppointment(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return appointments.Appointment{}, ErrNotFound
		}
		return appointments.Appointment{}, err
	}
	return a, nil
}

func (r *AppointmentsRepo) ListByPet(ctx context.Context, petID string) ([]appointments.Appointment, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, customer_id, pet_id,
			service_type, scheduled_at, status,
			notes, price_cents, created_by,
			created_at, updated_at
		FROM appointments
		WHERE pet_id = $1
		ORDER BY scheduled_at ASC
	`, petID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAppointments(rows)
}

func (r *AppointmentsRepo) ListByDay(ctx context.Context, day time.Time) ([]appointments.Appointment, error) {
	dayUTC := day.UTC()
	start := time.Date(dayUTC.Year(), dayUTC.Month(), dayUTC.Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, customer_id, pet_id,
			service_type, scheduled_at, status,
			notes, price_cents, created_by,
			created_at, updated_at
		FROM appointments
		WHERE scheduled_at >= $1 AND scheduled_at < $2
		ORDER BY scheduled_at ASC
	`, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAppointments(rows)
}

func scanAppointment(row rowScanner) (appointments.Appointment, error) {
	var a appointments.Appointment
	var serviceType, status string
	if err := row.Scan(
		&a.ID,
		&a.CustomerID,
		&a.PetID,
		&serviceType,
		&a.ScheduledAt,
		&status,
		&a.Notes,
		&a.PriceCents,
		&a.CreatedBy,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		return appointments.Appointment{}, err
	}
	a.ServiceType = appointments.ServiceType(serviceType)
	a.Status = appointments.Status(status)
	return a, nil
}

func collectAppointments(rows *sql.Rows) ([]appointments.Appointment, error) {
	out := make([]appointments.Appointment, 0)
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
