package postgres

import (
	"context"
	"database/sql"
	"strings"

	"github.com/fellipesaraiva88/aupet-ai-connect-sub003/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pets (
			id, customer_id,
			name, species, size,
			breed, age_bracket, temperament,
			neutered, vaccinated,
			allergies, medical_notes,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
	`,
		p.ID,
		p.CustomerID,
		p.Name,
		string(p.Species),
		string(p.Size),
		p.Breed,
		string(p.AgeBracket),
		string(p.Temperament),
		p.Neutered,
		p.Vaccinated,
		p.Allergies,
		p.MedicalNotes,
		p.CreatedAt,
		p.UpdatedAt,
	)
	return err
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pets.Pet{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, customer_id,
			name, species, size,
			breed, age_bracket, temperament,
			neutered, vaccinated,
			allergies, medical_notes,
			created_at, updated_at
		FROM pets
		WHERE id = $1
	`, id)

	p, err := scanPet(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return pets.Pet{}, ErrNotFound
		}
		return pets.Pet{}, err
	}
	return p, nil
}

func (r *PetsRepo) ListByCustomer(ctx context.Context, customerID string) ([]pets.Pet, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, customer_id,
			name, species, size,
			breed, age_bracket, temperament,
			neutered, vaccinated,
			allergies, medical_notes,
			created_at, updated_at
		FROM pets
		WHERE customer_id = $1
		ORDER BY created_at ASC
	`, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPets(rows)
}

func (r *PetsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, customer_id,
			name, species, size,
			breed, age_bracket, temperament,
			neutered, vaccinated,
			allergies, medical_notes,
			created_at, updated_at
		FROM pets
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPets(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPet(row rowScanner) (pets.Pet, error) {
	var p pets.Pet
	var species, size, ageBracket, temperament string
	if err := row.Scan(
		&p.ID,
		&p.CustomerID,
		&p.Name,
		&species,
		&size,
		&p.Breed,
		&ageBracket,
		&temperament,
		&p.Neutered,
		&p.Vaccinated,
		&p.Allergies,
		&p.MedicalNotes,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return pets.Pet{}, err
	}
	p.Species = pets.Species(species)
	p.Size = pets.Size(size)
	p.AgeBracket = pets.AgeBracket(ageBracket)
	p.Temperament = pets.Temperament(temperament)
	return p, nil
}

func collectPets(rows *sql.Rows) ([]pets.Pet, error) {
	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
