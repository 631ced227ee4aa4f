package postgres

import (
	"context"
	"database/sql"
	"strings"

	"github.com/fellipesaraiva88/aupet-ai-connect-sub003/internal/domain/customers"
)

type CustomersRepo struct {
	db *sql.DB
}

func NewCustomersRepo(db *sql.DB) *CustomersRepo {
	return &CustomersRepo{db: db}
}

func (r *CustomersRepo) Create(ctx context.Context, c customers.Customer) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO customers (
			id, name, phone, email,
			address, notes,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		c.ID,
		c.Name,
		c.Phone,
		c.Email,
		c.Address,
		c.Notes,
		c.CreatedAt,
		c.UpdatedAt,
	)
	return err
}

func (r *CustomersRepo) GetByID(ctx context.Context, id string) (customers.Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return customers.Customer{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, name, phone, email,
			address, notes,
			created_at, updated_at
		FROM customers
		WHERE id = $1
	`, id)

	var c customers.Customer
	if err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Phone,
		&c.Email,
		&c.Address,
		&c.Notes,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return customers.Customer{}, ErrNotFound
		}
		return customers.Customer{}, err
	}

	return c, nil
}

func (r *CustomersRepo) List(ctx context.Context, filter customers.ListFilter) ([]customers.Customer, error) {
	q := "%" + strings.TrimSpace(filter.Query) + "%"

	// limit zero ou negativo = sem teto (o service já aplica o default)
	limit := filter.Limit
	if limit <= 0 {
		limit = -1
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, name, phone, email,
			address, notes,
			created_at, updated_at
		FROM customers
		WHERE ($1 = '%%' OR name ILIKE $1 OR phone LIKE $1)
		ORDER BY created_at ASC
		LIMIT NULLIF($2, -1)
	`, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]customers.Customer, 0)
	for rows.Next() {
		var c customers.Customer
		if err := rows.Scan(
			&c.ID,
			&c.Name,
			&c.Phone,
			&c.Email,
			&c.Address,
			&c.Notes,
			&c.CreatedAt,
			&c.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, c)
	}

	return out, rows.Err()
}
