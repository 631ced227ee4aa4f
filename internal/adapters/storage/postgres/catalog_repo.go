package postgres

import (
	"context"
	"database/sql"
	"strings"

	"github.com/fellipesaraiva88/aupet-ai-connect-sub003/internal/domain/catalog"
)

type CatalogRepo struct {
	db *sql.DB
}

func NewCatalogRepo(db *sql.DB) *CatalogRepo {
	return &CatalogRepo{db: db}
}

func (r *CatalogRepo) Create(ctx context.Context, it catalog.Item) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO catalog_items (
			id, name, kind, category,
			price_cents, stock, active,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		it.ID,
		it.Name,
		string(it.Kind),
		it.Category,
		it.PriceCents,
		it.Stock,
		it.Active,
		it.CreatedAt,
		it.UpdatedAt,
	)
	return err
}

func (r *CatalogRepo) Update(ctx context.Context, it catalog.Item) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE catalog_items
		SET
			name = $2,
			category = $3,
			price_cents = $4,
			stock = $5,
			active = $6,
			updated_at = $7
		WHERE id = $1
	`,
		it.ID,
		it.Name,
		it.Category,
		it.PriceCents,
		it.Stock,
		it.Active,
		it.UpdatedAt,
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

func (r *CatalogRepo) GetByID(ctx context.Context, id string) (catalog.Item, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return catalog.Item{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, name, kind, category,
			price_cents, stock, active,
			created_at, updated_at
		FROM catalog_items
		WHERE id = $1
	`, id)

	it, err := scanItem(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return catalog.Item{}, ErrNotFound
		}
		return catalog.Item{}, err
	}
	return it, nil
}

func (r *CatalogRepo) List(ctx context.Context, filter catalog.ListFilter) ([]catalog.Item, error) {
	q := "%" + strings.TrimSpace(filter.Query) + "%"

	limit := filter.Limit
	if limit <= 0 {
		limit = -1
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, name, kind, category,
			price_cents, stock, active,
			created_at, updated_at
		FROM catalog_items
		WHERE ($1 = '' OR kind = $1)
		  AND (NOT $2 OR active)
		  AND ($3 = '%%' OR name ILIKE $3)
		ORDER BY created_at ASC
		LIMIT NULLIF($4, -1)
	`, string(filter.Kind), filter.OnlyActive, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]catalog.Item, 0)
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func scanItem(row rowScanner) (catalog.Item, error) {
	var it catalog.Item
	var kind string
	if err := row.Scan(
		&it.ID,
		&it.Name,
		&kind,
		&it.Category,
		&it.PriceCents,
		&it.Stock,
		&it.Active,
		&it.CreatedAt,
		&it.UpdatedAt,
	); err != nil {
		return catalog.Item{}, err
	}
	it.Kind = catalog.Kind(kind)
	return it, nil
}
