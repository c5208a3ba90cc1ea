package catalog

import (
	"context"
	"database/sql"
	"time"
)

const (
	pingTimeout  = 1 * time.Second
	queryTimeout = 3 * time.Second
)

const productColumns = `id, name, price_cents, image, description, category, badge, featured, clarity, gem_type`

// PostgresStore serves the catalog from a products table. Ordering follows
// the pos column, which records declaration order at load time.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return withTimeout(ctx, pingTimeout, func(ctx context.Context) error {
		return s.db.PingContext(ctx)
	})
}

func (s *PostgresStore) All(ctx context.Context) ([]Product, error) {
	return s.query(ctx, `
		SELECT `+productColumns+`
		FROM products
		ORDER BY pos ASC
	`)
}

func (s *PostgresStore) ByCategory(ctx context.Context, c Category) ([]Product, error) {
	return s.query(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE category = $1
		ORDER BY pos ASC
	`, string(c))
}

func (s *PostgresStore) Featured(ctx context.Context) ([]Product, error) {
	return s.query(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE featured
		ORDER BY pos ASC
	`)
}

func (s *PostgresStore) ByID(ctx context.Context, id string) (Product, bool, error) {
	return s.queryRow(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE id = $1
	`, id)
}

func (s *PostgresStore) Random(ctx context.Context, c Category) (Product, bool, error) {
	if c != "" {
		return s.queryRow(ctx, `
			SELECT `+productColumns+`
			FROM products
			WHERE category = $1
			ORDER BY random()
			LIMIT 1
		`, string(c))
	}
	return s.queryRow(ctx, `
		SELECT `+productColumns+`
		FROM products
		ORDER BY random()
		LIMIT 1
	`)
}

func (s *PostgresStore) query(ctx context.Context, q string, args ...any) ([]Product, error) {
	var out []Product

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		rows, err := s.db.QueryContext(ctx, q, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		out = make([]Product, 0, 32)
		for rows.Next() {
			p, err := scanProduct(rows)
			if err != nil {
				return err
			}
			out = append(out, p)
		}
		return rows.Err()
	})

	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *PostgresStore) queryRow(ctx context.Context, q string, args ...any) (Product, bool, error) {
	var (
		p   Product
		err error
	)

	err = withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		p, err = scanProduct(s.db.QueryRowContext(ctx, q, args...))
		return err
	})

	if err == sql.ErrNoRows {
		return Product{}, false, nil
	}
	if err != nil {
		return Product{}, false, err
	}
	return p, true, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (Product, error) {
	var (
		p                       Product
		badge, clarity, gemType sql.NullString
	)

	err := row.Scan(&p.ID, &p.Name, &p.PriceCents, &p.Image, &p.Description,
		&p.Category, &badge, &p.Featured, &clarity, &gemType)
	if err != nil {
		return Product{}, err
	}

	p.Badge = Badge(badge.String)
	p.Clarity = clarity.String
	p.GemType = gemType.String
	return p, nil
}

func withTimeout(parent context.Context, d time.Duration, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(parent, d)
	defer cancel()
	return fn(ctx)
}
