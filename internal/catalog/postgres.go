package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MrEshboboyev/api-versioning/pkg/pg"
)

const productColumns = `id, name, display_name, description, price, currency,
	is_discounted, discounted_price, in_stock, quantity, category, department,
	tags, views, purchases, rating, reviews_count`

// PostgresStore is a Store implementation backed by PostgreSQL via pgx.
// Schema lives in migrations/ and is applied with pg.Migrate at startup.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a store on top of an established connection pool.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) List(ctx context.Context) ([]Product, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+productColumns+` FROM products ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var result []Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("list products: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return result, nil
}

func (s *PostgresStore) Get(ctx context.Context, id uuid.UUID) (Product, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id)

	p, err := scanProduct(row)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return Product{}, ErrProductNotFound
		}
		return Product{}, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

func (s *PostgresStore) Create(ctx context.Context, p Product) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO products (`+productColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		p.ID, p.Name, p.DisplayName, p.Description, p.Price, p.Currency,
		p.IsDiscounted, p.DiscountedPrice, p.InStock, p.Quantity, p.Category,
		p.Department, p.Tags, p.Views, p.Purchases, p.Rating, p.ReviewsCount)
	if err != nil {
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

// Update merges the patch in a single statement so no reader observes a
// half-applied patch. Nil patch fields leave the stored column untouched.
func (s *PostgresStore) Update(ctx context.Context, id uuid.UUID, patch Patch) (Product, error) {
	row := s.pool.QueryRow(ctx,
		`UPDATE products SET
			name             = COALESCE($2, name),
			display_name     = COALESCE($3, display_name),
			description      = COALESCE($4, description),
			price            = COALESCE($5, price),
			currency         = COALESCE($6, currency),
			is_discounted    = COALESCE($7, is_discounted),
			discounted_price = COALESCE($8, discounted_price),
			in_stock         = COALESCE($9, in_stock),
			quantity         = COALESCE($10, quantity),
			category         = COALESCE($11, category),
			department       = COALESCE($12, department),
			tags             = COALESCE($13, tags)
		 WHERE id = $1
		 RETURNING `+productColumns,
		id, patch.Name, patch.DisplayName, patch.Description, patch.Price,
		patch.Currency, patch.IsDiscounted, patch.DiscountedPrice,
		patch.InStock, patch.Quantity, patch.Category, patch.Department,
		patch.Tags)

	p, err := scanProduct(row)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return Product{}, ErrProductNotFound
		}
		return Product{}, fmt.Errorf("update product: %w", err)
	}
	return p, nil
}

func (s *PostgresStore) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (s *PostgresStore) IncrementViews(ctx context.Context, id uuid.UUID) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE products SET views = views + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("increment views: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}
	return nil
}

func scanProduct(row pgx.Row) (Product, error) {
	var p Product
	err := row.Scan(
		&p.ID, &p.Name, &p.DisplayName, &p.Description, &p.Price, &p.Currency,
		&p.IsDiscounted, &p.DiscountedPrice, &p.InStock, &p.Quantity,
		&p.Category, &p.Department, &p.Tags, &p.Views, &p.Purchases,
		&p.Rating, &p.ReviewsCount)
	return p, err
}
