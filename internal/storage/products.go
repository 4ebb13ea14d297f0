package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/nruhp/newskprinter/internal/content"
)

// How many suffixed slugs to try before giving up on a unique violation.
const maxSlugAttempts = 5

func (s *PostgresStorage) CreateProduct(ctx context.Context, product *Product) error {
	const query = `
        INSERT INTO products (
            name, slug, description, category, type, specifications,
            pricing, features, applications, images, technical_specs,
            certifications, seo, is_active, is_featured
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
        RETURNING id, created_at, updated_at
    `

	for attempt := 0; attempt < maxSlugAttempts; attempt++ {
		product.Slug = content.SlugWithSuffix(product.Name, attempt)

		err := s.db.QueryRowxContext(ctx, query,
			product.Name,
			product.Slug,
			product.Description,
			product.Category,
			product.Type,
			product.Specifications,
			product.Pricing,
			product.Features,
			product.Applications,
			product.Images,
			product.TechnicalSpecs,
			product.Certifications,
			product.SEO,
			product.IsActive,
			product.IsFeatured,
		).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)

		if err == nil {
			return nil
		}
		if isUniqueViolation(err) {
			continue
		}
		return fmt.Errorf("failed to save product: %w", err)
	}

	return fmt.Errorf("failed to save product: slug namespace exhausted for %q", product.Name)
}

func (s *PostgresStorage) ListProducts(ctx context.Context, filter ProductFilter) ([]Product, error) {
	query := `SELECT * FROM products WHERE 1=1`
	args := []any{}

	if filter.Category != "" {
		args = append(args, filter.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if filter.Type != "" {
		args = append(args, filter.Type)
		query += fmt.Sprintf(" AND type = $%d", len(args))
	}
	if filter.Featured != nil {
		args = append(args, *filter.Featured)
		query += fmt.Sprintf(" AND is_featured = $%d", len(args))
	}
	if filter.Active != nil {
		args = append(args, *filter.Active)
		query += fmt.Sprintf(" AND is_active = $%d", len(args))
	}
	query += ` ORDER BY created_at DESC`

	products := []Product{}
	if err := s.db.SelectContext(ctx, &products, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (s *PostgresStorage) GetProductBySlug(ctx context.Context, slug string) (*Product, error) {
	const query = `SELECT * FROM products WHERE slug = $1`

	var product Product
	err := s.db.GetContext(ctx, &product, query, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return &product, nil
}

// UpdateProduct replaces the editable fields of a product. The slug is
// re-derived from the name, with the same collision suffixing as on
// create. Updating a row against its own slug is not a collision.
func (s *PostgresStorage) UpdateProduct(ctx context.Context, id int64, product *Product) error {
	const query = `
        UPDATE products SET
            name = $2, slug = $3, description = $4, category = $5,
            type = $6, specifications = $7, pricing = $8, features = $9,
            applications = $10, images = $11, technical_specs = $12,
            certifications = $13, seo = $14, is_active = $15,
            is_featured = $16, updated_at = now()
        WHERE id = $1
        RETURNING id, created_at, updated_at
    `

	for attempt := 0; attempt < maxSlugAttempts; attempt++ {
		product.Slug = content.SlugWithSuffix(product.Name, attempt)

		err := s.db.QueryRowxContext(ctx, query,
			id,
			product.Name,
			product.Slug,
			product.Description,
			product.Category,
			product.Type,
			product.Specifications,
			product.Pricing,
			product.Features,
			product.Applications,
			product.Images,
			product.TechnicalSpecs,
			product.Certifications,
			product.SEO,
			product.IsActive,
			product.IsFeatured,
		).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)

		if err == nil {
			return nil
		}
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		if isUniqueViolation(err) {
			continue
		}
		return fmt.Errorf("failed to update product: %w", err)
	}

	return fmt.Errorf("failed to update product: slug namespace exhausted for %q", product.Name)
}

func (s *PostgresStorage) DeleteProduct(ctx context.Context, id int64) error {
	const query = `DELETE FROM products WHERE id = $1`

	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
