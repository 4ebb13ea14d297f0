package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

func (s *PostgresStorage) CreateTestimonial(ctx context.Context, t *Testimonial) error {
	const query = `
        INSERT INTO testimonials (
            client_name, company, position, rating, testimonial, image,
            company_logo, project_details, is_active, is_featured
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id, created_at
    `

	err := s.db.QueryRowxContext(ctx, query,
		t.ClientName,
		t.Company,
		t.Position,
		t.Rating,
		t.Testimonial,
		t.Image,
		t.CompanyLogo,
		t.ProjectDetails,
		t.IsActive,
		t.IsFeatured,
	).Scan(&t.ID, &t.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to save testimonial: %w", err)
	}
	return nil
}

func (s *PostgresStorage) ListTestimonials(ctx context.Context, featuredOnly, activeOnly bool) ([]Testimonial, error) {
	query := `SELECT * FROM testimonials WHERE 1=1`
	if activeOnly {
		query += ` AND is_active = TRUE`
	}
	if featuredOnly {
		query += ` AND is_featured = TRUE`
	}
	query += ` ORDER BY created_at DESC`

	testimonials := []Testimonial{}
	if err := s.db.SelectContext(ctx, &testimonials, query); err != nil {
		return nil, fmt.Errorf("failed to list testimonials: %w", err)
	}
	return testimonials, nil
}

func (s *PostgresStorage) UpdateTestimonial(ctx context.Context, id int64, t *Testimonial) error {
	const query = `
        UPDATE testimonials SET
            client_name = $2, company = $3, position = $4, rating = $5,
            testimonial = $6, image = $7, company_logo = $8,
            project_details = $9, is_active = $10, is_featured = $11
        WHERE id = $1
        RETURNING id, created_at
    `

	err := s.db.QueryRowxContext(ctx, query,
		id,
		t.ClientName,
		t.Company,
		t.Position,
		t.Rating,
		t.Testimonial,
		t.Image,
		t.CompanyLogo,
		t.ProjectDetails,
		t.IsActive,
		t.IsFeatured,
	).Scan(&t.ID, &t.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update testimonial: %w", err)
	}
	return nil
}

func (s *PostgresStorage) DeleteTestimonial(ctx context.Context, id int64) error {
	const query = `DELETE FROM testimonials WHERE id = $1`

	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete testimonial: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
