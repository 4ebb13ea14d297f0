package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/nruhp/newskprinter/internal/content"
)

func (s *PostgresStorage) CreateCaseStudy(ctx context.Context, cs *CaseStudy) error {
	const query = `
        INSERT INTO case_studies (
            title, slug, client, challenge, solution, results, metrics,
            images, featured_image, tags, is_published, is_featured
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
        RETURNING id, created_at, updated_at
    `

	for attempt := 0; attempt < maxSlugAttempts; attempt++ {
		cs.Slug = content.SlugWithSuffix(cs.Title, attempt)

		err := s.db.QueryRowxContext(ctx, query,
			cs.Title,
			cs.Slug,
			cs.Client,
			cs.Challenge,
			cs.Solution,
			cs.Results,
			cs.Metrics,
			cs.Images,
			cs.FeaturedImage,
			cs.Tags,
			cs.IsPublished,
			cs.IsFeatured,
		).Scan(&cs.ID, &cs.CreatedAt, &cs.UpdatedAt)

		if err == nil {
			return nil
		}
		if isUniqueViolation(err) {
			continue
		}
		return fmt.Errorf("failed to save case study: %w", err)
	}

	return fmt.Errorf("failed to save case study: slug namespace exhausted for %q", cs.Title)
}

func (s *PostgresStorage) ListCaseStudies(ctx context.Context, publishedOnly bool) ([]CaseStudy, error) {
	query := `SELECT * FROM case_studies`
	if publishedOnly {
		query += ` WHERE is_published = TRUE`
	}
	query += ` ORDER BY created_at DESC`

	studies := []CaseStudy{}
	if err := s.db.SelectContext(ctx, &studies, query); err != nil {
		return nil, fmt.Errorf("failed to list case studies: %w", err)
	}
	return studies, nil
}

func (s *PostgresStorage) GetCaseStudyBySlug(ctx context.Context, slug string) (*CaseStudy, error) {
	const query = `SELECT * FROM case_studies WHERE slug = $1 AND is_published = TRUE`

	var cs CaseStudy
	err := s.db.GetContext(ctx, &cs, query, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get case study: %w", err)
	}
	return &cs, nil
}

func (s *PostgresStorage) UpdateCaseStudy(ctx context.Context, id int64, cs *CaseStudy) error {
	const query = `
        UPDATE case_studies SET
            title = $2, slug = $3, client = $4, challenge = $5,
            solution = $6, results = $7, metrics = $8, images = $9,
            featured_image = $10, tags = $11, is_published = $12,
            is_featured = $13, updated_at = now()
        WHERE id = $1
        RETURNING id, created_at, updated_at
    `

	for attempt := 0; attempt < maxSlugAttempts; attempt++ {
		cs.Slug = content.SlugWithSuffix(cs.Title, attempt)

		err := s.db.QueryRowxContext(ctx, query,
			id,
			cs.Title,
			cs.Slug,
			cs.Client,
			cs.Challenge,
			cs.Solution,
			cs.Results,
			cs.Metrics,
			cs.Images,
			cs.FeaturedImage,
			cs.Tags,
			cs.IsPublished,
			cs.IsFeatured,
		).Scan(&cs.ID, &cs.CreatedAt, &cs.UpdatedAt)

		if err == nil {
			return nil
		}
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		if isUniqueViolation(err) {
			continue
		}
		return fmt.Errorf("failed to update case study: %w", err)
	}

	return fmt.Errorf("failed to update case study: slug namespace exhausted for %q", cs.Title)
}

func (s *PostgresStorage) DeleteCaseStudy(ctx context.Context, id int64) error {
	const query = `DELETE FROM case_studies WHERE id = $1`

	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete case study: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
