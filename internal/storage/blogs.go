package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/nruhp/newskprinter/internal/content"
)

func (s *PostgresStorage) CreateBlog(ctx context.Context, blog *Blog) error {
	const query = `
        INSERT INTO blogs (
            title, slug, excerpt, content, category, tags, author,
            read_time, is_published, published_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id, created_at, updated_at
    `

	blog.ReadTime = content.ReadTime(blog.Content)
	if blog.IsPublished && blog.PublishedAt == nil {
		now := time.Now()
		blog.PublishedAt = &now
	}

	for attempt := 0; attempt < maxSlugAttempts; attempt++ {
		blog.Slug = content.SlugWithSuffix(blog.Title, attempt)

		err := s.db.QueryRowxContext(ctx, query,
			blog.Title,
			blog.Slug,
			blog.Excerpt,
			blog.Content,
			blog.Category,
			blog.Tags,
			blog.Author,
			blog.ReadTime,
			blog.IsPublished,
			blog.PublishedAt,
		).Scan(&blog.ID, &blog.CreatedAt, &blog.UpdatedAt)

		if err == nil {
			return nil
		}
		if isUniqueViolation(err) {
			continue
		}
		return fmt.Errorf("failed to save blog: %w", err)
	}

	return fmt.Errorf("failed to save blog: slug namespace exhausted for %q", blog.Title)
}

func (s *PostgresStorage) ListBlogs(ctx context.Context, filter BlogFilter) ([]Blog, error) {
	query := `SELECT * FROM blogs WHERE 1=1`
	args := []any{}

	if filter.PublishedOnly {
		query += ` AND is_published = TRUE`
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if filter.Tag != "" {
		args = append(args, filter.Tag)
		query += fmt.Sprintf(" AND $%d = ANY(tags)", len(args))
	}
	query += ` ORDER BY created_at DESC`

	blogs := []Blog{}
	if err := s.db.SelectContext(ctx, &blogs, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list blogs: %w", err)
	}
	return blogs, nil
}

// GetBlogBySlug returns a post and bumps its view counter. The increment
// is fire-and-forget accuracy: concurrent reads may race the returned
// count, the stored counter itself stays correct.
func (s *PostgresStorage) GetBlogBySlug(ctx context.Context, slug string) (*Blog, error) {
	const query = `
        UPDATE blogs SET views = views + 1
        WHERE slug = $1 AND is_published = TRUE
        RETURNING *
    `

	var blog Blog
	err := s.db.GetContext(ctx, &blog, query, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get blog: %w", err)
	}
	return &blog, nil
}

// GetBlogByID returns a post without touching the view counter (admin path).
func (s *PostgresStorage) GetBlogByID(ctx context.Context, id int64) (*Blog, error) {
	const query = `SELECT * FROM blogs WHERE id = $1`

	var blog Blog
	err := s.db.GetContext(ctx, &blog, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get blog: %w", err)
	}
	return &blog, nil
}

func (s *PostgresStorage) UpdateBlog(ctx context.Context, id int64, blog *Blog) error {
	const query = `
        UPDATE blogs SET
            title = $2, slug = $3, excerpt = $4, content = $5,
            category = $6, tags = $7, author = $8, read_time = $9,
            is_published = $10, published_at = $11, updated_at = now()
        WHERE id = $1
        RETURNING id, views, created_at, updated_at
    `

	blog.ReadTime = content.ReadTime(blog.Content)
	if blog.IsPublished && blog.PublishedAt == nil {
		now := time.Now()
		blog.PublishedAt = &now
	}

	for attempt := 0; attempt < maxSlugAttempts; attempt++ {
		blog.Slug = content.SlugWithSuffix(blog.Title, attempt)

		err := s.db.QueryRowxContext(ctx, query,
			id,
			blog.Title,
			blog.Slug,
			blog.Excerpt,
			blog.Content,
			blog.Category,
			blog.Tags,
			blog.Author,
			blog.ReadTime,
			blog.IsPublished,
			blog.PublishedAt,
		).Scan(&blog.ID, &blog.Views, &blog.CreatedAt, &blog.UpdatedAt)

		if err == nil {
			return nil
		}
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		if isUniqueViolation(err) {
			continue
		}
		return fmt.Errorf("failed to update blog: %w", err)
	}

	return fmt.Errorf("failed to update blog: slug namespace exhausted for %q", blog.Title)
}

func (s *PostgresStorage) DeleteBlog(ctx context.Context, id int64) error {
	const query = `DELETE FROM blogs WHERE id = $1`

	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete blog: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
