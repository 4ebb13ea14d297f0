package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

func (s *PostgresStorage) CreateQuote(ctx context.Context, quote *Quote) error {
	const query = `
        INSERT INTO quotes (
            reference, name, email, phone, company, box_type, quantity,
            length, width, height, printing, print_colors, use_case,
            special_requirements, status
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
        RETURNING id, created_at, updated_at
    `

	err := s.db.QueryRowxContext(ctx, query,
		quote.Reference,
		quote.Name,
		quote.Email,
		quote.Phone,
		quote.Company,
		quote.BoxType,
		quote.Quantity,
		quote.Length,
		quote.Width,
		quote.Height,
		quote.Printing,
		quote.PrintColors,
		quote.UseCase,
		quote.SpecialRequirements,
		QuoteStatusPending,
	).Scan(&quote.ID, &quote.CreatedAt, &quote.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to save quote: %w", err)
	}
	quote.Status = QuoteStatusPending

	// Invalidate dashboard cache
	s.redis.Del(ctx, dashboardStatsKey)

	return nil
}

func (s *PostgresStorage) ListQuotes(ctx context.Context) ([]Quote, error) {
	const query = `SELECT * FROM quotes ORDER BY created_at DESC`

	quotes := []Quote{}
	if err := s.db.SelectContext(ctx, &quotes, query); err != nil {
		return nil, fmt.Errorf("failed to list quotes: %w", err)
	}
	return quotes, nil
}

func (s *PostgresStorage) GetQuoteByID(ctx context.Context, id int64) (*Quote, error) {
	const query = `SELECT * FROM quotes WHERE id = $1`

	var quote Quote
	err := s.db.GetContext(ctx, &quote, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get quote: %w", err)
	}
	return &quote, nil
}

// QuotePatch carries the admin-editable quote fields. Nil means unchanged.
type QuotePatch struct {
	Status      *string  `json:"status"`
	Notes       *string  `json:"notes"`
	QuotedPrice *float64 `json:"quotedPrice"`
}

func (s *PostgresStorage) UpdateQuote(ctx context.Context, id int64, patch QuotePatch) (*Quote, error) {
	const query = `
        UPDATE quotes SET
            status = COALESCE($2, status),
            notes = COALESCE($3, notes),
            quoted_price = COALESCE($4, quoted_price),
            updated_at = now()
        WHERE id = $1
        RETURNING *
    `

	var quote Quote
	err := s.db.GetContext(ctx, &quote, query, id, patch.Status, patch.Notes, patch.QuotedPrice)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update quote: %w", err)
	}

	s.redis.Del(ctx, dashboardStatsKey)

	return &quote, nil
}

func (s *PostgresStorage) DeleteQuote(ctx context.Context, id int64) error {
	const query = `DELETE FROM quotes WHERE id = $1`

	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete quote: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}

	s.redis.Del(ctx, dashboardStatsKey)

	return nil
}
