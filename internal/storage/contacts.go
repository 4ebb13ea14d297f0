package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

func (s *PostgresStorage) CreateContact(ctx context.Context, contact *Contact) error {
	const query = `
        INSERT INTO contacts (name, email, phone, subject, message)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at
    `

	err := s.db.QueryRowxContext(ctx, query,
		contact.Name,
		contact.Email,
		contact.Phone,
		contact.Subject,
		contact.Message,
	).Scan(&contact.ID, &contact.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to save contact: %w", err)
	}

	s.redis.Del(ctx, dashboardStatsKey)

	return nil
}

func (s *PostgresStorage) ListContacts(ctx context.Context) ([]Contact, error) {
	const query = `SELECT * FROM contacts ORDER BY created_at DESC`

	contacts := []Contact{}
	if err := s.db.SelectContext(ctx, &contacts, query); err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	return contacts, nil
}

func (s *PostgresStorage) MarkContactRead(ctx context.Context, id int64, read bool) (*Contact, error) {
	const query = `UPDATE contacts SET is_read = $2 WHERE id = $1 RETURNING *`

	var contact Contact
	err := s.db.GetContext(ctx, &contact, query, id, read)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}

	s.redis.Del(ctx, dashboardStatsKey)

	return &contact, nil
}

func (s *PostgresStorage) DeleteContact(ctx context.Context, id int64) error {
	const query = `DELETE FROM contacts WHERE id = $1`

	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}

	s.redis.Del(ctx, dashboardStatsKey)

	return nil
}
