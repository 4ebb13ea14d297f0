package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

const dashboardStatsKey = "dashboard_stats"

type DashboardSummary struct {
	TotalProducts     int `db:"total_products" json:"totalProducts"`
	TotalBlogs        int `db:"total_blogs" json:"totalBlogs"`
	TotalQuotes       int `db:"total_quotes" json:"totalQuotes"`
	PendingQuotes     int `db:"pending_quotes" json:"pendingQuotes"`
	UnreadContacts    int `db:"unread_contacts" json:"unreadContacts"`
	TotalTestimonials int `db:"total_testimonials" json:"totalTestimonials"`
	TotalCaseStudies  int `db:"total_case_studies" json:"totalCaseStudies"`
}

type DashboardStats struct {
	Summary        DashboardSummary `json:"summary"`
	RecentQuotes   []Quote          `json:"recentQuotes"`
	RecentContacts []Contact        `json:"recentContacts"`
	TopBlogs       []Blog           `json:"topBlogs"`
}

// GetDashboardStats aggregates the admin dashboard numbers. The result is
// cached in Redis for an hour; quote and contact writes invalidate it.
func (s *PostgresStorage) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	if cached, err := s.redis.Get(ctx, dashboardStatsKey); err == nil {
		var stats DashboardStats
		if err := json.Unmarshal(cached, &stats); err == nil {
			return &stats, nil
		}
	}

	stats := &DashboardStats{}

	const summaryQuery = `
        SELECT
            (SELECT COUNT(*) FROM products WHERE is_active) AS total_products,
            (SELECT COUNT(*) FROM blogs WHERE is_published) AS total_blogs,
            (SELECT COUNT(*) FROM quotes) AS total_quotes,
            (SELECT COUNT(*) FROM quotes WHERE status = 'pending') AS pending_quotes,
            (SELECT COUNT(*) FROM contacts WHERE NOT is_read) AS unread_contacts,
            (SELECT COUNT(*) FROM testimonials WHERE is_active) AS total_testimonials,
            (SELECT COUNT(*) FROM case_studies WHERE is_published) AS total_case_studies
    `
	if err := s.db.GetContext(ctx, &stats.Summary, summaryQuery); err != nil {
		return nil, fmt.Errorf("failed to get dashboard summary: %w", err)
	}

	const recentQuotesQuery = `SELECT * FROM quotes ORDER BY created_at DESC LIMIT 5`
	if err := s.db.SelectContext(ctx, &stats.RecentQuotes, recentQuotesQuery); err != nil {
		return nil, fmt.Errorf("failed to get recent quotes: %w", err)
	}

	const recentContactsQuery = `SELECT * FROM contacts ORDER BY created_at DESC LIMIT 5`
	if err := s.db.SelectContext(ctx, &stats.RecentContacts, recentContactsQuery); err != nil {
		return nil, fmt.Errorf("failed to get recent contacts: %w", err)
	}

	const topBlogsQuery = `
        SELECT * FROM blogs
        WHERE is_published
        ORDER BY views DESC
        LIMIT 5
    `
	if err := s.db.SelectContext(ctx, &stats.TopBlogs, topBlogsQuery); err != nil {
		return nil, fmt.Errorf("failed to get top blogs: %w", err)
	}

	if data, err := json.Marshal(stats); err == nil {
		s.redis.Set(ctx, dashboardStatsKey, data, 1*time.Hour)
	}

	return stats, nil
}

type DayCount struct {
	Day   string `db:"day" json:"day"`
	Count int    `db:"count" json:"count"`
}

type LabelCount struct {
	Label string `db:"label" json:"label"`
	Count int    `db:"count" json:"count"`
}

type Analytics struct {
	QuotesOverTime     []DayCount   `json:"quotesOverTime"`
	QuotesByStatus     []LabelCount `json:"quotesByStatus"`
	ProductsByCategory []LabelCount `json:"productsByCategory"`
}

// GetAnalytics returns submission trends over the trailing period.
func (s *PostgresStorage) GetAnalytics(ctx context.Context, periodDays int) (*Analytics, error) {
	analytics := &Analytics{}

	const overTimeQuery = `
        SELECT to_char(created_at::date, 'YYYY-MM-DD') AS day, COUNT(*) AS count
        FROM quotes
        WHERE created_at >= CURRENT_DATE - $1 * INTERVAL '1 day'
        GROUP BY created_at::date
        ORDER BY created_at::date
    `
	if err := s.db.SelectContext(ctx, &analytics.QuotesOverTime, overTimeQuery, periodDays); err != nil {
		return nil, fmt.Errorf("failed to get quotes over time: %w", err)
	}

	const byStatusQuery = `
        SELECT status AS label, COUNT(*) AS count
        FROM quotes
        GROUP BY status
    `
	if err := s.db.SelectContext(ctx, &analytics.QuotesByStatus, byStatusQuery); err != nil {
		return nil, fmt.Errorf("failed to get quotes by status: %w", err)
	}

	const byCategoryQuery = `
        SELECT category AS label, COUNT(*) AS count
        FROM products
        GROUP BY category
    `
	if err := s.db.SelectContext(ctx, &analytics.ProductsByCategory, byCategoryQuery); err != nil {
		return nil, fmt.Errorf("failed to get products by category: %w", err)
	}

	return analytics, nil
}
