// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"staticcms/internal/models"
)

// DashboardStore answers the dashboard's aggregate queries.
type DashboardStore struct {
	db *sql.DB
}

// NewDashboardStore creates a new DashboardStore.
func NewDashboardStore(db *sql.DB) *DashboardStore {
	return &DashboardStore{db: db}
}

// Stats returns the record counters.
func (s *DashboardStore) Stats() (models.DashboardStats, error) {
	var st models.DashboardStats
	err := s.db.QueryRow(`
		SELECT
			(SELECT COUNT(*) FROM pages),
			(SELECT COUNT(*) FROM pages WHERE is_published),
			(SELECT COUNT(*) FROM menus),
			(SELECT COUNT(*) FROM uploads)
	`).Scan(&st.Pages, &st.PublishedPages, &st.Menus, &st.Uploads)
	if err != nil {
		return models.DashboardStats{}, fmt.Errorf("dashboard stats: %w", err)
	}
	return st, nil
}

// RecentPages returns the most recently updated pages.
func (s *DashboardStore) RecentPages(limit int) ([]models.RecentPage, error) {
	rows, err := s.db.Query(`
		SELECT id, title, slug, is_published, is_homepage, updated_at
		FROM pages
		ORDER BY updated_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent pages: %w", err)
	}
	defer rows.Close()

	out := []models.RecentPage{}
	for rows.Next() {
		var (
			p       models.RecentPage
			id      uuid.UUID
			updated time.Time
		)
		if err := rows.Scan(&id, &p.Title, &p.Slug, &p.IsPublished, &p.IsHomepage, &updated); err != nil {
			return nil, fmt.Errorf("scan recent page: %w", err)
		}
		p.ID = models.ID(id.String())
		p.UpdatedAt = models.NewTimestamp(updated)
		out = append(out, p)
	}
	return out, rows.Err()
}
