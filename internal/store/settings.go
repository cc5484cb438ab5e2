// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"staticcms/internal/models"
)

// SettingsStore handles the single UI settings row.
type SettingsStore struct {
	db *sql.DB
}

// NewSettingsStore creates a new SettingsStore.
func NewSettingsStore(db *sql.DB) *SettingsStore {
	return &SettingsStore{db: db}
}

// Get returns the settings, creating the row with defaults on first read.
func (s *SettingsStore) Get() (models.UISettings, error) {
	var st models.UISettings
	err := s.db.QueryRow(`SELECT brand_primary, brand_hover FROM settings WHERE id = 1`).
		Scan(&st.BrandPrimary, &st.BrandHover)
	if err == nil {
		return st, nil
	}
	if !notFound(err) {
		return models.UISettings{}, fmt.Errorf("get settings: %w", err)
	}

	def := models.DefaultUISettings()
	if _, err := s.db.Exec(`
		INSERT INTO settings (id, brand_primary, brand_hover)
		VALUES (1, $1, $2)
		ON CONFLICT (id) DO NOTHING
	`, def.BrandPrimary, def.BrandHover); err != nil {
		return models.UISettings{}, fmt.Errorf("create default settings: %w", err)
	}
	return def, nil
}

// Update stores new settings and returns them.
func (s *SettingsStore) Update(in models.UISettings) (models.UISettings, error) {
	var st models.UISettings
	err := s.db.QueryRow(`
		INSERT INTO settings (id, brand_primary, brand_hover)
		VALUES (1, $1, $2)
		ON CONFLICT (id) DO UPDATE SET
			brand_primary = EXCLUDED.brand_primary,
			brand_hover = EXCLUDED.brand_hover,
			updated_at = NOW()
		RETURNING brand_primary, brand_hover
	`, in.BrandPrimary, in.BrandHover).Scan(&st.BrandPrimary, &st.BrandHover)
	if err != nil {
		return models.UISettings{}, fmt.Errorf("update settings: %w", err)
	}
	return st, nil
}
