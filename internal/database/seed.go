// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"staticcms/internal/blocks"
	"staticcms/internal/models"
)

// Seed populates an empty database: the settings row with default brand
// colors and, when there are no pages yet, a published welcome homepage.
func Seed(db *sql.DB) error {
	def := models.DefaultUISettings()
	if _, err := db.Exec(`
		INSERT INTO settings (id, brand_primary, brand_hover)
		VALUES (1, $1, $2)
		ON CONFLICT (id) DO NOTHING
	`, def.BrandPrimary, def.BrandHover); err != nil {
		return fmt.Errorf("seed settings: %w", err)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM pages").Scan(&count); err != nil {
		return fmt.Errorf("seed check pages: %w", err)
	}
	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	seq, _, err := blocks.Insert(nil, blocks.KindHero)
	if err != nil {
		return fmt.Errorf("seed hero block: %w", err)
	}
	seq, _, err = blocks.Insert(seq, blocks.KindText)
	if err != nil {
		return fmt.Errorf("seed text block: %w", err)
	}
	raw, err := json.Marshal(seq)
	if err != nil {
		return fmt.Errorf("seed marshal blocks: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO pages (title, slug, meta_description, blocks, is_published, is_homepage)
		VALUES ($1, $2, $3, $4, TRUE, TRUE)
	`, "Welcome", "welcome", "Your new site", raw)
	if err != nil {
		return fmt.Errorf("seed insert homepage: %w", err)
	}

	slog.Info("database seeded with welcome homepage", "slug", "welcome")
	return nil
}
