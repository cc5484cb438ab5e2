// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"staticcms/internal/menutree"
	"staticcms/internal/models"
)

const menuColumns = `id, title, logo_url, items, cta_text, cta_link, cta_color, cta_hover_color`

// MenuStore handles menu persistence.
type MenuStore struct {
	db *sql.DB
}

// NewMenuStore creates a new MenuStore.
func NewMenuStore(db *sql.DB) *MenuStore {
	return &MenuStore{db: db}
}

// List returns every menu in creation order.
func (s *MenuStore) List() ([]models.Menu, error) {
	rows, err := s.db.Query(`SELECT ` + menuColumns + ` FROM menus ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list menus: %w", err)
	}
	defer rows.Close()

	menus := []models.Menu{}
	for rows.Next() {
		m, err := scanMenu(rows)
		if err != nil {
			return nil, err
		}
		menus = append(menus, *m)
	}
	return menus, rows.Err()
}

// FindByID retrieves a menu. Returns nil if not found.
func (s *MenuStore) FindByID(id uuid.UUID) (*models.Menu, error) {
	m, err := scanMenu(s.db.QueryRow(`SELECT `+menuColumns+` FROM menus WHERE id = $1`, id))
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find menu by id: %w", err)
	}
	return m, nil
}

// Create inserts a menu. Items without an id are given one. A duplicate
// title fails with ErrConflict.
func (s *MenuStore) Create(in models.MenuPayload) (*models.Menu, error) {
	raw, err := encodeItems(in.Items)
	if err != nil {
		return nil, err
	}
	m, err := scanMenu(s.db.QueryRow(`
		INSERT INTO menus (title, logo_url, items, cta_text, cta_link, cta_color, cta_hover_color)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+menuColumns,
		in.Title, in.LogoURL, raw, in.CTAText, in.CTALink, colorOr(in.CTAColor, models.DefaultCTAColor), colorOr(in.CTAHoverColor, models.DefaultCTAHoverColor),
	))
	if err != nil {
		return nil, wrapWrite("create menu", err)
	}
	return m, nil
}

// Update replaces a menu. Returns nil if the menu does not exist.
func (s *MenuStore) Update(id uuid.UUID, in models.MenuPayload) (*models.Menu, error) {
	raw, err := encodeItems(in.Items)
	if err != nil {
		return nil, err
	}
	m, err := scanMenu(s.db.QueryRow(`
		UPDATE menus SET
			title = $2, logo_url = $3, items = $4, cta_text = $5, cta_link = $6,
			cta_color = $7, cta_hover_color = $8, updated_at = NOW()
		WHERE id = $1
		RETURNING `+menuColumns,
		id, in.Title, in.LogoURL, raw, in.CTAText, in.CTALink, colorOr(in.CTAColor, models.DefaultCTAColor), colorOr(in.CTAHoverColor, models.DefaultCTAHoverColor),
	))
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapWrite("update menu", err)
	}
	return m, nil
}

func colorOr(c, fallback string) string {
	if c == "" {
		return fallback
	}
	return c
}

func encodeItems(items []menutree.Item) (string, error) {
	raw, err := json.Marshal(menutree.EnsureIDs(items))
	if err != nil {
		return "", fmt.Errorf("encode menu items: %w", err)
	}
	return string(raw), nil
}

func scanMenu(row rowScanner) (*models.Menu, error) {
	var (
		m   models.Menu
		id  uuid.UUID
		raw []byte
	)
	if err := row.Scan(
		&id, &m.Title, &m.LogoURL, &raw, &m.CTAText, &m.CTALink, &m.CTAColor, &m.CTAHoverColor,
	); err != nil {
		return nil, err
	}
	m.ID = models.ID(id.String())
	if err := json.Unmarshal(raw, &m.Items); err != nil {
		return nil, fmt.Errorf("decode items of menu %s: %w", id, err)
	}
	if m.Items == nil {
		m.Items = []menutree.Item{}
	}
	return &m, nil
}
