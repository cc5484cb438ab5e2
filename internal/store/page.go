// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"staticcms/internal/blocks"
	"staticcms/internal/models"
	"staticcms/internal/slug"
)

const pageColumns = `id, title, slug, meta_description, blocks, is_published,
	is_homepage, created_at, updated_at`

// PageStore handles page persistence.
type PageStore struct {
	db *sql.DB
}

// NewPageStore creates a new PageStore with the given database connection.
func NewPageStore(db *sql.DB) *PageStore {
	return &PageStore{db: db}
}

// List returns every page in creation order.
func (s *PageStore) List() ([]models.Page, error) {
	rows, err := s.db.Query(`SELECT ` + pageColumns + ` FROM pages ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}
	defer rows.Close()

	pages := []models.Page{}
	for rows.Next() {
		p, err := scanPage(rows)
		if err != nil {
			return nil, err
		}
		pages = append(pages, *p)
	}
	return pages, rows.Err()
}

// FindByID retrieves a page. Returns nil if not found.
func (s *PageStore) FindByID(id uuid.UUID) (*models.Page, error) {
	p, err := scanPage(s.db.QueryRow(`SELECT `+pageColumns+` FROM pages WHERE id = $1`, id))
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find page by id: %w", err)
	}
	return p, nil
}

// Create inserts a page. The slug is derived from the title and made unique;
// a homepage flag clears the flag on every other page in the same
// transaction.
func (s *PageStore) Create(in models.PagePayload) (*models.Page, error) {
	raw, err := encodeBlocks(in.Blocks)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("create page: begin: %w", err)
	}
	defer tx.Rollback()

	pageSlug, err := uniqueSlug(tx, in.Title, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if in.IsHomepage {
		if err := clearHomepage(tx, uuid.Nil); err != nil {
			return nil, err
		}
	}

	p, err := scanPage(tx.QueryRow(`
		INSERT INTO pages (title, slug, meta_description, body, blocks, is_published, is_homepage)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+pageColumns,
		in.Title, pageSlug, in.MetaDescription, in.Body, raw, in.IsPublished, in.IsHomepage,
	))
	if err != nil {
		return nil, wrapWrite("create page", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("create page: commit: %w", err)
	}
	return p, nil
}

// Update replaces a page's content. The slug is re-derived from the title.
// Returns nil if the page does not exist.
func (s *PageStore) Update(id uuid.UUID, in models.PagePayload) (*models.Page, error) {
	raw, err := encodeBlocks(in.Blocks)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("update page: begin: %w", err)
	}
	defer tx.Rollback()

	pageSlug, err := uniqueSlug(tx, in.Title, id)
	if err != nil {
		return nil, err
	}
	if in.IsHomepage {
		if err := clearHomepage(tx, id); err != nil {
			return nil, err
		}
	}

	p, err := scanPage(tx.QueryRow(`
		UPDATE pages SET
			title = $2, slug = $3, meta_description = $4, body = $5, blocks = $6,
			is_published = $7, is_homepage = $8, updated_at = NOW()
		WHERE id = $1
		RETURNING `+pageColumns,
		id, in.Title, pageSlug, in.MetaDescription, in.Body, raw, in.IsPublished, in.IsHomepage,
	))
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapWrite("update page", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("update page: commit: %w", err)
	}
	return p, nil
}

// Delete removes a page. Reports whether a row was deleted.
func (s *PageStore) Delete(id uuid.UUID) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM pages WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete page: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete page: %w", err)
	}
	return n > 0, nil
}

// uniqueSlug derives the slug for title, skipping slugs used by pages other
// than exclude.
func uniqueSlug(tx *sql.Tx, title string, exclude uuid.UUID) (string, error) {
	out, err := slug.Unique(slug.Generate(title), func(candidate string) (bool, error) {
		var taken bool
		err := tx.QueryRow(
			`SELECT EXISTS (SELECT 1 FROM pages WHERE slug = $1 AND id <> $2)`,
			candidate, exclude,
		).Scan(&taken)
		return taken, err
	})
	if err != nil {
		return "", fmt.Errorf("page slug: %w", err)
	}
	return out, nil
}

func clearHomepage(tx *sql.Tx, keep uuid.UUID) error {
	if _, err := tx.Exec(
		`UPDATE pages SET is_homepage = FALSE WHERE is_homepage AND id <> $1`, keep,
	); err != nil {
		return fmt.Errorf("clear homepage: %w", err)
	}
	return nil
}

func encodeBlocks(seq []blocks.Block) (string, error) {
	if seq == nil {
		seq = []blocks.Block{}
	}
	raw, err := json.Marshal(seq)
	if err != nil {
		return "", fmt.Errorf("encode blocks: %w", err)
	}
	return string(raw), nil
}

func scanPage(row rowScanner) (*models.Page, error) {
	var (
		p                models.Page
		id               uuid.UUID
		raw              []byte
		created, updated time.Time
	)
	if err := row.Scan(
		&id, &p.Title, &p.Slug, &p.MetaDescription, &raw,
		&p.IsPublished, &p.IsHomepage, &created, &updated,
	); err != nil {
		return nil, err
	}
	p.ID = models.ID(id.String())
	p.CreatedAt = models.NewTimestamp(created)
	p.UpdatedAt = models.NewTimestamp(updated)
	if err := json.Unmarshal(raw, &p.Blocks); err != nil {
		return nil, fmt.Errorf("decode blocks of page %s: %w", id, err)
	}
	if p.Blocks == nil {
		p.Blocks = []blocks.Block{}
	}
	return &p, nil
}
