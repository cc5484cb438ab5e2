// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"staticcms/internal/models"
)

const uploadColumns = `id, filename, original_name, content_type, size_bytes,
	backend, storage_key, url, created_at`

// UploadStore records files stored through the upload endpoint.
type UploadStore struct {
	db *sql.DB
}

// NewUploadStore creates a new UploadStore.
func NewUploadStore(db *sql.DB) *UploadStore {
	return &UploadStore{db: db}
}

// Create inserts an upload record and returns it with the generated ID.
func (s *UploadStore) Create(u *models.Upload) (*models.Upload, error) {
	out, err := scanUpload(s.db.QueryRow(`
		INSERT INTO uploads (filename, original_name, content_type, size_bytes, backend, storage_key, url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+uploadColumns,
		u.Filename, u.OriginalName, u.ContentType, u.SizeBytes, u.Backend, u.Key, u.URL,
	))
	if err != nil {
		return nil, wrapWrite("create upload", err)
	}
	return out, nil
}

// Recent returns the latest uploads, newest first.
func (s *UploadStore) Recent(limit int) ([]models.Upload, error) {
	rows, err := s.db.Query(`
		SELECT `+uploadColumns+`
		FROM uploads
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list uploads: %w", err)
	}
	defer rows.Close()

	out := []models.Upload{}
	for rows.Next() {
		u, err := scanUpload(rows)
		if err != nil {
			return nil, fmt.Errorf("scan upload: %w", err)
		}
		out = append(out, *u)
	}
	return out, rows.Err()
}

func scanUpload(row rowScanner) (*models.Upload, error) {
	var u models.Upload
	if err := row.Scan(
		&u.ID, &u.Filename, &u.OriginalName, &u.ContentType, &u.SizeBytes,
		&u.Backend, &u.Key, &u.URL, &u.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &u, nil
}
