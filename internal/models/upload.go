// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UploadResult is the response of a file upload.
type UploadResult struct {
	URL string `json:"url"`
}

// Upload records a file stored through the upload endpoint. The bytes live in
// the configured storage backend; only metadata is kept in PostgreSQL.
type Upload struct {
	ID           uuid.UUID `json:"id"`
	Filename     string    `json:"filename"`
	OriginalName string    `json:"original_name"`
	ContentType  string    `json:"content_type"`
	SizeBytes    int64     `json:"size_bytes"`
	Backend      string    `json:"backend"`
	Key          string    `json:"key"`
	URL          string    `json:"url"`
	CreatedAt    time.Time `json:"created_at"`
}

// IsImage reports whether the upload is an image.
func (u *Upload) IsImage() bool {
	return strings.HasPrefix(u.ContentType, "image/")
}

// HumanSize formats SizeBytes for display.
func (u *Upload) HumanSize() string {
	const (
		kb = 1024
		mb = 1024 * kb
	)
	switch {
	case u.SizeBytes >= mb:
		return fmt.Sprintf("%.1f MB", float64(u.SizeBytes)/float64(mb))
	case u.SizeBytes >= kb:
		return fmt.Sprintf("%.0f KB", float64(u.SizeBytes)/float64(kb))
	default:
		return fmt.Sprintf("%d B", u.SizeBytes)
	}
}
