// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package storage stores uploaded files. Two backends are available: an
// S3-compatible bucket and a directory on local disk served by the API.
package storage

import (
	"context"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"staticcms/internal/slug"
)

// Store is an upload backend.
type Store interface {
	// Name identifies the backend in upload records ("s3", "disk").
	Name() string
	// Put writes body under key and returns the public URL of the object.
	Put(ctx context.Context, key, contentType string, body io.ReadSeeker, size int64) (string, error)
	// Delete removes the object stored under key.
	Delete(ctx context.Context, key string) error
}

// ObjectKey builds a collision-free key for an uploaded file:
// "2026/10/<uuid>-<slugified-name><ext>". The extension comes from the
// detected type when the original name has none.
func ObjectKey(originalName, detectedExt string, now time.Time) string {
	base := path.Base(strings.ReplaceAll(originalName, "\\", "/"))
	ext := strings.ToLower(path.Ext(base))
	if ext == "" || len(ext) > 10 {
		ext = detectedExt
	}
	name := slug.Generate(strings.TrimSuffix(base, path.Ext(base)))
	if len(name) > 60 {
		name = strings.TrimRight(name[:60], "-")
	}
	id := uuid.NewString()
	if name != "" {
		id += "-" + name
	}
	return now.UTC().Format("2006/01") + "/" + id + ext
}
