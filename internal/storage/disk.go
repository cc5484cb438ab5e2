// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// URLPrefix is the path under which the API serves files of the disk backend.
const URLPrefix = "/uploads/"

// Disk stores uploads in a local directory.
type Disk struct {
	dir     string
	baseURL string
}

// NewDisk creates the directory if needed. baseURL is the public root of the
// API (e.g. http://localhost:8000); files are reachable at
// baseURL + URLPrefix + key.
func NewDisk(dir, baseURL string) (*Disk, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("disk storage: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("disk storage: create %s: %w", abs, err)
	}
	return &Disk{dir: abs, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Name implements Store.
func (d *Disk) Name() string { return "disk" }

// Dir returns the absolute root directory.
func (d *Disk) Dir() string { return d.dir }

// Put writes the file atomically: it is written to a temporary name in the
// target directory and renamed into place.
func (d *Disk) Put(_ context.Context, key, _ string, body io.ReadSeeker, _ int64) (string, error) {
	target, err := d.path(key)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("disk upload %s: %w", key, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), ".upload-*")
	if err != nil {
		return "", fmt.Errorf("disk upload %s: %w", key, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, body); err != nil {
		tmp.Close()
		return "", fmt.Errorf("disk upload %s: write: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("disk upload %s: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return "", fmt.Errorf("disk upload %s: %w", key, err)
	}
	return d.baseURL + URLPrefix + key, nil
}

// Delete removes the file. A missing file is not an error.
func (d *Disk) Delete(_ context.Context, key string) error {
	target, err := d.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("disk delete %s: %w", key, err)
	}
	return nil
}

// path resolves key inside the root, rejecting keys that escape it.
func (d *Disk) path(key string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(key))
	if clean == "." || filepath.IsAbs(clean) || strings.HasPrefix(clean, ".."+string(filepath.Separator)) || clean == ".." {
		return "", fmt.Errorf("disk storage: invalid key %q", key)
	}
	return filepath.Join(d.dir, clean), nil
}
