// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package editor holds the editing sessions of the authoring surface. A
// session owns one in-memory aggregate (a page, a menu or the UI settings),
// applies edits synchronously and persists through the backend API.
//
// Network calls run without holding the session lock, so edits keep working
// while a load or save is in flight. A failed call never changes local state.
// Once a session is closed, responses that arrive afterwards are discarded.
package editor

import (
	"context"
	"errors"
	"sync"

	"staticcms/internal/models"
)

// ErrClosed is returned by calls made on, or completing after, a closed session.
var ErrClosed = errors.New("editor session closed")

// PageAPI is the subset of the backend client a PageSession needs.
type PageAPI interface {
	GetPage(ctx context.Context, id models.ID) (models.Page, error)
	CreatePage(ctx context.Context, p models.PagePayload) (models.Page, error)
	UpdatePage(ctx context.Context, id models.ID, p models.PagePayload) (models.Page, error)
}

// MenuAPI is the subset of the backend client a MenuSession needs.
type MenuAPI interface {
	GetMenu(ctx context.Context, id models.ID) (models.Menu, error)
	CreateMenu(ctx context.Context, m models.MenuPayload) (models.Menu, error)
	UpdateMenu(ctx context.Context, id models.ID, m models.MenuPayload) (models.Menu, error)
}

// SettingsAPI is the subset of the backend client a SettingsSession needs.
type SettingsAPI interface {
	GetSettings(ctx context.Context) (models.UISettings, error)
	UpdateSettings(ctx context.Context, s models.UISettings) (models.UISettings, error)
}

// lifecycle is the lock and closed flag shared by every session type. gen
// counts loads; a save response is only adopted when no load replaced the
// aggregate while the request was in flight.
type lifecycle struct {
	mu     sync.Mutex
	closed bool
	gen    uint64
}

// Close marks the session closed. Idempotent.
func (l *lifecycle) Close() {
	l.mu.Lock()
	l.closed = true
	l.mu.Unlock()
}

// Closed reports whether Close has been called.
func (l *lifecycle) Closed() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.closed
}

// replace runs fn under the lock and starts a new generation.
func (l *lifecycle) replace(fn func()) error {
	return l.edit(func() error {
		l.gen++
		fn()
		return nil
	})
}

// edit runs fn under the lock unless the session is closed.
func (l *lifecycle) edit(fn func() error) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return ErrClosed
	}
	return fn()
}
