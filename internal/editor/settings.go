// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package editor

import (
	"context"
	"errors"
	"fmt"

	"staticcms/internal/models"
)

// ErrInvalidColor is returned when a color is not a CSS hex color.
var ErrInvalidColor = errors.New("invalid hex color")

// SettingsSession edits the site-wide UI settings. There is a single
// settings record, so the session starts from the defaults and is always
// saved with an update.
type SettingsSession struct {
	lifecycle
	api      SettingsAPI
	settings models.UISettings
}

// NewSettingsSession starts a session on the default settings.
func NewSettingsSession(api SettingsAPI) *SettingsSession {
	return &SettingsSession{api: api, settings: models.DefaultUISettings()}
}

// Settings returns the current settings.
func (s *SettingsSession) Settings() models.UISettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// Load fetches the stored settings.
func (s *SettingsSession) Load(ctx context.Context) error {
	if s.Closed() {
		return ErrClosed
	}
	st, err := s.api.GetSettings(ctx)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	return s.replace(func() {
		s.settings = st
	})
}

// Save stores the current settings. Local values are kept on success and
// on failure.
func (s *SettingsSession) Save(ctx context.Context) (models.UISettings, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return models.UISettings{}, ErrClosed
	}
	payload := s.settings
	s.mu.Unlock()

	if _, err := s.api.UpdateSettings(ctx, payload); err != nil {
		return models.UISettings{}, fmt.Errorf("save settings: %w", err)
	}

	var out models.UISettings
	err := s.edit(func() error {
		out = s.settings
		return nil
	})
	return out, err
}

// SetBrandPrimary sets the primary brand color.
func (s *SettingsSession) SetBrandPrimary(color string) error {
	if !models.IsHexColor(color) {
		return fmt.Errorf("%w: %q", ErrInvalidColor, color)
	}
	return s.edit(func() error {
		s.settings.BrandPrimary = color
		return nil
	})
}

// SetBrandHover sets the hover brand color.
func (s *SettingsSession) SetBrandHover(color string) error {
	if !models.IsHexColor(color) {
		return fmt.Errorf("%w: %q", ErrInvalidColor, color)
	}
	return s.edit(func() error {
		s.settings.BrandHover = color
		return nil
	})
}
