// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"fmt"
	"regexp"
)

// Default brand colors.
const (
	DefaultBrandPrimary = "#3b82f6"
	DefaultBrandHover   = "#2563eb"
)

// UISettings holds the site-wide theme colors.
type UISettings struct {
	BrandPrimary string `json:"brand_primary"`
	BrandHover   string `json:"brand_hover"`
}

// DefaultUISettings returns the settings used before anything is saved.
func DefaultUISettings() UISettings {
	return UISettings{
		BrandPrimary: DefaultBrandPrimary,
		BrandHover:   DefaultBrandHover,
	}
}

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// IsHexColor reports whether s is a CSS hex color (#rgb, #rgba, #rrggbb or
// #rrggbbaa).
func IsHexColor(s string) bool {
	return hexColor.MatchString(s)
}

// Validate checks both colors.
func (s UISettings) Validate() error {
	if !IsHexColor(s.BrandPrimary) {
		return fmt.Errorf("brand_primary %q is not a hex color", s.BrandPrimary)
	}
	if !IsHexColor(s.BrandHover) {
		return fmt.Errorf("brand_hover %q is not a hex color", s.BrandHover)
	}
	return nil
}
