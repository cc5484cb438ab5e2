// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"staticcms/internal/menutree"
)

// Default call-to-action colors for a new menu.
const (
	DefaultCTAColor      = "#1337ec"
	DefaultCTAHoverColor = "#2563eb"
)

// Menu is a named navigation tree with a logo and an optional
// call-to-action button.
type Menu struct {
	ID            ID              `json:"id,omitempty"`
	Title         string          `json:"title"`
	LogoURL       string          `json:"logo_url"`
	Items         []menutree.Item `json:"items"`
	CTAText       string          `json:"cta_text"`
	CTALink       string          `json:"cta_link"`
	CTAColor      string          `json:"cta_color"`
	CTAHoverColor string          `json:"cta_hover_color,omitempty"`
}

// NewMenu returns a blank draft menu.
func NewMenu() Menu {
	return Menu{
		Items:         []menutree.Item{},
		CTAColor:      DefaultCTAColor,
		CTAHoverColor: DefaultCTAHoverColor,
	}
}

// State reports whether the menu has been persisted.
func (m *Menu) State() State {
	return stateOf(m.ID)
}

// Clone returns a deep copy of m.
func (m Menu) Clone() Menu {
	out := m
	out.Items = menutree.Clone(m.Items)
	if out.Items == nil {
		out.Items = []menutree.Item{}
	}
	return out
}

// Payload returns the body sent on create and update.
func (m Menu) Payload() MenuPayload {
	items := menutree.Clone(m.Items)
	if items == nil {
		items = []menutree.Item{}
	}
	return MenuPayload{
		Title:         m.Title,
		LogoURL:       m.LogoURL,
		Items:         items,
		CTAText:       m.CTAText,
		CTALink:       m.CTALink,
		CTAColor:      m.CTAColor,
		CTAHoverColor: m.CTAHoverColor,
	}
}

// MenuPayload is the create/update request body for a menu.
type MenuPayload struct {
	Title         string          `json:"title"`
	LogoURL       string          `json:"logo_url"`
	Items         []menutree.Item `json:"items"`
	CTAText       string          `json:"cta_text"`
	CTALink       string          `json:"cta_link"`
	CTAColor      string          `json:"cta_color"`
	CTAHoverColor string          `json:"cta_hover_color,omitempty"`
}

// Menu converts a payload back into an unsaved menu.
func (mp MenuPayload) Menu() Menu {
	m := Menu{
		Title:         mp.Title,
		LogoURL:       mp.LogoURL,
		Items:         mp.Items,
		CTAText:       mp.CTAText,
		CTALink:       mp.CTALink,
		CTAColor:      mp.CTAColor,
		CTAHoverColor: mp.CTAHoverColor,
	}
	if m.Items == nil {
		m.Items = []menutree.Item{}
	}
	return m
}
