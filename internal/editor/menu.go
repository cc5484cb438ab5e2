// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package editor

import (
	"context"
	"fmt"

	"staticcms/internal/menutree"
	"staticcms/internal/models"
)

// MenuSession edits one navigation menu.
type MenuSession struct {
	lifecycle
	api  MenuAPI
	menu models.Menu
}

// NewMenuSession starts a session on a blank draft menu.
func NewMenuSession(api MenuAPI) *MenuSession {
	return &MenuSession{api: api, menu: models.NewMenu()}
}

// Menu returns a copy of the current menu.
func (s *MenuSession) Menu() models.Menu {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.menu.Clone()
}

// State reports Draft or Saved.
func (s *MenuSession) State() models.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.menu.State()
}

// Load replaces the session's menu with the stored menu id. Items stored
// without an id are given one.
func (s *MenuSession) Load(ctx context.Context, id models.ID) error {
	if s.Closed() {
		return ErrClosed
	}
	m, err := s.api.GetMenu(ctx, id)
	if err != nil {
		return fmt.Errorf("load menu %s: %w", id, err)
	}
	m.Items = menutree.EnsureIDs(m.Items)

	return s.replace(func() {
		s.menu = m
	})
}

// Save creates or updates the menu. On success only the server id is
// adopted; local content is kept. A response that arrives after Load
// replaced the menu is returned without touching the session.
func (s *MenuSession) Save(ctx context.Context) (models.Menu, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return models.Menu{}, ErrClosed
	}
	id := s.menu.ID
	gen := s.gen
	payload := s.menu.Payload()
	s.mu.Unlock()

	var (
		saved models.Menu
		err   error
	)
	if id.IsZero() {
		saved, err = s.api.CreateMenu(ctx, payload)
	} else {
		saved, err = s.api.UpdateMenu(ctx, id, payload)
	}
	if err != nil {
		return models.Menu{}, fmt.Errorf("save menu: %w", err)
	}

	var out models.Menu
	err = s.edit(func() error {
		if s.gen != gen {
			out = saved
			return nil
		}
		s.menu.ID = saved.ID
		out = s.menu.Clone()
		return nil
	})
	return out, err
}

// SetTitle sets the menu title.
func (s *MenuSession) SetTitle(title string) error {
	return s.edit(func() error {
		s.menu.Title = title
		return nil
	})
}

// SetLogoURL sets the logo image URL.
func (s *MenuSession) SetLogoURL(u string) error {
	return s.edit(func() error {
		s.menu.LogoURL = u
		return nil
	})
}

// SetCTA sets the call-to-action button text and link.
func (s *MenuSession) SetCTA(text, link string) error {
	return s.edit(func() error {
		s.menu.CTAText = text
		s.menu.CTALink = link
		return nil
	})
}

// SetCTAColors sets the button color and its hover color. Both must be hex
// colors.
func (s *MenuSession) SetCTAColors(color, hover string) error {
	if !models.IsHexColor(color) {
		return fmt.Errorf("%w: %q", ErrInvalidColor, color)
	}
	if !models.IsHexColor(hover) {
		return fmt.Errorf("%w: %q", ErrInvalidColor, hover)
	}
	return s.edit(func() error {
		s.menu.CTAColor = color
		s.menu.CTAHoverColor = hover
		return nil
	})
}

// AddRootItem appends a blank top-level item.
func (s *MenuSession) AddRootItem() (menutree.Item, error) {
	var it menutree.Item
	err := s.edit(func() error {
		s.menu.Items, it = menutree.InsertRoot(s.menu.Items)
		return nil
	})
	return it, err
}

// AddChildItem appends a blank item under parent.
func (s *MenuSession) AddChildItem(parent menutree.Path) (menutree.Item, error) {
	var it menutree.Item
	err := s.edit(func() error {
		root, child, err := menutree.InsertChild(s.menu.Items, parent)
		if err != nil {
			return err
		}
		s.menu.Items, it = root, child
		return nil
	})
	return it, err
}

// RemoveItem deletes the item at p and its subtree.
func (s *MenuSession) RemoveItem(p menutree.Path) error {
	return s.edit(func() error {
		root, err := menutree.RemoveAt(s.menu.Items, p)
		if err != nil {
			return err
		}
		s.menu.Items = root
		return nil
	})
}

// UpdateItem sets the label or url of the item at p.
func (s *MenuSession) UpdateItem(p menutree.Path, f menutree.Field, value string) error {
	return s.edit(func() error {
		root, err := menutree.UpdateField(s.menu.Items, p, f, value)
		if err != nil {
			return err
		}
		s.menu.Items = root
		return nil
	})
}

// Locate returns the current path of the item with the given id.
func (s *MenuSession) Locate(id string) (menutree.Path, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return menutree.Locate(s.menu.Items, id)
}

// RemoveItemByID deletes the item with the given id.
func (s *MenuSession) RemoveItemByID(id string) error {
	return s.edit(func() error {
		p, ok := menutree.Locate(s.menu.Items, id)
		if !ok {
			return fmt.Errorf("menu item %q: %w", id, menutree.ErrPathNotFound)
		}
		root, err := menutree.RemoveAt(s.menu.Items, p)
		if err != nil {
			return err
		}
		s.menu.Items = root
		return nil
	})
}

// UpdateItemByID sets the label or url of the item with the given id.
func (s *MenuSession) UpdateItemByID(id string, f menutree.Field, value string) error {
	return s.edit(func() error {
		p, ok := menutree.Locate(s.menu.Items, id)
		if !ok {
			return fmt.Errorf("menu item %q: %w", id, menutree.ErrPathNotFound)
		}
		root, err := menutree.UpdateField(s.menu.Items, p, f, value)
		if err != nil {
			return err
		}
		s.menu.Items = root
		return nil
	})
}
