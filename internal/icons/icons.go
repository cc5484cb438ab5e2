// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package icons maps the icon names stored in block data to catalogue
// entries. Lookup never fails: unknown names resolve to a fallback icon so a
// bad value cannot break a page.
package icons

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FallbackName is the icon returned for names missing from the catalogue.
const FallbackName = "help-circle"

// Icon is a catalogue entry. Name is the stable key persisted in block data.
type Icon struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	Category string `json:"category"`
}

// Entry is the input form of an icon when building a catalogue.
type Entry struct {
	Name     string
	Category string
}

// Catalogue is an immutable, ordered set of icons with a guaranteed fallback.
type Catalogue struct {
	icons      []Icon
	byName     map[string]int
	categories []string
	fallback   Icon
}

// NewCatalogue builds a catalogue from entries in the given order. The
// fallback name must be one of the entries.
func NewCatalogue(entries []Entry, fallback string) (*Catalogue, error) {
	title := cases.Title(language.English)
	c := &Catalogue{
		icons:  make([]Icon, 0, len(entries)),
		byName: make(map[string]int, len(entries)),
	}
	seenCategory := make(map[string]bool)

	for _, e := range entries {
		name := normalize(e.Name)
		if name == "" {
			return nil, fmt.Errorf("icon catalogue: empty name")
		}
		if _, dup := c.byName[name]; dup {
			return nil, fmt.Errorf("icon catalogue: duplicate icon %q", name)
		}
		c.byName[name] = len(c.icons)
		c.icons = append(c.icons, Icon{
			Name:     name,
			Label:    title.String(strings.ReplaceAll(name, "-", " ")),
			Category: e.Category,
		})
		if !seenCategory[e.Category] {
			seenCategory[e.Category] = true
			c.categories = append(c.categories, e.Category)
		}
	}

	idx, ok := c.byName[normalize(fallback)]
	if !ok {
		return nil, fmt.Errorf("icon catalogue: fallback %q is not in the catalogue", fallback)
	}
	c.fallback = c.icons[idx]
	return c, nil
}

// Resolve returns the icon registered under name, ignoring case and
// surrounding whitespace, or the fallback icon on a miss.
func (c *Catalogue) Resolve(name string) Icon {
	if idx, ok := c.byName[normalize(name)]; ok {
		return c.icons[idx]
	}
	return c.fallback
}

// Has reports whether name is in the catalogue.
func (c *Catalogue) Has(name string) bool {
	_, ok := c.byName[normalize(name)]
	return ok
}

// Fallback returns the icon used for unknown names.
func (c *Catalogue) Fallback() Icon {
	return c.fallback
}

// Search returns every icon whose name contains query, case-insensitively,
// in catalogue order. A non-empty category limits the result to that
// category. An empty query matches everything.
func (c *Catalogue) Search(query, category string) []Icon {
	q := normalize(query)
	out := make([]Icon, 0)
	for _, ic := range c.icons {
		if category != "" && !strings.EqualFold(ic.Category, category) {
			continue
		}
		if strings.Contains(ic.Name, q) {
			out = append(out, ic)
		}
	}
	return out
}

// All returns every icon in catalogue order.
func (c *Catalogue) All() []Icon {
	out := make([]Icon, len(c.icons))
	copy(out, c.icons)
	return out
}

// Categories returns the category names in first-seen order.
func (c *Catalogue) Categories() []string {
	out := make([]string, len(c.categories))
	copy(out, c.categories)
	return out
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
