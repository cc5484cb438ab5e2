// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the persisted aggregates of the CMS (pages, menus,
// UI settings) and the JSON shapes exchanged with the API.
package models

import (
	"staticcms/internal/blocks"
)

// State is the lifecycle stage of an aggregate.
type State int

const (
	// Draft aggregates have never been persisted and carry no server id.
	Draft State = iota
	// Saved aggregates have a server id; further saves are updates.
	Saved
)

func (s State) String() string {
	switch s {
	case Draft:
		return "draft"
	case Saved:
		return "saved"
	default:
		return "unknown"
	}
}

// stateOf derives the lifecycle stage from the server id.
func stateOf(id ID) State {
	if id.IsZero() {
		return Draft
	}
	return Saved
}

// Page is a composed page: metadata plus an ordered sequence of blocks.
// ID, Slug and the timestamps are assigned by the server.
type Page struct {
	ID              ID             `json:"id,omitempty"`
	Slug            string         `json:"slug,omitempty"`
	Title           string         `json:"title"`
	Blocks          []blocks.Block `json:"blocks"`
	MetaDescription string         `json:"meta_description"`
	IsPublished     bool           `json:"is_published"`
	IsHomepage      bool           `json:"is_homepage"`
	CreatedAt       *Timestamp     `json:"created_at,omitempty"`
	UpdatedAt       *Timestamp     `json:"updated_at,omitempty"`
}

// NewPage returns a blank draft page with an empty block sequence.
func NewPage() Page {
	return Page{Blocks: []blocks.Block{}}
}

// State reports whether the page has been persisted.
func (p *Page) State() State {
	return stateOf(p.ID)
}

// Clone returns a deep copy of p.
func (p Page) Clone() Page {
	out := p
	out.Blocks = blocks.Clone(p.Blocks)
	if out.Blocks == nil {
		out.Blocks = []blocks.Block{}
	}
	if p.CreatedAt != nil {
		t := *p.CreatedAt
		out.CreatedAt = &t
	}
	if p.UpdatedAt != nil {
		t := *p.UpdatedAt
		out.UpdatedAt = &t
	}
	return out
}

// Payload returns the body sent on create and update.
func (p Page) Payload() PagePayload {
	bs := blocks.Clone(p.Blocks)
	if bs == nil {
		bs = []blocks.Block{}
	}
	return PagePayload{
		Title:           p.Title,
		Blocks:          bs,
		MetaDescription: p.MetaDescription,
		IsPublished:     p.IsPublished,
		IsHomepage:      p.IsHomepage,
	}
}

// PagePayload is the create/update request body for a page. Body is always
// sent empty: it is the field of the pre-block page format and the API still
// expects it.
type PagePayload struct {
	Title           string         `json:"title"`
	Blocks          []blocks.Block `json:"blocks"`
	MetaDescription string         `json:"meta_description"`
	IsPublished     bool           `json:"is_published"`
	IsHomepage      bool           `json:"is_homepage"`
	Body            string         `json:"body"`
}

// Page converts a payload back into an unsaved page.
func (pp PagePayload) Page() Page {
	p := Page{
		Title:           pp.Title,
		Blocks:          pp.Blocks,
		MetaDescription: pp.MetaDescription,
		IsPublished:     pp.IsPublished,
		IsHomepage:      pp.IsHomepage,
	}
	if p.Blocks == nil {
		p.Blocks = []blocks.Block{}
	}
	return p
}
