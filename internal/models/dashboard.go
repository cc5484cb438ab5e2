// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// DashboardStats holds the counters shown on the dashboard.
type DashboardStats struct {
	Pages          int `json:"pages"`
	PublishedPages int `json:"published_pages"`
	Menus          int `json:"menus"`
	Uploads        int `json:"uploads"`
}

// RecentPage is a row of the dashboard's recently edited list.
type RecentPage struct {
	ID          ID         `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	IsPublished bool       `json:"is_published"`
	IsHomepage  bool       `json:"is_homepage"`
	UpdatedAt   *Timestamp `json:"updated_at,omitempty"`
}

// Build statuses.
const (
	BuildQueued  = "queued"
	BuildSuccess = "success"
	BuildError   = "error"
)

// BuildResult is the response of a site generation request.
type BuildResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Activity is one entry of the change log shown on the dashboard.
type Activity struct {
	ID         int64     `json:"id"`
	EntityType string    `json:"entity_type"`
	EntityID   string    `json:"entity_id"`
	Action     string    `json:"action"`
	At         time.Time `json:"at"`
}
