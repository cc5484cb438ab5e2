// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"strconv"

	"staticcms/internal/cache"
)

const (
	defaultRecentLimit = 5
	maxRecentLimit     = 50
)

// Stats returns the dashboard counters.
func (a *API) Stats(w http.ResponseWriter, r *http.Request) {
	a.serveCached(w, r, cache.Key(cache.ScopeDashboard, "stats"), "dashboard stats", func() (any, error) {
		return a.dashboard.Stats()
	})
}

// RecentPages returns the most recently updated pages. ?limit= caps the
// list (default 5, max 50).
func (a *API) RecentPages(w http.ResponseWriter, r *http.Request) {
	limit := limitParam(r)
	a.serveCached(w, r, cache.Key(cache.ScopeDashboard, "recent", strconv.Itoa(limit)), "recent pages", func() (any, error) {
		return a.dashboard.RecentPages(limit)
	})
}

// Activity returns the latest change log entries.
func (a *API) Activity(w http.ResponseWriter, r *http.Request) {
	if a.activity == nil {
		writeJSON(w, http.StatusOK, []any{})
		return
	}
	entries, err := a.activity.Recent(limitParam(r))
	if err != nil {
		storeError(w, "activity log", err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// ListUploads returns the latest uploaded files, newest first.
func (a *API) ListUploads(w http.ResponseWriter, r *http.Request) {
	if a.uploads == nil {
		writeJSON(w, http.StatusOK, []any{})
		return
	}
	list, err := a.uploads.Recent(limitParam(r))
	if err != nil {
		storeError(w, "list uploads", err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func limitParam(r *http.Request) int {
	n, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || n <= 0 {
		return defaultRecentLimit
	}
	return min(n, maxRecentLimit)
}
