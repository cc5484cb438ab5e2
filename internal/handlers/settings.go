// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"staticcms/internal/cache"
	"staticcms/internal/models"
	"staticcms/internal/store"
)

// GetSettings returns the UI settings, creating the defaults on first read.
func (a *API) GetSettings(w http.ResponseWriter, r *http.Request) {
	a.serveCached(w, r, cache.Key(cache.ScopeSettings), "get settings", func() (any, error) {
		return a.settings.Get()
	})
}

// UpdateSettings stores new brand colors and enqueues a site build.
func (a *API) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var in models.UISettings
	if !decodeJSON(w, r, &in) {
		return
	}
	if msg := validateSettings(in); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	st, err := a.settings.Update(in)
	if err != nil {
		storeError(w, "update settings", err)
		return
	}

	a.changed(r.Context(), store.EntitySettings, "1", store.ActionUpdate, cache.ScopeSettings)
	a.requestBuild(r.Context(), "settings updated")
	writeJSON(w, http.StatusOK, st)
}
