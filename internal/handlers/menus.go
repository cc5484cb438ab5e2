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

const menuNotFound = "Menu not found"

// ListMenus returns every menu.
func (a *API) ListMenus(w http.ResponseWriter, r *http.Request) {
	a.serveCached(w, r, cache.Key(cache.ScopeMenus), "list menus", func() (any, error) {
		return a.menus.List()
	})
}

// GetMenu returns one menu.
func (a *API) GetMenu(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, menuNotFound)
	if !ok {
		return
	}
	a.serveCached(w, r, cache.Key(cache.ScopeMenus, id.String()), "get menu", func() (any, error) {
		m, err := a.menus.FindByID(id)
		if err != nil {
			return nil, err
		}
		if m == nil {
			return nil, &apiError{http.StatusNotFound, menuNotFound}
		}
		return m, nil
	})
}

// CreateMenu stores a new menu.
func (a *API) CreateMenu(w http.ResponseWriter, r *http.Request) {
	var in models.MenuPayload
	if !decodeJSON(w, r, &in) {
		return
	}
	if msg := validateMenu(&in); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	m, err := a.menus.Create(in)
	if err != nil {
		storeError(w, "create menu", err)
		return
	}

	a.changed(r.Context(), store.EntityMenu, m.ID.String(), store.ActionCreate, cache.ScopeMenus)
	a.requestBuild(r.Context(), "menu created: "+m.Title)
	writeJSON(w, http.StatusOK, m)
}

// UpdateMenu replaces a menu.
func (a *API) UpdateMenu(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, menuNotFound)
	if !ok {
		return
	}
	var in models.MenuPayload
	if !decodeJSON(w, r, &in) {
		return
	}
	if msg := validateMenu(&in); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	m, err := a.menus.Update(id, in)
	if err != nil {
		storeError(w, "update menu", err)
		return
	}
	if m == nil {
		writeError(w, http.StatusNotFound, menuNotFound)
		return
	}

	a.changed(r.Context(), store.EntityMenu, m.ID.String(), store.ActionUpdate, cache.ScopeMenus)
	a.requestBuild(r.Context(), "menu updated: "+m.Title)
	writeJSON(w, http.StatusOK, m)
}
