// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"staticcms/internal/blocks"
	"staticcms/internal/cache"
	"staticcms/internal/models"
	"staticcms/internal/store"
)

const pageNotFound = "Page not found"

// ListPages returns every page.
func (a *API) ListPages(w http.ResponseWriter, r *http.Request) {
	a.serveCached(w, r, cache.Key(cache.ScopePages), "list pages", func() (any, error) {
		return a.pages.List()
	})
}

// GetPage returns one page.
func (a *API) GetPage(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, pageNotFound)
	if !ok {
		return
	}
	a.serveCached(w, r, cache.Key(cache.ScopePages, id.String()), "get page", func() (any, error) {
		p, err := a.pages.FindByID(id)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, &apiError{http.StatusNotFound, pageNotFound}
		}
		return p, nil
	})
}

// CreatePage stores a new page and enqueues a site build.
func (a *API) CreatePage(w http.ResponseWriter, r *http.Request) {
	in, ok := a.readPage(w, r)
	if !ok {
		return
	}
	p, err := a.pages.Create(in)
	if err != nil {
		storeError(w, "create page", err)
		return
	}

	a.changed(r.Context(), store.EntityPage, p.ID.String(), store.ActionCreate, cache.ScopePages)
	a.requestBuild(r.Context(), "page created: "+p.Slug)
	writeJSON(w, http.StatusOK, p)
}

// UpdatePage replaces a page and enqueues a site build.
func (a *API) UpdatePage(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, pageNotFound)
	if !ok {
		return
	}
	in, ok := a.readPage(w, r)
	if !ok {
		return
	}
	p, err := a.pages.Update(id, in)
	if err != nil {
		storeError(w, "update page", err)
		return
	}
	if p == nil {
		writeError(w, http.StatusNotFound, pageNotFound)
		return
	}

	a.changed(r.Context(), store.EntityPage, p.ID.String(), store.ActionUpdate, cache.ScopePages)
	a.requestBuild(r.Context(), "page updated: "+p.Slug)
	writeJSON(w, http.StatusOK, p)
}

// DeletePage removes a page.
func (a *API) DeletePage(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, pageNotFound)
	if !ok {
		return
	}
	deleted, err := a.pages.Delete(id)
	if err != nil {
		storeError(w, "delete page", err)
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, pageNotFound)
		return
	}

	a.changed(r.Context(), store.EntityPage, id.String(), store.ActionDelete, cache.ScopePages)
	a.requestBuild(r.Context(), "page deleted: "+id.String())
	w.WriteHeader(http.StatusNoContent)
}

// readPage decodes and validates a page payload. Blocks are normalized:
// their data gains any default keys it lacks.
func (a *API) readPage(w http.ResponseWriter, r *http.Request) (models.PagePayload, bool) {
	var in models.PagePayload
	if !decodeJSON(w, r, &in) {
		return in, false
	}
	if msg := validatePage(&in); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return in, false
	}
	for i, b := range in.Blocks {
		in.Blocks[i] = blocks.WithDefaults(b)
	}
	in.Body = ""
	return in, true
}
