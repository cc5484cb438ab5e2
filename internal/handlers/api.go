// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the JSON API consumed by the editing client.
// Handlers receive their dependencies through the API struct; every error
// response has the shape {"detail": "..."}.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"staticcms/internal/build"
	"staticcms/internal/cache"
	"staticcms/internal/models"
	"staticcms/internal/storage"
	"staticcms/internal/store"
)

// maxJSONBody caps request bodies of the JSON endpoints (2 MB).
const maxJSONBody = 2 << 20

// PageRepo persists pages. Implemented by *store.PageStore.
type PageRepo interface {
	List() ([]models.Page, error)
	FindByID(id uuid.UUID) (*models.Page, error)
	Create(in models.PagePayload) (*models.Page, error)
	Update(id uuid.UUID, in models.PagePayload) (*models.Page, error)
	Delete(id uuid.UUID) (bool, error)
}

// MenuRepo persists menus. Implemented by *store.MenuStore.
type MenuRepo interface {
	List() ([]models.Menu, error)
	FindByID(id uuid.UUID) (*models.Menu, error)
	Create(in models.MenuPayload) (*models.Menu, error)
	Update(id uuid.UUID, in models.MenuPayload) (*models.Menu, error)
}

// SettingsRepo persists the UI settings. Implemented by *store.SettingsStore.
type SettingsRepo interface {
	Get() (models.UISettings, error)
	Update(in models.UISettings) (models.UISettings, error)
}

// UploadRepo records uploaded files. Implemented by *store.UploadStore.
type UploadRepo interface {
	Create(u *models.Upload) (*models.Upload, error)
	Recent(limit int) ([]models.Upload, error)
}

// DashboardRepo answers the dashboard queries. Implemented by
// *store.DashboardStore.
type DashboardRepo interface {
	Stats() (models.DashboardStats, error)
	RecentPages(limit int) ([]models.RecentPage, error)
}

// ActivityLog records and lists changes. Implemented by *store.ActivityStore.
type ActivityLog interface {
	Log(entityType, entityID, action string)
	Recent(limit int) ([]models.Activity, error)
}

// BuildQueue accepts site build requests. Implemented by *build.Queue.
type BuildQueue interface {
	Enqueue(ctx context.Context, reason string) (build.Job, error)
	Last(ctx context.Context) (build.Status, bool, error)
	Pending(ctx context.Context) (int64, error)
}

// Deps groups the collaborators of the API. Cache may be nil.
type Deps struct {
	Pages     PageRepo
	Menus     MenuRepo
	Settings  SettingsRepo
	Uploads   UploadRepo
	Dashboard DashboardRepo
	Activity  ActivityLog
	Storage   storage.Store
	Builds    BuildQueue
	Cache     *cache.ResponseCache
}

// API groups all JSON handlers and their dependencies.
type API struct {
	pages     PageRepo
	menus     MenuRepo
	settings  SettingsRepo
	uploads   UploadRepo
	dashboard DashboardRepo
	activity  ActivityLog
	storage   storage.Store
	builds    BuildQueue
	cache     *cache.ResponseCache
}

// NewAPI creates the handler group.
func NewAPI(d Deps) *API {
	return &API{
		pages:     d.Pages,
		menus:     d.Menus,
		settings:  d.Settings,
		uploads:   d.Uploads,
		dashboard: d.Dashboard,
		activity:  d.Activity,
		storage:   d.Storage,
		builds:    d.Builds,
		cache:     d.Cache,
	}
}

// writeJSON encodes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("encode response failed", "error", err)
	}
}

// writeError writes {"detail": msg}.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"detail": msg})
}

// decodeJSON reads a size-limited JSON body into dst. It writes the 400
// response itself and reports whether decoding succeeded.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			writeError(w, http.StatusRequestEntityTooLarge, "Request body too large.")
		case errors.Is(err, io.EOF):
			writeError(w, http.StatusBadRequest, "Request body is empty.")
		default:
			writeError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		}
		return false
	}
	return true
}

// idParam parses the {id} URL parameter. Malformed ids cannot exist, so
// they are reported as not found with the given message.
func idParam(w http.ResponseWriter, r *http.Request, notFound string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, notFound)
		return uuid.Nil, false
	}
	return id, true
}

// apiError carries a client-facing status and message out of a loader.
type apiError struct {
	status int
	msg    string
}

func (e *apiError) Error() string { return e.msg }

// serveCached writes the cached body for key if present. Otherwise it calls
// load, writes the result and stores it in the cache. An *apiError from load
// is written as is; any other error is logged as a failure of op.
func (a *API) serveCached(w http.ResponseWriter, r *http.Request, key, op string, load func() (any, error)) {
	if body, ok := a.cache.Get(r.Context(), key); ok {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Cache", "HIT")
		w.Write(body)
		return
	}

	v, err := load()
	if err != nil {
		var ae *apiError
		if errors.As(err, &ae) {
			writeError(w, ae.status, ae.msg)
			return
		}
		storeError(w, op, err)
		return
	}
	body, err := json.Marshal(v)
	if err != nil {
		slog.Error("encode response failed", "key", key, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error.")
		return
	}
	body = append(body, '\n')
	a.cache.Set(r.Context(), key, body)

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Cache", "MISS")
	w.Write(body)
}

// changed runs the bookkeeping that follows a successful write: cache
// invalidation for the touched scopes plus the dashboard, and an activity
// log entry.
func (a *API) changed(ctx context.Context, entityType, entityID, action string, scopes ...string) {
	a.cache.Invalidate(ctx, append(scopes, cache.ScopeDashboard)...)
	if a.activity != nil {
		a.activity.Log(entityType, entityID, action)
	}
}

// requestBuild enqueues a site build. Failures are logged, never returned
// to the client: the content itself was saved.
func (a *API) requestBuild(ctx context.Context, reason string) {
	if a.builds == nil {
		return
	}
	job, err := a.builds.Enqueue(ctx, reason)
	if err != nil {
		slog.Error("enqueue build failed", "reason", reason, "error", err)
		return
	}
	slog.Info("build enqueued", "job_id", job.ID, "reason", reason)
}

// storeError logs err and writes a 500, or a 409 for unique conflicts.
func storeError(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, store.ErrConflict) {
		writeError(w, http.StatusConflict, conflictMessage(op))
		return
	}
	slog.Error(op+" failed", "error", err)
	writeError(w, http.StatusInternalServerError, "Internal server error.")
}

func conflictMessage(op string) string {
	switch op {
	case "create menu", "update menu":
		return "A menu with this title already exists."
	default:
		return "Conflicting record."
	}
}
