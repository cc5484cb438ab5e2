// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"staticcms/internal/build"
	"staticcms/internal/models"
)

// Generate queues a site build. It is mounted at both /api/generate and
// /api/build.
func (a *API) Generate(w http.ResponseWriter, r *http.Request) {
	if a.builds == nil {
		writeError(w, http.StatusServiceUnavailable, "Site builds are not configured.")
		return
	}
	job, err := a.builds.Enqueue(r.Context(), "manual")
	if err != nil {
		slog.Error("enqueue build failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to queue site build.")
		return
	}
	slog.Info("build requested", "job_id", job.ID)
	writeJSON(w, http.StatusOK, models.BuildResult{
		Status:  models.BuildSuccess,
		Message: "Site generation queued",
	})
}

// buildStatus is the most recent run plus the number of queued requests.
type buildStatus struct {
	build.Status
	Pending int64 `json:"pending"`
}

// BuildStatus reports the outcome of the most recent build.
func (a *API) BuildStatus(w http.ResponseWriter, r *http.Request) {
	if a.builds == nil {
		writeError(w, http.StatusServiceUnavailable, "Site builds are not configured.")
		return
	}
	st, ok, err := a.builds.Last(r.Context())
	if err != nil {
		slog.Error("read build status failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error.")
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "No build has run yet.")
		return
	}
	pending, err := a.builds.Pending(r.Context())
	if err != nil {
		slog.Warn("read build queue length failed", "error", err)
	}
	writeJSON(w, http.StatusOK, buildStatus{Status: st, Pending: pending})
}
