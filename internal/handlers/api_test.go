// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"staticcms/internal/blocks"
	"staticcms/internal/build"
	"staticcms/internal/menutree"
	"staticcms/internal/models"
)

func TestPageLifecycle(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/pages", map[string]any{
		"title":  "About Us",
		"blocks": []map[string]any{{"id": "b1", "type": "hero", "data": map[string]any{"headline": "Hi"}}},
		"body":   "",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("create: status %d, body %s", w.Code, w.Body)
	}
	var created models.Page
	decode(t, w, &created)
	if created.ID.IsZero() || created.Slug != "about-us" {
		t.Fatalf("create = %+v", created)
	}
	// Missing keys of the hero schema are filled in.
	if _, ok := created.Blocks[0].Data["subheadline"]; !ok {
		t.Errorf("hero data missing default keys: %v", created.Blocks[0].Data)
	}
	if created.Blocks[0].Data.String("headline") != "Hi" {
		t.Errorf("hero headline overwritten: %v", created.Blocks[0].Data)
	}

	w = env.do(t, http.MethodGet, "/api/pages/"+created.ID.String(), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get: status %d", w.Code)
	}

	created.Title = "About Them"
	w = env.do(t, http.MethodPut, "/api/pages/"+created.ID.String(), created.Payload())
	if w.Code != http.StatusOK {
		t.Fatalf("update: status %d, body %s", w.Code, w.Body)
	}
	var updated models.Page
	decode(t, w, &updated)
	if updated.Slug != "about-them" || updated.ID != created.ID {
		t.Errorf("update = %+v", updated)
	}

	w = env.do(t, http.MethodDelete, "/api/pages/"+created.ID.String(), nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete: status %d", w.Code)
	}
	w = env.do(t, http.MethodGet, "/api/pages/"+created.ID.String(), nil)
	if w.Code != http.StatusNotFound || detail(t, w) != "Page not found" {
		t.Errorf("get after delete: %d %s", w.Code, w.Body)
	}

	want := []string{"page:delete", "page:update", "page:create"}
	if diff := cmp.Diff(want, env.activity.actions()); diff != "" {
		t.Errorf("activity mismatch (-want +got):\n%s", diff)
	}
	if n := env.builds.count(); n != 3 {
		t.Errorf("builds enqueued = %d, want 3", n)
	}
}

func TestPageNotFound(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   any
	}{
		{"get unknown", http.MethodGet, "/api/pages/" + uuid.NewString(), nil},
		{"get malformed id", http.MethodGet, "/api/pages/42", nil},
		{"update unknown", http.MethodPut, "/api/pages/" + uuid.NewString(), models.PagePayload{Title: "x"}},
		{"delete unknown", http.MethodDelete, "/api/pages/" + uuid.NewString(), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(t, tt.method, tt.path, tt.body)
			if w.Code != http.StatusNotFound {
				t.Fatalf("status = %d, want 404", w.Code)
			}
			if got := detail(t, w); got != "Page not found" {
				t.Errorf("detail = %q", got)
			}
		})
	}
}

func TestCreatePageValidation(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name string
		body any
	}{
		{"malformed json", `{"title":`},
		{"empty body", ""},
		{"missing title", map[string]any{"blocks": []any{}}},
		{"title too long", map[string]any{"title": strings.Repeat("t", 61)}},
		{"unknown block type", map[string]any{"title": "t", "blocks": []map[string]any{{"id": "x", "type": "video", "data": map[string]any{}}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(t, http.MethodPost, "/api/pages", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400 (%s)", w.Code, w.Body)
			}
			if detail(t, w) == "" {
				t.Error("missing detail")
			}
		})
	}
	if env.builds.count() != 0 {
		t.Error("rejected payloads enqueued builds")
	}
}

func TestStoreFailureIs500(t *testing.T) {
	env := newTestEnv(t)
	env.pages.err = errBoom

	w := env.do(t, http.MethodGet, "/api/pages", nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if strings.Contains(w.Body.String(), "boom") {
		t.Error("internal error leaked to the client")
	}
}

func TestBuildFailureDoesNotFailSave(t *testing.T) {
	env := newTestEnv(t)
	env.builds.err = errBoom

	w := env.do(t, http.MethodPost, "/api/pages", models.PagePayload{Title: "Still saved"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestListPagesIsCachedAndInvalidated(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/pages", nil)
	if w.Header().Get("X-Cache") != "MISS" || strings.TrimSpace(w.Body.String()) != "[]" {
		t.Fatalf("first list: %s %q", w.Header().Get("X-Cache"), w.Body)
	}
	w = env.do(t, http.MethodGet, "/api/pages", nil)
	if w.Header().Get("X-Cache") != "HIT" {
		t.Fatalf("second list not served from cache")
	}
	if env.pages.lists != 1 {
		t.Errorf("store listed %d times, want 1", env.pages.lists)
	}

	env.do(t, http.MethodPost, "/api/pages", models.PagePayload{Title: "Fresh"})

	w = env.do(t, http.MethodGet, "/api/pages", nil)
	if w.Header().Get("X-Cache") != "MISS" {
		t.Fatal("list still cached after a write")
	}
	var pages []models.Page
	decode(t, w, &pages)
	if len(pages) != 1 || pages[0].Title != "Fresh" {
		t.Errorf("pages = %+v", pages)
	}
}

func TestCacheOutageFallsThrough(t *testing.T) {
	env := newTestEnv(t)
	env.redis.Close()

	w := env.do(t, http.MethodGet, "/api/pages", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 with the cache down", w.Code)
	}
}

func TestMenuEndpoints(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/menus", models.MenuPayload{
		Title: "Main",
		Items: []menutree.Item{{Label: "Home", URL: "/", Children: []menutree.Item{{Label: "Team", URL: "/team"}}}},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("create: %d %s", w.Code, w.Body)
	}
	var m models.Menu
	decode(t, w, &m)
	if m.Items[0].ID == "" || m.Items[0].Children[0].ID == "" {
		t.Errorf("items without ids: %+v", m.Items)
	}

	w = env.do(t, http.MethodPost, "/api/menus", models.MenuPayload{Title: "Main"})
	if w.Code != http.StatusConflict {
		t.Errorf("duplicate title: status %d, want 409", w.Code)
	}

	payload := m.Payload()
	payload.CTAText = "Sign up"
	payload.CTAColor = "#000"
	w = env.do(t, http.MethodPut, "/api/menus/"+m.ID.String(), payload)
	if w.Code != http.StatusOK {
		t.Fatalf("update: %d %s", w.Code, w.Body)
	}

	w = env.do(t, http.MethodGet, "/api/menus/"+m.ID.String(), nil)
	var got models.Menu
	decode(t, w, &got)
	if got.CTAText != "Sign up" || got.CTAColor != "#000" {
		t.Errorf("get after update = %+v", got)
	}

	w = env.do(t, http.MethodPut, "/api/menus/"+uuid.NewString(), payload)
	if w.Code != http.StatusNotFound || detail(t, w) != "Menu not found" {
		t.Errorf("update unknown: %d %s", w.Code, w.Body)
	}

	w = env.do(t, http.MethodPut, "/api/menus/"+m.ID.String(), models.MenuPayload{Title: "Main", CTAColor: "blue"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad color: status %d, want 400", w.Code)
	}
}

func TestSettingsEndpoints(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/settings", nil)
	var st models.UISettings
	decode(t, w, &st)
	if st != models.DefaultUISettings() {
		t.Errorf("initial settings = %+v", st)
	}

	want := models.UISettings{BrandPrimary: "#ff0000", BrandHover: "#cc0000"}
	w = env.do(t, http.MethodPut, "/api/settings", want)
	if w.Code != http.StatusOK {
		t.Fatalf("update: %d %s", w.Code, w.Body)
	}

	w = env.do(t, http.MethodGet, "/api/settings", nil)
	decode(t, w, &st)
	if st != want {
		t.Errorf("settings after update = %+v", st)
	}
	if env.builds.count() != 1 {
		t.Errorf("builds = %d, want 1", env.builds.count())
	}

	w = env.do(t, http.MethodPut, "/api/settings", models.UISettings{BrandPrimary: "red", BrandHover: "#fff"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("invalid color accepted: %d", w.Code)
	}
}

func TestGenerate(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/generate", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var res models.BuildResult
	decode(t, w, &res)
	if res.Status != models.BuildSuccess || res.Message == "" {
		t.Errorf("result = %+v", res)
	}

	w = env.do(t, http.MethodGet, "/api/build/status", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("status before any run = %d, want 404", w.Code)
	}
	env.builds.last = &build.Status{JobID: "j1", Status: models.BuildSuccess}
	w = env.do(t, http.MethodGet, "/api/build/status", nil)
	var st buildStatus
	decode(t, w, &st)
	if st.JobID != "j1" || st.Pending != int64(env.builds.count()) {
		t.Errorf("status = %+v", st)
	}

	env.builds.err = errBoom
	w = env.do(t, http.MethodPost, "/api/generate", nil)
	if w.Code != http.StatusInternalServerError {
		t.Errorf("enqueue failure: status %d, want 500", w.Code)
	}
}

// pngHeader is the start of a 1x1 PNG, enough for type detection.
var pngHeader = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a,
	0x00, 0x00, 0x00, 0x0d, 0x49, 0x48, 0x44, 0x52,
	0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89,
}

func multipartRequest(t *testing.T, field, filename string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	fw.Write(content)
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestUpload(t *testing.T) {
	env := newTestEnv(t)

	w := httptest.NewRecorder()
	env.handler.ServeHTTP(w, multipartRequest(t, "file", "My Photo.png", pngHeader))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body)
	}
	var res models.UploadResult
	decode(t, w, &res)
	if !strings.HasPrefix(res.URL, "https://cdn.example.test/") || !strings.HasSuffix(res.URL, "-my-photo.png") {
		t.Errorf("url = %q", res.URL)
	}
	if len(env.storage.objects) != 1 {
		t.Errorf("stored %d objects, want 1", len(env.storage.objects))
	}
	if len(env.uploads.created) != 1 || env.uploads.created[0].ContentType != "image/png" {
		t.Errorf("upload records = %+v", env.uploads.created)
	}

	w = env.do(t, http.MethodGet, "/api/uploads", nil)
	var list []models.Upload
	decode(t, w, &list)
	if len(list) != 1 || list[0].URL != res.URL {
		t.Errorf("upload list = %+v", list)
	}
}

func TestUploadRejects(t *testing.T) {
	env := newTestEnv(t)

	w := httptest.NewRecorder()
	env.handler.ServeHTTP(w, multipartRequest(t, "file", "run.sh", []byte("#!/bin/sh\necho hi\n")))
	if w.Code != http.StatusBadRequest {
		t.Errorf("script upload: status %d, want 400", w.Code)
	}

	w = httptest.NewRecorder()
	env.handler.ServeHTTP(w, multipartRequest(t, "other", "a.png", pngHeader))
	if w.Code != http.StatusBadRequest || detail(t, w) != "No file provided." {
		t.Errorf("wrong field: %d %s", w.Code, w.Body)
	}
}

func TestUploadRemovesObjectWhenRecordFails(t *testing.T) {
	env := newTestEnv(t)
	env.uploads.err = errBoom

	w := httptest.NewRecorder()
	env.handler.ServeHTTP(w, multipartRequest(t, "file", "a.png", pngHeader))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if len(env.storage.objects) != 0 {
		t.Errorf("orphaned objects left: %d", len(env.storage.objects))
	}
}

func TestDashboard(t *testing.T) {
	env := newTestEnv(t)
	env.dash.stats = models.DashboardStats{Pages: 3, PublishedPages: 2, Menus: 1}
	for i := 0; i < 8; i++ {
		env.dash.recent = append(env.dash.recent, models.RecentPage{ID: models.ID(uuid.NewString()), Title: "p"})
	}

	w := env.do(t, http.MethodGet, "/api/dashboard/stats", nil)
	var stats models.DashboardStats
	decode(t, w, &stats)
	if stats != env.dash.stats {
		t.Errorf("stats = %+v", stats)
	}

	tests := []struct {
		query string
		want  int
	}{
		{"", 5},
		{"?limit=2", 2},
		{"?limit=abc", 5},
		{"?limit=500", 8},
	}
	for _, tt := range tests {
		w := env.do(t, http.MethodGet, "/api/dashboard/recent"+tt.query, nil)
		var recent []models.RecentPage
		decode(t, w, &recent)
		if len(recent) != tt.want {
			t.Errorf("recent%s: %d rows, want %d", tt.query, len(recent), tt.want)
		}
	}

	env.do(t, http.MethodPost, "/api/pages", models.PagePayload{Title: "x", Blocks: []blocks.Block{}})
	w = env.do(t, http.MethodGet, "/api/dashboard/activity", nil)
	var entries []models.Activity
	decode(t, w, &entries)
	if len(entries) != 1 || entries[0].Action != "create" {
		t.Errorf("activity = %+v", entries)
	}
}
