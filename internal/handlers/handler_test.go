// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides in-memory collaborators and a router for the
// handler tests.
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"staticcms/internal/build"
	"staticcms/internal/cache"
	"staticcms/internal/menutree"
	"staticcms/internal/models"
	"staticcms/internal/slug"
	"staticcms/internal/store"
)

type fakePages struct {
	mu    sync.Mutex
	pages map[uuid.UUID]models.Page
	order []uuid.UUID
	err   error
	lists int
}

func newFakePages() *fakePages {
	return &fakePages{pages: map[uuid.UUID]models.Page{}}
}

func (f *fakePages) List() ([]models.Page, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists++
	if f.err != nil {
		return nil, f.err
	}
	out := []models.Page{}
	for _, id := range f.order {
		if p, ok := f.pages[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePages) FindByID(id uuid.UUID) (*models.Page, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.pages[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (f *fakePages) Create(in models.PagePayload) (*models.Page, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	id := uuid.New()
	p := in.Page()
	p.ID = models.ID(id.String())
	p.Slug = slug.Generate(in.Title)
	p.CreatedAt = models.NewTimestamp(time.Now())
	p.UpdatedAt = p.CreatedAt
	f.pages[id] = p
	f.order = append(f.order, id)
	return &p, nil
}

func (f *fakePages) Update(id uuid.UUID, in models.PagePayload) (*models.Page, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	old, ok := f.pages[id]
	if !ok {
		return nil, nil
	}
	p := in.Page()
	p.ID = old.ID
	p.Slug = slug.Generate(in.Title)
	p.CreatedAt = old.CreatedAt
	p.UpdatedAt = models.NewTimestamp(time.Now())
	f.pages[id] = p
	return &p, nil
}

func (f *fakePages) Delete(id uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.pages[id]; !ok {
		return false, nil
	}
	delete(f.pages, id)
	return true, nil
}

type fakeMenus struct {
	mu    sync.Mutex
	menus map[uuid.UUID]models.Menu
}

func (f *fakeMenus) List() ([]models.Menu, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.Menu{}
	for _, m := range f.menus {
		out = append(out, m)
	}
	return out, nil
}

func (f *fakeMenus) FindByID(id uuid.UUID) (*models.Menu, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.menus[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (f *fakeMenus) Create(in models.MenuPayload) (*models.Menu, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range f.menus {
		if m.Title == in.Title {
			return nil, store.ErrConflict
		}
	}
	id := uuid.New()
	m := in.Menu()
	m.ID = models.ID(id.String())
	m.Items = menutree.EnsureIDs(m.Items)
	f.menus[id] = m
	return &m, nil
}

func (f *fakeMenus) Update(id uuid.UUID, in models.MenuPayload) (*models.Menu, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.menus[id]; !ok {
		return nil, nil
	}
	m := in.Menu()
	m.ID = models.ID(id.String())
	m.Items = menutree.EnsureIDs(m.Items)
	f.menus[id] = m
	return &m, nil
}

type fakeSettings struct {
	st models.UISettings
}

func (f *fakeSettings) Get() (models.UISettings, error) { return f.st, nil }

func (f *fakeSettings) Update(in models.UISettings) (models.UISettings, error) {
	f.st = in
	return in, nil
}

type fakeUploads struct {
	created []models.Upload
	err     error
}

func (f *fakeUploads) Create(u *models.Upload) (*models.Upload, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := *u
	out.ID = uuid.New()
	out.CreatedAt = time.Now()
	f.created = append(f.created, out)
	return &out, nil
}

func (f *fakeUploads) Recent(limit int) ([]models.Upload, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []models.Upload{}
	for i := len(f.created) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, f.created[i])
	}
	return out, nil
}

type fakeDashboard struct {
	stats  models.DashboardStats
	recent []models.RecentPage
}

func (f *fakeDashboard) Stats() (models.DashboardStats, error) { return f.stats, nil }

func (f *fakeDashboard) RecentPages(limit int) ([]models.RecentPage, error) {
	if limit < len(f.recent) {
		return f.recent[:limit], nil
	}
	return f.recent, nil
}

type fakeActivity struct {
	mu      sync.Mutex
	entries []models.Activity
}

func (f *fakeActivity) Log(entityType, entityID, action string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append([]models.Activity{{
		ID: int64(len(f.entries) + 1), EntityType: entityType, EntityID: entityID, Action: action, At: time.Now(),
	}}, f.entries...)
}

func (f *fakeActivity) Recent(limit int) ([]models.Activity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.entries[:min(limit, len(f.entries))], nil
}

func (f *fakeActivity) actions() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.entries))
	for i, e := range f.entries {
		out[i] = e.EntityType + ":" + e.Action
	}
	return out
}

type fakeBuilds struct {
	mu      sync.Mutex
	reasons []string
	err     error
	last    *build.Status
}

func (f *fakeBuilds) Enqueue(_ context.Context, reason string) (build.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return build.Job{}, f.err
	}
	f.reasons = append(f.reasons, reason)
	return build.Job{ID: uuid.NewString(), Reason: reason, RequestedAt: time.Now()}, nil
}

func (f *fakeBuilds) Last(_ context.Context) (build.Status, bool, error) {
	if f.last == nil {
		return build.Status{}, false, nil
	}
	return *f.last, true, nil
}

func (f *fakeBuilds) Pending(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.reasons)), nil
}

func (f *fakeBuilds) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.reasons)
}

type memStorage struct {
	objects map[string][]byte
	putErr  error
}

func (m *memStorage) Name() string { return "mem" }

func (m *memStorage) Put(_ context.Context, key, _ string, body io.ReadSeeker, _ int64) (string, error) {
	if m.putErr != nil {
		return "", m.putErr
	}
	b, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	m.objects[key] = b
	return "https://cdn.example.test/" + key, nil
}

func (m *memStorage) Delete(_ context.Context, key string) error {
	delete(m.objects, key)
	return nil
}

// testEnv bundles an API wired to fakes with the router that serves it.
type testEnv struct {
	pages    *fakePages
	menus    *fakeMenus
	settings *fakeSettings
	uploads  *fakeUploads
	dash     *fakeDashboard
	activity *fakeActivity
	builds   *fakeBuilds
	storage  *memStorage
	redis    *miniredis.Miniredis
	handler  http.Handler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	env := &testEnv{
		pages:    newFakePages(),
		menus:    &fakeMenus{menus: map[uuid.UUID]models.Menu{}},
		settings: &fakeSettings{st: models.DefaultUISettings()},
		uploads:  &fakeUploads{},
		dash:     &fakeDashboard{},
		activity: &fakeActivity{},
		builds:   &fakeBuilds{},
		storage:  &memStorage{objects: map[string][]byte{}},
		redis:    mr,
	}
	api := NewAPI(Deps{
		Pages:     env.pages,
		Menus:     env.menus,
		Settings:  env.settings,
		Uploads:   env.uploads,
		Dashboard: env.dash,
		Activity:  env.activity,
		Storage:   env.storage,
		Builds:    env.builds,
		Cache:     cache.NewResponseCache(client, time.Minute),
	})

	r := chi.NewRouter()
	r.Get("/api/pages", api.ListPages)
	r.Post("/api/pages", api.CreatePage)
	r.Get("/api/pages/{id}", api.GetPage)
	r.Put("/api/pages/{id}", api.UpdatePage)
	r.Delete("/api/pages/{id}", api.DeletePage)
	r.Get("/api/menus", api.ListMenus)
	r.Post("/api/menus", api.CreateMenu)
	r.Get("/api/menus/{id}", api.GetMenu)
	r.Put("/api/menus/{id}", api.UpdateMenu)
	r.Get("/api/settings", api.GetSettings)
	r.Put("/api/settings", api.UpdateSettings)
	r.Post("/api/upload", api.Upload)
	r.Get("/api/uploads", api.ListUploads)
	r.Post("/api/generate", api.Generate)
	r.Post("/api/build", api.Generate)
	r.Get("/api/build/status", api.BuildStatus)
	r.Get("/api/dashboard/stats", api.Stats)
	r.Get("/api/dashboard/recent", api.RecentPages)
	r.Get("/api/dashboard/activity", api.Activity)
	env.handler = r
	return env
}

// do sends a request with an optional JSON body and returns the recorder.
func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			rd = bytes.NewBufferString(b)
		default:
			raw, err := json.Marshal(b)
			if err != nil {
				t.Fatalf("marshal body: %v", err)
			}
			rd = bytes.NewReader(raw)
		}
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.handler.ServeHTTP(w, req)
	return w
}

// decode unmarshals a recorder's body into v.
func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
}

// detail returns the "detail" field of an error response.
func detail(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	decode(t, w, &body)
	return body["detail"]
}

var errBoom = errors.New("boom")
