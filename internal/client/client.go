// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package client talks to the CMS backend over its JSON API. Every non-2xx
// response and every network failure surfaces as a *TransportError. The
// client never retries and applies no timeout of its own; callers cancel
// through the context.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"staticcms/internal/models"
)

// maxErrorBody caps how much of an error response is kept on TransportError.
const maxErrorBody = 4 << 10

// Client is a backend API client. The zero value is not usable; use New.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New returns a client for the API rooted at baseURL (e.g. http://localhost:8000).
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("parse base url: unsupported scheme %q", u.Scheme)
	}
	c := &Client{
		baseURL: strings.TrimRight(u.String(), "/"),
		http:    &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the API root the client was built with.
func (c *Client) BaseURL() string { return c.baseURL }

// --- Pages ---

// ListPages returns every page.
func (c *Client) ListPages(ctx context.Context) ([]models.Page, error) {
	var out []models.Page
	if err := c.doJSON(ctx, "list pages", http.MethodGet, "/api/pages", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetPage fetches one page.
func (c *Client) GetPage(ctx context.Context, id models.ID) (models.Page, error) {
	var out models.Page
	err := c.doJSON(ctx, "get page", http.MethodGet, "/api/pages/"+url.PathEscape(id.String()), nil, &out)
	return out, err
}

// CreatePage creates a page and returns the stored version.
func (c *Client) CreatePage(ctx context.Context, p models.PagePayload) (models.Page, error) {
	var out models.Page
	err := c.doJSON(ctx, "create page", http.MethodPost, "/api/pages", p, &out)
	return out, err
}

// UpdatePage replaces the page with the given id.
func (c *Client) UpdatePage(ctx context.Context, id models.ID, p models.PagePayload) (models.Page, error) {
	var out models.Page
	err := c.doJSON(ctx, "update page", http.MethodPut, "/api/pages/"+url.PathEscape(id.String()), p, &out)
	return out, err
}

// DeletePage removes a page.
func (c *Client) DeletePage(ctx context.Context, id models.ID) error {
	return c.doJSON(ctx, "delete page", http.MethodDelete, "/api/pages/"+url.PathEscape(id.String()), nil, nil)
}

// --- Menus ---

// ListMenus returns every menu.
func (c *Client) ListMenus(ctx context.Context) ([]models.Menu, error) {
	var out []models.Menu
	if err := c.doJSON(ctx, "list menus", http.MethodGet, "/api/menus", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetMenu fetches one menu. Backends that only route PUT on /api/menus/{id}
// answer 405; the menu is then looked up in the list.
func (c *Client) GetMenu(ctx context.Context, id models.ID) (models.Menu, error) {
	var out models.Menu
	err := c.doJSON(ctx, "get menu", http.MethodGet, "/api/menus/"+url.PathEscape(id.String()), nil, &out)
	if err == nil {
		return out, nil
	}
	var te *TransportError
	if !errors.As(err, &te) || te.StatusCode != http.StatusMethodNotAllowed {
		return models.Menu{}, err
	}

	menus, listErr := c.ListMenus(ctx)
	if listErr != nil {
		return models.Menu{}, listErr
	}
	for _, m := range menus {
		if m.ID == id {
			return m, nil
		}
	}
	return models.Menu{}, &TransportError{
		Op:         "get menu",
		Method:     te.Method,
		URL:        te.URL,
		StatusCode: http.StatusNotFound,
		Body:       "Menu not found",
	}
}

// CreateMenu creates a menu and returns the stored version.
func (c *Client) CreateMenu(ctx context.Context, m models.MenuPayload) (models.Menu, error) {
	var out models.Menu
	err := c.doJSON(ctx, "create menu", http.MethodPost, "/api/menus", m, &out)
	return out, err
}

// UpdateMenu replaces the menu with the given id.
func (c *Client) UpdateMenu(ctx context.Context, id models.ID, m models.MenuPayload) (models.Menu, error) {
	var out models.Menu
	err := c.doJSON(ctx, "update menu", http.MethodPut, "/api/menus/"+url.PathEscape(id.String()), m, &out)
	return out, err
}

// --- Settings ---

// GetSettings returns the UI settings.
func (c *Client) GetSettings(ctx context.Context) (models.UISettings, error) {
	var out models.UISettings
	err := c.doJSON(ctx, "get settings", http.MethodGet, "/api/settings", nil, &out)
	return out, err
}

// UpdateSettings stores new UI settings.
func (c *Client) UpdateSettings(ctx context.Context, s models.UISettings) (models.UISettings, error) {
	var out models.UISettings
	err := c.doJSON(ctx, "update settings", http.MethodPut, "/api/settings", s, &out)
	return out, err
}

// --- Dashboard ---

// Stats returns the dashboard counters.
func (c *Client) Stats(ctx context.Context) (models.DashboardStats, error) {
	var out models.DashboardStats
	err := c.doJSON(ctx, "dashboard stats", http.MethodGet, "/api/dashboard/stats", nil, &out)
	return out, err
}

// RecentPages returns the most recently edited pages.
func (c *Client) RecentPages(ctx context.Context) ([]models.RecentPage, error) {
	var out []models.RecentPage
	if err := c.doJSON(ctx, "recent pages", http.MethodGet, "/api/dashboard/recent", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// --- Build ---

// Generate asks the backend to regenerate the static site. It calls
// /api/generate and falls back to /api/build when the first route does not
// exist on the server.
func (c *Client) Generate(ctx context.Context) (models.BuildResult, error) {
	var out models.BuildResult
	err := c.doJSON(ctx, "generate site", http.MethodPost, "/api/generate", nil, &out)
	if err == nil || !methodUnsupported(err) {
		return out, err
	}
	out = models.BuildResult{}
	err = c.doJSON(ctx, "generate site", http.MethodPost, "/api/build", nil, &out)
	return out, err
}

// --- Upload ---

// Upload sends r as a multipart "file" field and returns the public URL of
// the stored file.
func (c *Client) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	const op = "upload file"

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", fmt.Errorf("%s: read source: %w", op, err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/upload", &buf)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var out models.UploadResult
	if err := c.do(req, op, &out); err != nil {
		return "", err
	}
	return out.URL, nil
}

// ListUploads returns the most recent uploads, newest first.
func (c *Client) ListUploads(ctx context.Context, limit int) ([]models.Upload, error) {
	path := "/api/uploads"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	var out []models.Upload
	if err := c.doJSON(ctx, "list uploads", http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// --- plumbing ---

func (c *Client) doJSON(ctx context.Context, op, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s: marshal: %w", op, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, op, out)
}

func (c *Client) do(req *http.Request, op string, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Op: op, Method: req.Method, URL: req.URL.String(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &TransportError{
			Op:         op,
			Method:     req.Method,
			URL:        req.URL.String(),
			StatusCode: resp.StatusCode,
			Body:       errorDetail(b),
		}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &TransportError{
			Op:         op,
			Method:     req.Method,
			URL:        req.URL.String(),
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("decode response: %w", err),
		}
	}
	return nil
}

// errorDetail extracts {"detail": "..."} from an error body, falling back to
// the raw text.
func errorDetail(b []byte) string {
	var e struct {
		Detail any `json:"detail"`
	}
	if json.Unmarshal(b, &e) == nil {
		if s, ok := e.Detail.(string); ok && s != "" {
			return s
		}
	}
	return strings.TrimSpace(string(b))
}

func methodUnsupported(err error) bool {
	var te *TransportError
	if !errors.As(err, &te) {
		return false
	}
	return te.StatusCode == http.StatusNotFound || te.StatusCode == http.StatusMethodNotAllowed
}
