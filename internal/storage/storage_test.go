// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package storage

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"
)

func TestObjectKey(t *testing.T) {
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		original    string
		detectedExt string
		pattern     string
	}{
		{name: "plain", original: "Team Photo.JPG", detectedExt: ".jpg", pattern: `^2026/10/[0-9a-f-]{36}-team-photo\.jpg$`},
		{name: "no extension", original: "logo", detectedExt: ".png", pattern: `^2026/10/[0-9a-f-]{36}-logo\.png$`},
		{name: "path stripped", original: `C:\Users\me\..\hero.webp`, detectedExt: ".webp", pattern: `^2026/10/[0-9a-f-]{36}-hero\.webp$`},
		{name: "unsluggable name", original: "世界.gif", detectedExt: ".gif", pattern: `^2026/10/[0-9a-f-]{36}\.gif$`},
		{name: "traversal", original: "../../etc/passwd", detectedExt: ".txt", pattern: `^2026/10/[0-9a-f-]{36}-passwd\.txt$`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ObjectKey(tt.original, tt.detectedExt, now)
			if !regexp.MustCompile(tt.pattern).MatchString(got) {
				t.Errorf("ObjectKey(%q) = %q, want match %s", tt.original, got, tt.pattern)
			}
		})
	}

	if ObjectKey("a.png", ".png", now) == ObjectKey("a.png", ".png", now) {
		t.Error("keys for the same name must differ")
	}
}

func TestDiskPutAndDelete(t *testing.T) {
	d, err := NewDisk(t.TempDir(), "http://localhost:8000/")
	if err != nil {
		t.Fatal(err)
	}
	if d.Name() != "disk" {
		t.Errorf("Name = %q", d.Name())
	}

	ctx := context.Background()
	url, err := d.Put(ctx, "2026/10/x.txt", "text/plain", strings.NewReader("hello"), 5)
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if url != "http://localhost:8000/uploads/2026/10/x.txt" {
		t.Errorf("url = %q", url)
	}
	b, err := os.ReadFile(filepath.Join(d.Dir(), "2026", "10", "x.txt"))
	if err != nil || string(b) != "hello" {
		t.Fatalf("file = %q, %v", b, err)
	}

	if err := d.Delete(ctx, "2026/10/x.txt"); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(d.Dir(), "2026", "10", "x.txt")); !os.IsNotExist(err) {
		t.Errorf("file still present: %v", err)
	}
	if err := d.Delete(ctx, "2026/10/x.txt"); err != nil {
		t.Errorf("second delete: %v", err)
	}
}

func TestDiskRejectsEscapingKeys(t *testing.T) {
	d, err := NewDisk(t.TempDir(), "http://localhost")
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"../x", "..", "/etc/passwd", ""} {
		if _, err := d.Put(context.Background(), key, "", strings.NewReader("x"), 1); err == nil {
			t.Errorf("Put(%q) expected error", key)
		}
	}
}

func TestNewS3Validation(t *testing.T) {
	if _, err := NewS3(S3Config{Bucket: "b"}); err == nil {
		t.Error("expected error without endpoint")
	}
	if _, err := NewS3(S3Config{Endpoint: "http://s3", AccessKey: "a", SecretKey: "s"}); err == nil {
		t.Error("expected error without bucket")
	}
}

func TestS3FileURL(t *testing.T) {
	plain, _ := NewS3(S3Config{Endpoint: "https://s3.example.com/", Region: "us-east-1", AccessKey: "a", SecretKey: "s", Bucket: "uploads"})
	if got := plain.FileURL("2026/10/a.png"); got != "https://s3.example.com/uploads/2026/10/a.png" {
		t.Errorf("FileURL = %q", got)
	}
	key, ok := plain.KeyFromURL("https://s3.example.com/uploads/2026/10/a.png")
	if !ok || key != "2026/10/a.png" {
		t.Errorf("KeyFromURL = %q %v", key, ok)
	}

	cdn, _ := NewS3(S3Config{Endpoint: "https://s3.example.com", Region: "us-east-1", AccessKey: "a", SecretKey: "s", Bucket: "uploads", PublicURL: "https://cdn.example.com/"})
	if got := cdn.FileURL("a.png"); got != "https://cdn.example.com/a.png" {
		t.Errorf("FileURL = %q", got)
	}
	if _, ok := cdn.KeyFromURL("https://elsewhere.example.com/a.png"); ok {
		t.Error("foreign url matched")
	}
}

func TestS3PutUsesPathStyle(t *testing.T) {
	var (
		gotMethod, gotPath, gotType, gotACL string
		gotBody                             []byte
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		gotType = r.Header.Get("Content-Type")
		gotACL = r.Header.Get("X-Amz-Acl")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c, err := NewS3(S3Config{Endpoint: srv.URL, Region: "us-east-1", AccessKey: "a", SecretKey: "s", Bucket: "uploads"})
	if err != nil {
		t.Fatal(err)
	}
	url, err := c.Put(context.Background(), "2026/10/a.png", "image/png", bytes.NewReader([]byte("PNG")), 3)
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if gotMethod != http.MethodPut || gotPath != "/uploads/2026/10/a.png" {
		t.Errorf("request = %s %s", gotMethod, gotPath)
	}
	if gotType != "image/png" || gotACL != "public-read" {
		t.Errorf("content-type=%q acl=%q", gotType, gotACL)
	}
	if !bytes.Contains(gotBody, []byte("PNG")) {
		t.Errorf("body = %q", gotBody)
	}
	if url != srv.URL+"/uploads/2026/10/a.png" {
		t.Errorf("url = %q", url)
	}
}
