// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"staticcms/internal/models"
	"staticcms/internal/storage"
	"staticcms/internal/store"
)

const (
	// maxUploadSize is the maximum allowed file upload size (20 MB).
	maxUploadSize = 20 << 20

	// sniffLen is how many leading bytes are inspected to detect the type.
	sniffLen = 3072
)

// allowedUploadTypes defines MIME types accepted for upload.
var allowedUploadTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/gif":       true,
	"image/webp":      true,
	"image/svg+xml":   true,
	"image/avif":      true,
	"image/x-icon":    true,
	"application/pdf": true,
}

// Upload stores a multipart "file" field and returns {"url": ...}.
func (a *API) Upload(w http.ResponseWriter, r *http.Request) {
	if a.storage == nil {
		writeError(w, http.StatusServiceUnavailable, "File storage is not configured.")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize+1024)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, "File too large. Maximum size is 20 MB.")
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No file provided.")
		return
	}
	defer file.Close()

	if header.Size > maxUploadSize {
		writeError(w, http.StatusRequestEntityTooLarge, "File too large. Maximum size is 20 MB.")
		return
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(file, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		writeError(w, http.StatusInternalServerError, "Failed to read file.")
		return
	}
	mt := mimetype.Detect(head[:n])
	contentType := baseType(mt)
	if !allowedUploadTypes[contentType] {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("File type %q is not allowed.", contentType))
		return
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to process file.")
		return
	}

	ctx := r.Context()
	key := storage.ObjectKey(header.Filename, mt.Extension(), time.Now())
	url, err := a.storage.Put(ctx, key, contentType, file, header.Size)
	if err != nil {
		slog.Error("upload store failed", "backend", a.storage.Name(), "key", key, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to upload file.")
		return
	}

	rec := &models.Upload{
		Filename:     key,
		OriginalName: header.Filename,
		ContentType:  contentType,
		SizeBytes:    header.Size,
		Backend:      a.storage.Name(),
		Key:          key,
		URL:          url,
	}
	if a.uploads != nil {
		created, err := a.uploads.Create(rec)
		if err != nil {
			slog.Error("upload db insert failed", "key", key, "error", err)
			if derr := a.storage.Delete(ctx, key); derr != nil {
				slog.Warn("orphaned upload not removed", "key", key, "error", derr)
			}
			writeError(w, http.StatusInternalServerError, "Failed to save file metadata.")
			return
		}
		rec = created
	}

	a.changed(ctx, store.EntityUpload, rec.Key, store.ActionCreate)
	slog.Info("file uploaded", "key", key, "type", contentType, "size", rec.HumanSize())
	writeJSON(w, http.StatusOK, models.UploadResult{URL: url})
}

// baseType walks up the detected type's parents until it finds one on the
// allow list. MIME.Is also matches aliases such as image/vnd.microsoft.icon.
func baseType(mt *mimetype.MIME) string {
	for m := mt; m != nil; m = m.Parent() {
		for candidate := range allowedUploadTypes {
			if m.Is(candidate) {
				return candidate
			}
		}
	}
	return mt.String()
}
