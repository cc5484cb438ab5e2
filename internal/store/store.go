// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store persists pages, menus, settings, uploads and the activity log
// in PostgreSQL. Lookups that find nothing return a nil result and a nil
// error; callers turn that into a 404.
package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"staticcms/internal/models"
)

// ErrConflict is returned when a write violates a unique constraint.
var ErrConflict = errors.New("conflicting record")

// uniqueViolation is the PostgreSQL error code for unique_violation.
const uniqueViolation = "23505"

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// ParseID converts an API id into a UUID. ok is false for malformed ids,
// which can never match a stored row.
func ParseID(id models.ID) (uuid.UUID, bool) {
	u, err := uuid.Parse(id.String())
	if err != nil {
		return uuid.Nil, false
	}
	return u, true
}

// wrapWrite maps unique violations to ErrConflict.
func wrapWrite(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%s: %w: %s", op, ErrConflict, pgErr.ConstraintName)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// notFound reports whether err means no row matched.
func notFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
