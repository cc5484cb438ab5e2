// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// activity.go records content changes for the dashboard's activity feed.
// Each entry captures what changed and how (create/update/delete).
package store

import (
	"database/sql"
	"fmt"
	"log/slog"

	"staticcms/internal/models"
)

// Activity entity types and actions.
const (
	EntityPage     = "page"
	EntityMenu     = "menu"
	EntitySettings = "settings"
	EntityUpload   = "upload"

	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// ActivityStore handles activity log operations.
type ActivityStore struct {
	db *sql.DB
}

// NewActivityStore creates a new ActivityStore.
func NewActivityStore(db *sql.DB) *ActivityStore {
	return &ActivityStore{db: db}
}

// Log records a change. Failures are logged, never returned.
func (s *ActivityStore) Log(entityType, entityID, action string) {
	_, err := s.db.Exec(`
		INSERT INTO activity_log (entity_type, entity_id, action)
		VALUES ($1, $2, $3)
	`, entityType, entityID, action)
	if err != nil {
		slog.Warn("failed to log activity",
			"entity_type", entityType,
			"entity_id", entityID,
			"action", action,
			"error", err,
		)
		return
	}
	slog.Debug("activity logged", "entity_type", entityType, "entity_id", entityID, "action", action)
}

// Recent returns the latest entries, newest first.
func (s *ActivityStore) Recent(limit int) ([]models.Activity, error) {
	rows, err := s.db.Query(`
		SELECT id, entity_type, entity_id, action, at
		FROM activity_log
		ORDER BY at DESC, id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query activity log: %w", err)
	}
	defer rows.Close()

	entries := []models.Activity{}
	for rows.Next() {
		var e models.Activity
		if err := rows.Scan(&e.ID, &e.EntityType, &e.EntityID, &e.Action, &e.At); err != nil {
			return nil, fmt.Errorf("scan activity log: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
