package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreateSchedule inserts a schedule with its settings and generated plan
// and returns the new schedule ID.
func (db *DB) CreateSchedule(ctx context.Context, userID uuid.UUID, title, playlistURL, scheduleType string, settings, plan json.RawMessage) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO schedules (user_id, title, playlist_url, schedule_type, settings, plan, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		userID, title, playlistURL, scheduleType, settings, plan, ScheduleStatusActive,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create schedule: %w", err)
	}
	return id, nil
}

// GetSchedule retrieves a schedule by ID, scoped to its owner.
// Returns nil if not found.
func (db *DB) GetSchedule(ctx context.Context, scheduleID, userID uuid.UUID) (*Schedule, error) {
	var s Schedule
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, title, playlist_url, schedule_type, settings, plan, status, created_at, updated_at
		 FROM schedules WHERE id = $1 AND user_id = $2`,
		scheduleID, userID,
	).Scan(&s.ID, &s.UserID, &s.Title, &s.PlaylistURL, &s.ScheduleType, &s.Settings, &s.Plan, &s.Status, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get schedule: %w", err)
	}
	return &s, nil
}

// ListSchedules returns the user's schedules, newest first, without the
// plan payloads.
func (db *DB) ListSchedules(ctx context.Context, userID uuid.UUID) ([]ScheduleListing, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, title, playlist_url, schedule_type, status, created_at, updated_at
		 FROM schedules WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}
	defer rows.Close()

	listings := []ScheduleListing{}
	for rows.Next() {
		var l ScheduleListing
		if err := rows.Scan(&l.ID, &l.Title, &l.PlaylistURL, &l.ScheduleType, &l.Status, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan schedule row: %w", err)
		}
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read schedule rows: %w", err)
	}
	return listings, nil
}

// UpdateSchedulePlan replaces a schedule's plan and settings after a
// regeneration. Returns false if the schedule does not exist for the user.
func (db *DB) UpdateSchedulePlan(ctx context.Context, scheduleID, userID uuid.UUID, settings, plan json.RawMessage) (bool, error) {
	tag, err := db.pool.Exec(ctx,
		`UPDATE schedules
		 SET settings = $3, plan = $4, updated_at = now()
		 WHERE id = $1 AND user_id = $2`,
		scheduleID, userID, settings, plan,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update schedule plan: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// UpdateScheduleStatus marks a schedule active or completed. Returns false
// if the schedule does not exist for the user.
func (db *DB) UpdateScheduleStatus(ctx context.Context, scheduleID, userID uuid.UUID, status string) (bool, error) {
	tag, err := db.pool.Exec(ctx,
		`UPDATE schedules SET status = $3, updated_at = now()
		 WHERE id = $1 AND user_id = $2`,
		scheduleID, userID, status,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update schedule status: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteSchedule removes a schedule and its progress rows. Returns false
// if the schedule does not exist for the user.
func (db *DB) DeleteSchedule(ctx context.Context, scheduleID, userID uuid.UUID) (bool, error) {
	tag, err := db.pool.Exec(ctx,
		`DELETE FROM schedules WHERE id = $1 AND user_id = $2`,
		scheduleID, userID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete schedule: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
