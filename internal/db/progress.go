package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/rohan/learnfast/internal/schedule"
)

// SetVideoProgress upserts the completion flag for one video in a schedule.
// completed_at is stamped when a video is marked done and cleared when the
// mark is undone.
func (db *DB) SetVideoProgress(ctx context.Context, scheduleID uuid.UUID, videoID string, completed bool) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO video_progress (schedule_id, video_id, completed, completed_at)
		 VALUES ($1, $2, $3, CASE WHEN $3 THEN now() ELSE NULL END)
		 ON CONFLICT (schedule_id, video_id)
		 DO UPDATE SET completed = $3,
		               completed_at = CASE WHEN $3 THEN now() ELSE NULL END`,
		scheduleID, videoID, completed,
	)
	if err != nil {
		return fmt.Errorf("failed to set video progress: %w", err)
	}
	return nil
}

// GetCompletionState loads the full completion map for a schedule.
func (db *DB) GetCompletionState(ctx context.Context, scheduleID uuid.UUID) (schedule.CompletionState, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT video_id, completed FROM video_progress WHERE schedule_id = $1`,
		scheduleID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get completion state: %w", err)
	}
	defer rows.Close()

	state := schedule.CompletionState{}
	for rows.Next() {
		var videoID string
		var completed bool
		if err := rows.Scan(&videoID, &completed); err != nil {
			return nil, fmt.Errorf("failed to scan progress row: %w", err)
		}
		state[videoID] = completed
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read progress rows: %w", err)
	}
	return state, nil
}
