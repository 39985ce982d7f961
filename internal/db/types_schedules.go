package db

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Schedule statuses.
const (
	ScheduleStatusActive    = "active"
	ScheduleStatusCompleted = "completed"
)

// Schedule represents a saved study schedule. Plan holds the generated plan
// document as JSON; Settings holds the pacing parameters the plan was
// generated with, so regeneration can reuse them.
type Schedule struct {
	ID           uuid.UUID       `json:"id"`
	UserID       uuid.UUID       `json:"user_id"`
	Title        string          `json:"title"`
	PlaylistURL  string          `json:"playlist_url"`
	ScheduleType string          `json:"schedule_type"` // daily | target
	Settings     json.RawMessage `json:"settings"`
	Plan         json.RawMessage `json:"plan"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ScheduleListing is the lightweight row returned by list queries; the plan
// document itself stays out of list responses.
type ScheduleListing struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	PlaylistURL  string    `json:"playlist_url"`
	ScheduleType string    `json:"schedule_type"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// VideoProgress represents one completion row for a schedule.
type VideoProgress struct {
	ScheduleID  uuid.UUID  `json:"schedule_id"`
	VideoID     string     `json:"video_id"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
