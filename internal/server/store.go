package server

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/rohan/learnfast/internal/db"
	"github.com/rohan/learnfast/internal/schedule"
)

// Store is the persistence interface the handlers depend on. *db.DB
// implements it; tests substitute an in-memory version.
type Store interface {
	CreateUser(ctx context.Context, name, email, passwordHash string) (uuid.UUID, error)
	CheckEmailExists(ctx context.Context, email string) (bool, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*db.User, error)
	GetUserByEmail(ctx context.Context, email string) (*db.User, error)

	CreateSchedule(ctx context.Context, userID uuid.UUID, title, playlistURL, scheduleType string, settings, plan json.RawMessage) (uuid.UUID, error)
	GetSchedule(ctx context.Context, scheduleID, userID uuid.UUID) (*db.Schedule, error)
	ListSchedules(ctx context.Context, userID uuid.UUID) ([]db.ScheduleListing, error)
	UpdateSchedulePlan(ctx context.Context, scheduleID, userID uuid.UUID, settings, plan json.RawMessage) (bool, error)
	UpdateScheduleStatus(ctx context.Context, scheduleID, userID uuid.UUID, status string) (bool, error)
	DeleteSchedule(ctx context.Context, scheduleID, userID uuid.UUID) (bool, error)

	SetVideoProgress(ctx context.Context, scheduleID uuid.UUID, videoID string, completed bool) error
	GetCompletionState(ctx context.Context, scheduleID uuid.UUID) (schedule.CompletionState, error)
}
