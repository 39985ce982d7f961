package types

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/rohan/learnfast/internal/duration"
	"github.com/rohan/learnfast/internal/schedule"
)

// Schedule type values accepted on the wire.
const (
	ScheduleTypeDaily  = "daily"
	ScheduleTypeTarget = "target"
)

// GenerateScheduleRequest represents a request to build a plan from a playlist.
// Exactly one of DailyHours or TargetDate must be set, matching ScheduleType.
type GenerateScheduleRequest struct {
	PlaylistURL  string  `json:"playlist_url" validate:"required,url"`
	ScheduleType string  `json:"schedule_type" validate:"required,oneof=daily target"`
	DailyHours   float64 `json:"daily_hours,omitempty" validate:"omitempty,gt=0"`
	TargetDate   string  `json:"target_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Title        string  `json:"title,omitempty" validate:"omitempty,max=200"`
}

// ProgressUpdateRequest marks one video of a schedule complete or incomplete.
type ProgressUpdateRequest struct {
	VideoID   string `json:"video_id" validate:"required"`
	Completed bool   `json:"completed"`
}

// AssistantChatRequest carries one message to the study assistant.
type AssistantChatRequest struct {
	Message    string `json:"message" validate:"required,min=1,max=4000"`
	ScheduleID string `json:"schedule_id,omitempty" validate:"omitempty,uuid"`
}

// AssistantChatResponse is the assistant's reply.
type AssistantChatResponse struct {
	Reply string `json:"reply"`
}

// Validate validates the GenerateScheduleRequest using the validator.
func (r *GenerateScheduleRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return err
	}
	switch r.ScheduleType {
	case ScheduleTypeDaily:
		if r.DailyHours <= 0 {
			return fmt.Errorf("daily_hours is required for daily schedules")
		}
	case ScheduleTypeTarget:
		if r.TargetDate == "" {
			return fmt.Errorf("target_date is required for target schedules")
		}
	}
	return nil
}

// Validate validates the ProgressUpdateRequest using the validator.
func (r *ProgressUpdateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the AssistantChatRequest using the validator.
func (r *AssistantChatRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Settings returns the persistable pacing settings for this request.
func (r *GenerateScheduleRequest) Settings() ScheduleSettings {
	return ScheduleSettings{
		ScheduleType: r.ScheduleType,
		DailyHours:   r.DailyHours,
		TargetDate:   r.TargetDate,
	}
}

// Pacing converts the request's pacing fields into engine terms.
func (r *GenerateScheduleRequest) Pacing() (schedule.Pacing, error) {
	switch r.ScheduleType {
	case ScheduleTypeDaily:
		return schedule.Pacing{
			Mode:        schedule.PacingDailyHours,
			DailyBudget: duration.FromHours(r.DailyHours),
		}, nil
	case ScheduleTypeTarget:
		target, err := time.Parse("2006-01-02", r.TargetDate)
		if err != nil {
			return schedule.Pacing{}, fmt.Errorf("invalid target_date: %w", err)
		}
		return schedule.Pacing{
			Mode:       schedule.PacingTargetDate,
			TargetDate: target,
		}, nil
	default:
		return schedule.Pacing{}, fmt.Errorf("unknown schedule_type %q", r.ScheduleType)
	}
}
