package types

import (
	"fmt"
	"time"

	"github.com/rohan/learnfast/internal/duration"
	"github.com/rohan/learnfast/internal/schedule"
)

const dateLayout = "2006-01-02"

// PlanVideo is one video on the wire. Duration uses the H:MM:SS display form.
type PlanVideo struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Duration  string `json:"duration"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

// PlanDay is one day of the plan on the wire.
type PlanDay struct {
	DayNumber     int         `json:"day_number"`
	Date          string      `json:"date"`
	Videos        []PlanVideo `json:"videos"`
	TotalDuration string      `json:"total_duration"`
	Revision      bool        `json:"revision,omitempty"`
}

// PlanSummary carries plan-level aggregates on the wire.
type PlanSummary struct {
	TotalVideos          int     `json:"total_videos"`
	TotalDays            int     `json:"total_days"`
	TotalDuration        string  `json:"total_duration"`
	TotalHours           float64 `json:"total_hours"`
	AverageDailyDuration string  `json:"average_daily_duration"`
}

// PlanDoc is the full plan document served by the API, stored in the
// schedules table, and exported to files.
type PlanDoc struct {
	ScheduleType string      `json:"schedule_type"`
	DailyHours   float64     `json:"daily_hours,omitempty"`
	TargetDate   string      `json:"target_date,omitempty"`
	StartDate    string      `json:"start_date"`
	Days         []PlanDay   `json:"days"`
	Summary      PlanSummary `json:"summary"`
}

// ScheduleSettings is the pacing configuration persisted alongside a plan so
// regeneration can reuse it.
type ScheduleSettings struct {
	ScheduleType string  `json:"schedule_type"`
	DailyHours   float64 `json:"daily_hours,omitempty"`
	TargetDate   string  `json:"target_date,omitempty"`
}

// Pacing converts stored settings into engine terms.
func (s ScheduleSettings) Pacing() (schedule.Pacing, error) {
	switch s.ScheduleType {
	case ScheduleTypeDaily:
		if s.DailyHours <= 0 {
			return schedule.Pacing{}, fmt.Errorf("daily_hours missing from settings")
		}
		return schedule.Pacing{
			Mode:        schedule.PacingDailyHours,
			DailyBudget: duration.FromHours(s.DailyHours),
		}, nil
	case ScheduleTypeTarget:
		target, err := time.Parse(dateLayout, s.TargetDate)
		if err != nil {
			return schedule.Pacing{}, fmt.Errorf("invalid target_date in settings: %w", err)
		}
		return schedule.Pacing{
			Mode:       schedule.PacingTargetDate,
			TargetDate: target,
		}, nil
	default:
		return schedule.Pacing{}, fmt.Errorf("unknown schedule_type %q", s.ScheduleType)
	}
}

// ExportDocument is the portable form of a saved schedule, including its
// completion state.
type ExportDocument struct {
	Version     int              `json:"version"`
	Title       string           `json:"title"`
	PlaylistURL string           `json:"playlist_url"`
	Settings    ScheduleSettings `json:"settings"`
	Plan        PlanDoc          `json:"plan"`
	Completion  map[string]bool  `json:"completion"`
	ExportedAt  string           `json:"exported_at"`
}

// ExportVersion is the current export document version.
const ExportVersion = 1

// PlanDocFrom converts an engine plan into its wire form.
func PlanDocFrom(p *schedule.Plan) *PlanDoc {
	doc := &PlanDoc{
		ScheduleType: string(p.Pacing.Mode),
		StartDate:    p.StartDate.Format(dateLayout),
		Days:         make([]PlanDay, 0, len(p.Buckets)),
		Summary: PlanSummary{
			TotalVideos:          p.Summary.TotalItems,
			TotalDays:            p.Summary.TotalDays,
			TotalDuration:        duration.Format(p.Summary.TotalDuration),
			TotalHours:           duration.Hours(p.Summary.TotalDuration),
			AverageDailyDuration: duration.Format(p.Summary.AverageDailyDuration),
		},
	}
	switch p.Pacing.Mode {
	case schedule.PacingDailyHours:
		doc.DailyHours = duration.Hours(p.Pacing.DailyBudget)
	case schedule.PacingTargetDate:
		doc.TargetDate = p.Pacing.TargetDate.Format(dateLayout)
	}
	for _, bucket := range p.Buckets {
		day := PlanDay{
			DayNumber:     bucket.DayNumber,
			Date:          bucket.Date.Format(dateLayout),
			Videos:        make([]PlanVideo, 0, len(bucket.Items)),
			TotalDuration: duration.Format(bucket.Total()),
			Revision:      bucket.Revision,
		}
		for _, item := range bucket.Items {
			day.Videos = append(day.Videos, PlanVideo{
				ID:        item.ID,
				Title:     item.Title,
				Duration:  duration.Format(item.Duration),
				Thumbnail: item.Thumbnail,
			})
		}
		doc.Days = append(doc.Days, day)
	}
	return doc
}

// ToPlan converts a wire document back into an engine plan. It is the
// inverse of PlanDocFrom up to sub-second duration precision.
func (doc *PlanDoc) ToPlan() (*schedule.Plan, error) {
	startDate, err := time.Parse(dateLayout, doc.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start_date: %w", err)
	}
	pacing := schedule.Pacing{Mode: schedule.PacingMode(doc.ScheduleType)}
	switch pacing.Mode {
	case schedule.PacingDailyHours:
		pacing.DailyBudget = duration.FromHours(doc.DailyHours)
	case schedule.PacingTargetDate:
		if doc.TargetDate != "" {
			pacing.TargetDate, err = time.Parse(dateLayout, doc.TargetDate)
			if err != nil {
				return nil, fmt.Errorf("invalid target_date: %w", err)
			}
		}
	default:
		return nil, fmt.Errorf("unknown schedule_type %q", doc.ScheduleType)
	}

	plan := &schedule.Plan{Pacing: pacing, StartDate: startDate}
	for _, day := range doc.Days {
		date, err := time.Parse(dateLayout, day.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date on day %d: %w", day.DayNumber, err)
		}
		bucket := schedule.Bucket{
			DayNumber: day.DayNumber,
			Date:      date,
			Revision:  day.Revision,
		}
		for _, video := range day.Videos {
			d, err := duration.Parse(video.Duration)
			if err != nil {
				return nil, fmt.Errorf("invalid duration for video %q: %w", video.ID, err)
			}
			bucket.Items = append(bucket.Items, schedule.Item{
				ID:        video.ID,
				Title:     video.Title,
				Duration:  d,
				Thumbnail: video.Thumbnail,
			})
		}
		plan.Buckets = append(plan.Buckets, bucket)
	}
	plan.Summary = schedule.Summarize(plan.Buckets)
	return plan, nil
}
