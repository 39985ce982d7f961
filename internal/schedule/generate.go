package schedule

import (
	"fmt"
	"time"
)

// Generate produces a plan for the given items under the given pacing.
//
// prior and completion may be nil on first generation. When present, the
// continuity resolver trims completed items and advances the starting day
// number so the new plan appends to the work already done. today is the
// caller's wall clock; the plan's calendar dates run contiguously from it.
func Generate(items []Item, pacing Pacing, prior *Plan, completion CompletionState, today time.Time) (*Plan, error) {
	if len(items) == 0 {
		return nil, &ErrEmptyItemList{}
	}

	startDate := dateOf(today)

	var totalDays int
	switch pacing.Mode {
	case PacingDailyHours:
		if pacing.DailyBudget <= 0 {
			return nil, &ErrInvalidPacing{Reason: "daily budget must be positive"}
		}
	case PacingTargetDate:
		days := daysBetween(today, pacing.TargetDate)
		if days < 1 {
			return nil, &ErrInvalidPacing{Reason: "target date must be in the future"}
		}
		totalDays = days
	default:
		return nil, &ErrInvalidPacing{Reason: fmt.Sprintf("unknown pacing mode %q", pacing.Mode)}
	}

	point := Resolve(prior, completion, items)

	var buckets []Bucket
	switch pacing.Mode {
	case PacingDailyHours:
		buckets = bucketize(point.Remaining, pacing.DailyBudget, point.StartDay, startDate, 0)
	case PacingTargetDate:
		var remainingTotal time.Duration
		for _, item := range point.Remaining {
			remainingTotal += item.Duration
		}
		// Integer division truncates; the final day absorbs the remainder.
		cap := remainingTotal / time.Duration(totalDays)
		buckets = bucketize(point.Remaining, cap, point.StartDay, startDate, totalDays)
	}

	return &Plan{
		Buckets:   buckets,
		Summary:   Summarize(buckets),
		Pacing:    pacing,
		StartDate: startDate,
	}, nil
}

// UpdateProgress records a completion flag for an item in the plan and
// returns the resulting completion state. Setting an already-held state is a
// no-op beyond touching the item's presence in the map.
func UpdateProgress(plan *Plan, tracker *Tracker, itemID string, completed bool) (CompletionState, error) {
	if !plan.Contains(itemID) {
		return nil, &ErrUnknownItem{ItemID: itemID}
	}
	tracker.Set(itemID, completed)
	return tracker.Snapshot(), nil
}
