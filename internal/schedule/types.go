// Package schedule implements the scheduling engine: it partitions an ordered
// playlist into day buckets under a pacing constraint, aggregates plan
// statistics, and tracks per-video completion so a plan can be regenerated
// without losing or renumbering finished work.
package schedule

import "time"

// PacingMode selects the constraint that drives bucket sizing.
type PacingMode string

const (
	// PacingDailyHours fills each day up to a fixed time budget.
	PacingDailyHours PacingMode = "daily"
	// PacingTargetDate fits the plan into the days remaining before a target date.
	PacingTargetDate PacingMode = "target"
)

// Pacing carries the mode and its value. Exactly one of DailyBudget or
// TargetDate is meaningful, depending on Mode.
type Pacing struct {
	Mode        PacingMode
	DailyBudget time.Duration
	TargetDate  time.Time
}

// Item is one schedulable video. ID is the canonical watch URL and is the
// key progress tracking uses; items are immutable once a plan references them.
type Item struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	Duration  time.Duration `json:"duration"`
	Thumbnail string        `json:"thumbnail,omitempty"`
}

// Bucket is one day of the plan: a contiguous run of items in playlist order.
// Revision buckets carry no items; they pad a target-date plan that finished
// ahead of its day count.
type Bucket struct {
	DayNumber int       `json:"day_number"`
	Date      time.Time `json:"date"`
	Items     []Item    `json:"items"`
	Revision  bool      `json:"revision,omitempty"`
}

// Total returns the accumulated duration of the bucket's items.
func (b Bucket) Total() time.Duration {
	var total time.Duration
	for _, item := range b.Items {
		total += item.Duration
	}
	return total
}

// Summary holds plan-level aggregate statistics.
type Summary struct {
	TotalItems           int           `json:"total_items"`
	TotalDays            int           `json:"total_days"`
	TotalDuration        time.Duration `json:"total_duration"`
	AverageDailyDuration time.Duration `json:"average_daily_duration"`
}

// Plan is the output of one generation pass. It is never mutated in place;
// regeneration produces a fresh Plan.
type Plan struct {
	Buckets   []Bucket  `json:"buckets"`
	Summary   Summary   `json:"summary"`
	Pacing    Pacing    `json:"pacing"`
	StartDate time.Time `json:"start_date"`
}

// Contains reports whether the plan schedules the given item.
func (p *Plan) Contains(itemID string) bool {
	for _, bucket := range p.Buckets {
		for _, item := range bucket.Items {
			if item.ID == itemID {
				return true
			}
		}
	}
	return false
}

// Items returns all scheduled items in day order. Concatenated bucket
// contents reproduce the exact input order of the items that were scheduled.
func (p *Plan) Items() []Item {
	var items []Item
	for _, bucket := range p.Buckets {
		items = append(items, bucket.Items...)
	}
	return items
}

// CompletionState maps item IDs to completion flags. It is independent of
// plan regeneration: a new plan re-applies the existing state to the item IDs
// it still contains.
type CompletionState map[string]bool

// Clone returns an independent copy of the state.
func (c CompletionState) Clone() CompletionState {
	out := make(CompletionState, len(c))
	for id, done := range c {
		out[id] = done
	}
	return out
}

// dateOf truncates a time to midnight in its own location; the engine does
// all calendar math at day granularity.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// anchorUTC re-anchors a time's calendar date at UTC midnight. The date is
// read in the time's own location first, so a local 9am and a UTC-parsed
// date string on the same calendar day anchor to the same instant.
func anchorUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the number of calendar days from a to b. Both operands
// are anchored at UTC midnight, so mixed locations and DST transitions never
// shift the count.
func daysBetween(a, b time.Time) int {
	return int(anchorUTC(b).Sub(anchorUTC(a)) / (24 * time.Hour))
}
