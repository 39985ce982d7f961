package schedule

import "fmt"

// ErrEmptyItemList indicates there is nothing to schedule.
type ErrEmptyItemList struct{}

func (e *ErrEmptyItemList) Error() string {
	return "no videos to schedule"
}

// ErrInvalidPacing indicates a non-positive daily budget or a target date
// that is not strictly in the future.
type ErrInvalidPacing struct {
	Reason string
}

func (e *ErrInvalidPacing) Error() string {
	return fmt.Sprintf("invalid pacing: %s", e.Reason)
}

// ErrUnknownItem indicates a progress update for an item the plan does not
// schedule.
type ErrUnknownItem struct {
	ItemID string
}

func (e *ErrUnknownItem) Error() string {
	return fmt.Sprintf("item not in plan: %s", e.ItemID)
}
