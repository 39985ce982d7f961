package schedule

import "sync"

// Tracker owns the completion flags for one plan instance. All access goes
// through the mutex: concurrent Set calls on different items commute,
// concurrent calls on the same item serialize with the last write winning,
// and Snapshot gives generation a consistent copy so a toggle arriving
// mid-pass can never be half-reflected in the new plan.
type Tracker struct {
	mu        sync.Mutex
	completed CompletionState
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{completed: make(CompletionState)}
}

// NewTrackerFrom returns a tracker seeded with existing state, as loaded
// from storage before regeneration.
func NewTrackerFrom(state CompletionState) *Tracker {
	return &Tracker{completed: state.Clone()}
}

// Toggle flips the flag for an item (unseen items start false) and returns
// the new value. Toggle is its own inverse.
func (t *Tracker) Toggle(itemID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.completed[itemID] = !t.completed[itemID]
	return t.completed[itemID]
}

// Set records an explicit flag for an item.
func (t *Tracker) Set(itemID string, completed bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.completed[itemID] = completed
}

// Completed returns the current flag for an item.
func (t *Tracker) Completed(itemID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.completed[itemID]
}

// Snapshot returns an independent copy of the completion state.
func (t *Tracker) Snapshot() CompletionState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.completed.Clone()
}
