package schedule

import (
	"sync"
	"testing"
)

func TestTrackerToggleIsItsOwnInverse(t *testing.T) {
	tracker := NewTracker()

	if got := tracker.Toggle("v1"); !got {
		t.Error("first toggle = false, want true")
	}
	if got := tracker.Toggle("v1"); got {
		t.Error("second toggle = true, want false")
	}
	if tracker.Completed("v1") {
		t.Error("item completed after toggle pair")
	}
}

func TestTrackerSetIdempotent(t *testing.T) {
	tracker := NewTracker()

	tracker.Set("v1", true)
	tracker.Set("v1", true)
	if !tracker.Completed("v1") {
		t.Error("item not completed after Set(true)")
	}

	tracker.Set("v1", false)
	if tracker.Completed("v1") {
		t.Error("item still completed after Set(false)")
	}

	// Unseen items default to not completed.
	if tracker.Completed("never-seen") {
		t.Error("unseen item reports completed")
	}
}

func TestTrackerSnapshotIsIndependent(t *testing.T) {
	tracker := NewTrackerFrom(CompletionState{"v1": true})

	snap := tracker.Snapshot()
	tracker.Set("v2", true)

	if _, ok := snap["v2"]; ok {
		t.Error("snapshot reflects a write made after it was taken")
	}
	if !snap["v1"] {
		t.Error("snapshot lost seeded state")
	}

	// Mutating the snapshot must not leak back.
	snap["v1"] = false
	if !tracker.Completed("v1") {
		t.Error("snapshot mutation leaked into tracker")
	}
}

func TestTrackerConcurrentSets(t *testing.T) {
	tracker := NewTracker()
	ids := []string{"v1", "v2", "v3", "v4", "v5", "v6", "v7", "v8"}

	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				tracker.Toggle(id)
			}
		}(id)
	}
	wg.Wait()

	// An even toggle count lands every item back at not-completed.
	for _, id := range ids {
		if tracker.Completed(id) {
			t.Errorf("item %s completed after even toggle count", id)
		}
	}
}
