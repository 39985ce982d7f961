package schedule

import (
	"testing"
	"time"
)

func TestResolveNoPriorPlan(t *testing.T) {
	items := []Item{item("v1", time.Hour), item("v2", time.Hour)}

	point := Resolve(nil, nil, items)

	if point.StartDay != 1 {
		t.Errorf("start day = %d, want 1", point.StartDay)
	}
	if len(point.Remaining) != 2 {
		t.Errorf("remaining = %d items, want 2", len(point.Remaining))
	}
}

func TestResolveTrimsCompleted(t *testing.T) {
	items := []Item{
		item("v1", time.Hour),
		item("v2", time.Hour),
		item("v3", time.Hour),
		item("v4", time.Hour),
	}
	prior := &Plan{Buckets: []Bucket{
		{DayNumber: 1, Items: []Item{items[0], items[1]}},
		{DayNumber: 2, Items: []Item{items[2], items[3]}},
	}}
	completion := CompletionState{"v1": true, "v3": true}

	point := Resolve(prior, completion, items)

	// Day 2 held a completed item, so the new plan starts at day 3.
	if point.StartDay != 3 {
		t.Errorf("start day = %d, want 3", point.StartDay)
	}
	// Completed items leave the sequence; the rest keep their relative order.
	want := []string{"v2", "v4"}
	if len(point.Remaining) != len(want) {
		t.Fatalf("remaining = %v, want %v", point.Remaining, want)
	}
	for i, id := range want {
		if point.Remaining[i].ID != id {
			t.Errorf("remaining[%d] = %s, want %s", i, point.Remaining[i].ID, id)
		}
	}
}

func TestResolveIgnoresUntoggledEntries(t *testing.T) {
	items := []Item{item("v1", time.Hour), item("v2", time.Hour)}
	prior := &Plan{Buckets: []Bucket{
		{DayNumber: 1, Items: []Item{items[0]}},
		{DayNumber: 2, Items: []Item{items[1]}},
	}}
	// Toggled on and back off: present in the map but not completed.
	completion := CompletionState{"v2": false}

	point := Resolve(prior, completion, items)

	if point.StartDay != 1 {
		t.Errorf("start day = %d, want 1", point.StartDay)
	}
	if len(point.Remaining) != 2 {
		t.Errorf("remaining = %d items, want 2", len(point.Remaining))
	}
}

func TestResolveCompletedItemAbsentFromRefreshedList(t *testing.T) {
	// The playlist was refreshed and a completed video disappeared from it;
	// the resolver still honors its prior day number.
	prior := &Plan{Buckets: []Bucket{
		{DayNumber: 5, Items: []Item{item("gone", time.Hour)}},
	}}
	items := []Item{item("v1", time.Hour)}
	completion := CompletionState{"gone": true}

	point := Resolve(prior, completion, items)

	if point.StartDay != 6 {
		t.Errorf("start day = %d, want 6", point.StartDay)
	}
	if len(point.Remaining) != 1 || point.Remaining[0].ID != "v1" {
		t.Errorf("remaining = %v, want [v1]", point.Remaining)
	}
}
