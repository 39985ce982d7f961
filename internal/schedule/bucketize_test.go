package schedule

import (
	"testing"
	"time"
)

func item(id string, d time.Duration) Item {
	return Item{ID: id, Title: id, Duration: d}
}

func itemIDs(buckets []Bucket) [][]string {
	out := make([][]string, len(buckets))
	for i, b := range buckets {
		for _, it := range b.Items {
			out[i] = append(out[i], it.ID)
		}
	}
	return out
}

func assertDays(t *testing.T, buckets []Bucket, want [][]string) {
	t.Helper()
	if len(buckets) != len(want) {
		t.Fatalf("got %d buckets, want %d: %v", len(buckets), len(want), itemIDs(buckets))
	}
	for i, ids := range itemIDs(buckets) {
		if len(ids) != len(want[i]) {
			t.Fatalf("day %d: got %v, want %v", i+1, ids, want[i])
		}
		for j := range ids {
			if ids[j] != want[i][j] {
				t.Errorf("day %d: got %v, want %v", i+1, ids, want[i])
				break
			}
		}
	}
}

var testStart = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

func TestBucketizeDailyGreedyFill(t *testing.T) {
	items := []Item{
		item("v1", time.Hour),
		item("v2", time.Hour),
		item("v3", 30*time.Minute),
	}

	buckets := bucketize(items, 90*time.Minute, 1, testStart, 0)

	// v2 would push day 1 to 2h > 1.5h, so it opens day 2; v3 fits there.
	assertDays(t, buckets, [][]string{{"v1"}, {"v2", "v3"}})
	if got := buckets[1].Total(); got != 90*time.Minute {
		t.Errorf("day 2 total = %v, want 1h30m", got)
	}
}

func TestBucketizeDayNumbersAndDates(t *testing.T) {
	items := []Item{
		item("v1", time.Hour),
		item("v2", time.Hour),
		item("v3", time.Hour),
	}

	buckets := bucketize(items, time.Hour, 4, testStart, 0)

	if len(buckets) != 3 {
		t.Fatalf("got %d buckets, want 3", len(buckets))
	}
	for i, b := range buckets {
		if b.DayNumber != 4+i {
			t.Errorf("bucket %d: day number = %d, want %d", i, b.DayNumber, 4+i)
		}
		if want := testStart.AddDate(0, 0, i); !b.Date.Equal(want) {
			t.Errorf("bucket %d: date = %v, want %v", i, b.Date, want)
		}
	}
}

// Every bucket stays within the budget, unless it holds a single item whose
// own duration exceeds it.
func TestBucketizeBudgetInvariant(t *testing.T) {
	items := []Item{
		item("v1", 20*time.Minute),
		item("v2", 50*time.Minute),
		item("v3", 3*time.Hour), // oversized, gets its own day
		item("v4", 10*time.Minute),
		item("v5", 45*time.Minute),
		item("v6", 25*time.Minute),
	}
	budget := time.Hour

	buckets := bucketize(items, budget, 1, testStart, 0)

	for _, b := range buckets {
		if b.Total() <= budget {
			continue
		}
		if len(b.Items) != 1 {
			t.Errorf("day %d exceeds budget with %d items", b.DayNumber, len(b.Items))
		}
	}

	// Oversized item is alone on its day.
	assertDays(t, buckets, [][]string{{"v1"}, {"v2"}, {"v3"}, {"v4", "v5"}, {"v6"}})
}

// Concatenating bucket contents in day order reproduces the input sequence
// exactly: order preserved, nothing dropped, nothing duplicated.
func TestBucketizeOrderPreserving(t *testing.T) {
	durations := []time.Duration{
		13 * time.Minute, 2 * time.Hour, time.Minute, 47 * time.Minute,
		90 * time.Minute, 5 * time.Minute, 5 * time.Minute, 61 * time.Minute,
	}
	items := make([]Item, len(durations))
	for i, d := range durations {
		items[i] = item(string(rune('a'+i)), d)
	}

	for _, forceDays := range []int{0, 3} {
		buckets := bucketize(items, time.Hour, 1, testStart, forceDays)
		var flat []Item
		for _, b := range buckets {
			flat = append(flat, b.Items...)
		}
		if len(flat) != len(items) {
			t.Fatalf("forceDays=%d: %d items out, %d in", forceDays, len(flat), len(items))
		}
		for i := range flat {
			if flat[i].ID != items[i].ID {
				t.Errorf("forceDays=%d: position %d = %s, want %s", forceDays, i, flat[i].ID, items[i].ID)
			}
		}
	}
}

func TestBucketizeForcedDayCount(t *testing.T) {
	tests := []struct {
		name      string
		items     int
		each      time.Duration
		forceDays int
		wantDays  int
	}{
		{name: "fill exceeds day count, final day absorbs", items: 12, each: time.Hour, forceDays: 3, wantDays: 3},
		{name: "fill matches day count", items: 10, each: 10 * time.Minute, forceDays: 5, wantDays: 5},
		{name: "fewer items than days, revision padding", items: 2, each: time.Hour, forceDays: 6, wantDays: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := make([]Item, tt.items)
			var total time.Duration
			for i := range items {
				items[i] = item(string(rune('a'+i)), tt.each)
				total += tt.each
			}
			buckets := bucketize(items, total/time.Duration(tt.forceDays), 1, testStart, tt.forceDays)
			if len(buckets) != tt.wantDays {
				t.Fatalf("got %d buckets, want %d", len(buckets), tt.wantDays)
			}
			// Revision buckets, if any, are trailing and empty.
			seenRevision := false
			for _, b := range buckets {
				if b.Revision {
					seenRevision = true
					if len(b.Items) != 0 {
						t.Errorf("revision day %d has items", b.DayNumber)
					}
				} else if seenRevision {
					t.Errorf("content day %d follows a revision day", b.DayNumber)
				}
			}
		})
	}
}

func TestBucketizeEmptyInput(t *testing.T) {
	if got := bucketize(nil, time.Hour, 1, testStart, 0); len(got) != 0 {
		t.Errorf("daily mode: got %d buckets from empty input", len(got))
	}
	if got := bucketize(nil, time.Hour, 1, testStart, 5); len(got) != 0 {
		t.Errorf("target mode: got %d buckets from empty input", len(got))
	}
}
