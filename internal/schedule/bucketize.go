package schedule

import "time"

// bucketize partitions items, in order, into day buckets.
//
// With forceDays == 0 (daily pacing) a day closes as soon as the next item
// would push it past cap. An item whose own duration exceeds cap gets a day
// to itself; it is never dropped or split.
//
// With forceDays > 0 (target pacing) the same greedy fill runs, but a day
// may only close while days remain, so the final day absorbs whatever is
// left. If the fill finishes ahead of the day count, revision buckets pad
// the plan to exactly forceDays.
func bucketize(items []Item, cap time.Duration, startDay int, startDate time.Time, forceDays int) []Bucket {
	if len(items) == 0 {
		return nil
	}

	var buckets []Bucket
	var current []Item
	var currentTotal time.Duration

	close := func() {
		buckets = append(buckets, Bucket{
			DayNumber: startDay + len(buckets),
			Date:      startDate.AddDate(0, 0, len(buckets)),
			Items:     current,
		})
		current = nil
		currentTotal = 0
	}

	for _, item := range items {
		if len(current) > 0 && currentTotal+item.Duration > cap {
			if forceDays == 0 || len(buckets)+1 < forceDays {
				close()
			}
		}
		current = append(current, item)
		currentTotal += item.Duration
	}
	if len(current) > 0 {
		close()
	}

	for len(buckets) < forceDays {
		buckets = append(buckets, Bucket{
			DayNumber: startDay + len(buckets),
			Date:      startDate.AddDate(0, 0, len(buckets)),
			Revision:  true,
		})
	}

	return buckets
}
