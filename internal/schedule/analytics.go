package schedule

import "time"

// RecentWatchTime derives a watch-time series (in hours) for the trailing
// window ending at reference. Each completed item contributes its duration
// to the slot of its bucket's calendar date; buckets outside the window are
// ignored. The result is ordered oldest to newest, ready for chronological
// display.
func RecentWatchTime(plan *Plan, completion CompletionState, windowDays int, reference time.Time) []float64 {
	series := make([]float64, windowDays)
	if plan == nil || windowDays <= 0 {
		return series
	}

	for _, bucket := range plan.Buckets {
		offset := daysBetween(bucket.Date, reference) // 0 = reference day
		if offset < 0 || offset >= windowDays {
			continue
		}
		for _, item := range bucket.Items {
			if completion[item.ID] {
				series[windowDays-1-offset] += item.Duration.Hours()
			}
		}
	}
	return series
}
