package schedule

import "time"

// Summarize computes plan-level statistics over finished buckets.
func Summarize(buckets []Bucket) Summary {
	summary := Summary{TotalDays: len(buckets)}
	for _, bucket := range buckets {
		summary.TotalItems += len(bucket.Items)
		summary.TotalDuration += bucket.Total()
	}
	if summary.TotalDays > 0 {
		summary.AverageDailyDuration = summary.TotalDuration / time.Duration(summary.TotalDays)
	}
	return summary
}
