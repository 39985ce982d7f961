package schedule

// ResumePoint is where regeneration picks up: the day number the new plan
// starts at and the items still to be scheduled.
type ResumePoint struct {
	StartDay  int
	Remaining []Item
}

// Resolve trims completed items from the full current item list and computes
// the starting day number for a regenerated plan.
//
// The starting day is one past the highest prior day that contained at least
// one completed item, so regeneration never renumbers a day already partly
// consumed. When completions are scattered (day 3 done, day 2 not), only the
// completed items leave the sequence; the remainder is re-bucketized fresh
// from the starting day. Plans are append-oriented, not retroactively edited.
func Resolve(prior *Plan, completion CompletionState, items []Item) ResumePoint {
	point := ResumePoint{StartDay: 1}

	if len(completion) > 0 {
		for _, item := range items {
			if !completion[item.ID] {
				point.Remaining = append(point.Remaining, item)
			}
		}
	} else {
		point.Remaining = items
	}

	if prior == nil || len(completion) == 0 {
		return point
	}

	for _, bucket := range prior.Buckets {
		for _, item := range bucket.Items {
			if completion[item.ID] && bucket.DayNumber >= point.StartDay {
				point.StartDay = bucket.DayNumber + 1
				break
			}
		}
	}
	return point
}
