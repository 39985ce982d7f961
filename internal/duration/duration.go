// Package duration converts between H:MM:SS duration strings and
// time.Duration values. Playlist sources report video lengths as clock-style
// strings; the scheduling engine works in exact time.Duration arithmetic and
// this package is the only place the two representations meet.
package duration

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MalformedError indicates a duration string that could not be parsed.
// A malformed duration is a hard failure for the item carrying it; it is
// never coerced to zero.
type MalformedError struct {
	Input  string
	Reason string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed duration %q: %s", e.Input, e.Reason)
}

// Parse converts an H:MM:SS or MM:SS string to a time.Duration.
// Minutes and seconds must be below 60; the hour component is unbounded.
func Parse(s string) (time.Duration, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, &MalformedError{Input: s, Reason: "expected H:MM:SS or MM:SS"}
	}

	values := make([]int, len(parts))
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return 0, &MalformedError{Input: s, Reason: fmt.Sprintf("component %q is not numeric", part)}
		}
		if v < 0 {
			return 0, &MalformedError{Input: s, Reason: fmt.Sprintf("component %q is negative", part)}
		}
		values[i] = v
	}

	var hours, minutes, seconds int
	if len(values) == 3 {
		hours, minutes, seconds = values[0], values[1], values[2]
	} else {
		minutes, seconds = values[0], values[1]
	}

	if minutes >= 60 {
		return 0, &MalformedError{Input: s, Reason: fmt.Sprintf("minutes component %d out of range", minutes)}
	}
	if seconds >= 60 {
		return 0, &MalformedError{Input: s, Reason: fmt.Sprintf("seconds component %d out of range", seconds)}
	}

	total := time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second
	return total, nil
}

// Format renders a duration as H:MM:SS, rounded to the nearest second.
// Format(Parse(s)) normalizes its input ("1:5:3" becomes "1:05:03") but is
// numerically equal to it.
func Format(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d.Round(time.Second) / time.Second)
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
}

// Hours returns the duration as fractional hours, the unit API payloads use
// for daily budgets.
func Hours(d time.Duration) float64 {
	return d.Hours()
}

// FromHours converts fractional hours to a duration, rounded to the nearest
// second so downstream bucket arithmetic stays exact.
func FromHours(hours float64) time.Duration {
	return time.Duration(hours * float64(time.Hour)).Round(time.Second)
}
