package playlist

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// The YouTube Data API reports video lengths as ISO-8601 durations
// (PT1H2M3S). Days appear for very long streams (P1DT2H).
var iso8601Pattern = regexp.MustCompile(`^P(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?)?$`)

// parseISO8601 converts an ISO-8601 duration string to a time.Duration.
func parseISO8601(s string) (time.Duration, error) {
	match := iso8601Pattern.FindStringSubmatch(s)
	if match == nil || s == "P" || s == "PT" {
		return 0, fmt.Errorf("invalid ISO-8601 duration %q", s)
	}

	units := []time.Duration{24 * time.Hour, time.Hour, time.Minute, time.Second}
	var total time.Duration
	for i, unit := range units {
		if match[i+1] == "" {
			continue
		}
		v, err := strconv.Atoi(match[i+1])
		if err != nil {
			return 0, fmt.Errorf("invalid ISO-8601 duration %q: %w", s, err)
		}
		total += time.Duration(v) * unit
	}
	return total, nil
}
