package assistant

import (
	"fmt"
	"strings"

	"github.com/rohan/learnfast/internal/types"
)

// ScheduleContext carries the schedule details the assistant may ground its
// answer in.
type ScheduleContext struct {
	Title      string
	Plan       *types.PlanDoc
	Completion map[string]bool
}

const systemPreamble = `You are a study assistant for a video course planner. The user follows a day-by-day schedule generated from a YouTube playlist. Answer briefly and concretely. If schedule details are provided below, base your answer on them; otherwise answer from general study advice. Do not invent schedule contents.`

// buildPrompt assembles the full prompt for one chat turn.
func buildPrompt(message string, sched *ScheduleContext) string {
	var sb strings.Builder
	sb.WriteString(systemPreamble)
	sb.WriteString("\n\n")

	if sched != nil && sched.Plan != nil {
		plan := sched.Plan
		completed := 0
		for _, done := range sched.Completion {
			if done {
				completed++
			}
		}

		sb.WriteString("Schedule details:\n")
		if sched.Title != "" {
			fmt.Fprintf(&sb, "- Title: %s\n", sched.Title)
		}
		fmt.Fprintf(&sb, "- Pacing: %s\n", describePacing(plan))
		fmt.Fprintf(&sb, "- Starts: %s, %d study days\n", plan.StartDate, plan.Summary.TotalDays)
		fmt.Fprintf(&sb, "- Videos: %d total (%s of watch time), %d completed\n",
			plan.Summary.TotalVideos, plan.Summary.TotalDuration, completed)

		sb.WriteString("- Days:\n")
		for _, day := range plan.Days {
			if day.Revision {
				fmt.Fprintf(&sb, "  - Day %d (%s): revision day\n", day.DayNumber, day.Date)
				continue
			}
			titles := make([]string, 0, len(day.Videos))
			for _, video := range day.Videos {
				marker := " "
				if sched.Completion[video.ID] {
					marker = "x"
				}
				titles = append(titles, fmt.Sprintf("[%s] %s (%s)", marker, video.Title, video.Duration))
			}
			fmt.Fprintf(&sb, "  - Day %d (%s, %s): %s\n",
				day.DayNumber, day.Date, day.TotalDuration, strings.Join(titles, "; "))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("User message: ")
	sb.WriteString(message)
	return sb.String()
}

func describePacing(plan *types.PlanDoc) string {
	switch plan.ScheduleType {
	case types.ScheduleTypeTarget:
		return fmt.Sprintf("finish by %s", plan.TargetDate)
	default:
		return fmt.Sprintf("%.2g hours per day", plan.DailyHours)
	}
}
