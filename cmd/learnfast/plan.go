package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rohan/learnfast/internal/duration"
	"github.com/rohan/learnfast/internal/playlist"
	"github.com/rohan/learnfast/internal/schedule"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate a study schedule for a playlist",
	Long:  "Fetches a YouTube playlist and prints a day-by-day study schedule. Uses the YouTube Data API when YOUTUBE_API_KEY is set, otherwise falls back to scraping the playlist page.",
	RunE:  runPlan,
}

var (
	planURL          string
	planDailyHours   float64
	planTargetDate   string
	planStartVideo   int
	planBreakMinutes int
)

func init() {
	planCmd.Flags().StringVarP(&planURL, "url", "u", "", "Playlist URL (required)")
	planCmd.Flags().Float64Var(&planDailyHours, "daily-hours", 0, "Hours of watch time per day")
	planCmd.Flags().StringVar(&planTargetDate, "target-date", "", "Finish-by date (YYYY-MM-DD)")
	planCmd.Flags().IntVar(&planStartVideo, "start-video", 1, "Video number to start the schedule from")
	planCmd.Flags().IntVar(&planBreakMinutes, "break-minutes", 0, "Daily break time deducted from the watch budget")

	if err := planCmd.MarkFlagRequired("url"); err != nil {
		panic(fmt.Sprintf("failed to mark url flag as required: %v", err))
	}

	rootCmd.AddCommand(planCmd)
}

func runPlan(_ *cobra.Command, _ []string) error {
	pacing, err := planPacing()
	if err != nil {
		return err
	}

	ctx := context.Background()

	source, err := planSource(ctx)
	if err != nil {
		return err
	}

	pl, err := source.Playlist(ctx, planURL)
	if err != nil {
		return fmt.Errorf("failed to fetch playlist: %w", err)
	}

	items := pl.Items
	if planStartVideo < 1 || planStartVideo > len(items) {
		return fmt.Errorf("start-video must be between 1 and %d, got %d", len(items), planStartVideo)
	}
	items = items[planStartVideo-1:]

	plan, err := schedule.Generate(items, pacing, nil, nil, time.Now())
	if err != nil {
		return fmt.Errorf("failed to generate schedule: %w", err)
	}

	printPlan(pl.Title, plan)
	return nil
}

// planPacing validates the flag combination and builds the pacing constraint.
func planPacing() (schedule.Pacing, error) {
	switch {
	case planDailyHours > 0 && planTargetDate != "":
		return schedule.Pacing{}, fmt.Errorf("daily-hours and target-date are mutually exclusive")
	case planDailyHours > 0:
		budget := duration.FromHours(planDailyHours) - time.Duration(planBreakMinutes)*time.Minute
		if budget <= 0 {
			return schedule.Pacing{}, fmt.Errorf("break-minutes leaves no watch time in a %.2g hour day", planDailyHours)
		}
		return schedule.Pacing{Mode: schedule.PacingDailyHours, DailyBudget: budget}, nil
	case planTargetDate != "":
		if planBreakMinutes > 0 {
			return schedule.Pacing{}, fmt.Errorf("break-minutes only applies with daily-hours")
		}
		target, err := time.ParseInLocation("2006-01-02", planTargetDate, time.UTC)
		if err != nil {
			return schedule.Pacing{}, fmt.Errorf("invalid target-date: %w", err)
		}
		return schedule.Pacing{Mode: schedule.PacingTargetDate, TargetDate: target}, nil
	default:
		return schedule.Pacing{}, fmt.Errorf("one of daily-hours or target-date is required")
	}
}

func planSource(ctx context.Context) (playlist.Source, error) {
	if apiKey := os.Getenv("YOUTUBE_API_KEY"); apiKey != "" {
		source, err := playlist.NewAPISource(ctx, apiKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create YouTube API client: %w", err)
		}
		return source, nil
	}
	useBrowser := os.Getenv("PLAYLIST_BROWSER_FALLBACK") == "true"
	return playlist.NewScrapeSource(useBrowser), nil
}

func printPlan(title string, plan *schedule.Plan) {
	_, _ = fmt.Fprintf(os.Stdout, "Schedule for: %s\n\n", title)

	for _, day := range plan.Buckets {
		_, _ = fmt.Fprintf(os.Stdout, "Day %d (%s):\n", day.DayNumber, day.Date.Format("2006-01-02"))
		if day.Revision {
			_, _ = fmt.Fprintln(os.Stdout, "  Revision day: review everything covered so far")
			continue
		}
		for _, item := range day.Items {
			_, _ = fmt.Fprintf(os.Stdout, "  %s (%s)\n", item.Title, duration.Format(item.Duration))
		}
		_, _ = fmt.Fprintf(os.Stdout, "  Total: %s\n", duration.Format(day.Total()))
	}

	_, _ = fmt.Fprintf(os.Stdout, "\n%d videos over %d days, %s total (%.1f hours, about %s per day)\n",
		plan.Summary.TotalItems,
		plan.Summary.TotalDays,
		duration.Format(plan.Summary.TotalDuration),
		duration.Hours(plan.Summary.TotalDuration),
		duration.Format(plan.Summary.AverageDailyDuration))
}
