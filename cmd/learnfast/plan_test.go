package main

import (
	"testing"
	"time"

	"github.com/rohan/learnfast/internal/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetPlanFlags() {
	planDailyHours = 0
	planTargetDate = ""
	planStartVideo = 1
	planBreakMinutes = 0
}

func TestPlanPacing_DailyHours(t *testing.T) {
	resetPlanFlags()
	planDailyHours = 1.5

	pacing, err := planPacing()
	require.NoError(t, err)
	assert.Equal(t, schedule.PacingDailyHours, pacing.Mode)
	assert.Equal(t, 90*time.Minute, pacing.DailyBudget)
}

func TestPlanPacing_BreakDeductedFromBudget(t *testing.T) {
	resetPlanFlags()
	planDailyHours = 2
	planBreakMinutes = 30

	pacing, err := planPacing()
	require.NoError(t, err)
	assert.Equal(t, 90*time.Minute, pacing.DailyBudget)
}

func TestPlanPacing_BreakConsumesWholeBudget(t *testing.T) {
	resetPlanFlags()
	planDailyHours = 0.5
	planBreakMinutes = 30

	_, err := planPacing()
	assert.Error(t, err)
}

func TestPlanPacing_TargetDate(t *testing.T) {
	resetPlanFlags()
	planTargetDate = "2026-06-01"

	pacing, err := planPacing()
	require.NoError(t, err)
	assert.Equal(t, schedule.PacingTargetDate, pacing.Mode)
	assert.Equal(t, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), pacing.TargetDate)
}

func TestPlanPacing_InvalidTargetDate(t *testing.T) {
	resetPlanFlags()
	planTargetDate = "June 1st"

	_, err := planPacing()
	assert.Error(t, err)
}

func TestPlanPacing_BreakWithTargetDate(t *testing.T) {
	resetPlanFlags()
	planTargetDate = "2026-06-01"
	planBreakMinutes = 15

	_, err := planPacing()
	assert.Error(t, err)
}

func TestPlanPacing_MutuallyExclusive(t *testing.T) {
	resetPlanFlags()
	planDailyHours = 1
	planTargetDate = "2026-06-01"

	_, err := planPacing()
	assert.Error(t, err)
}

func TestPlanPacing_NeitherSet(t *testing.T) {
	resetPlanFlags()

	_, err := planPacing()
	assert.Error(t, err)
}
