package progress

import (
	"math"
	"time"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/garrettborunda-lab/movefitrx-poc/catalog"
	"github.com/garrettborunda-lab/movefitrx-poc/patients"
	"github.com/garrettborunda-lab/movefitrx-poc/results"
)

type DisplayStatus string

const (
	DisplayStatusPendingPayment     DisplayStatus = "PENDING_PAYMENT"
	DisplayStatusSignupComplete     DisplayStatus = "SIGNUP_COMPLETE"
	DisplayStatusExerciseInProgress DisplayStatus = "EXERCISE_IN_PROGRESS"
)

const (
	// RequiredWorkoutTotal is the fixed completion denominator:
	// 3 sessions per week over a 12 week program. It is intentionally
	// independent of the regimen's step count.
	RequiredWorkoutTotal = 36

	// DailyAdherenceTarget is the per-day workout target shown on the
	// adherence chart.
	DailyAdherenceTarget = 3

	// AdherenceWindowDays is the size of the trailing adherence window,
	// ending today inclusive.
	AdherenceWindowDays = 7
)

// Display derives the clinician-facing status. A paid patient with no
// logged results shows as SIGNUP_COMPLETE, not in progress; exercise only
// starts counting once real-world evidence arrives.
func Display(status patients.Status, resultCount int) DisplayStatus {
	if status != patients.StatusPaid {
		return DisplayStatusPendingPayment
	}
	if resultCount > 0 {
		return DisplayStatusExerciseInProgress
	}
	return DisplayStatusSignupComplete
}

// Completion returns the whole-regimen completion percentage, clamped to
// 100. Every logged result counts, including repeat pushes of the same step.
func Completion(resultCount int) int {
	percentage := math.Min(100, float64(resultCount)*100/RequiredWorkoutTotal)
	return int(math.Round(percentage))
}

type StepCompletion struct {
	Step      catalog.Step
	Completed bool
}

// StepCompletions marks each regimen step complete iff at least one result
// exists with an exactly matching machine name and activity label. There is
// no fuzzy matching: a drifted activity string matches nothing.
func StepCompletions(regimen *catalog.Regimen, list []*results.WorkoutResult) []StepCompletion {
	performed := mapset.NewSet[string]()
	for _, result := range list {
		performed.Add(stepKey(result.MachineName, result.ActivityLabel))
	}

	completions := make([]StepCompletion, 0, len(regimen.Steps))
	for _, step := range regimen.Steps {
		completions = append(completions, StepCompletion{
			Step:      step,
			Completed: performed.Contains(stepKey(step.Machine, step.Activity)),
		})
	}
	return completions
}

func stepKey(machine, activity string) string {
	return machine + "\x00" + activity
}

type AdherenceDay struct {
	Date      time.Time
	Count     int
	MetTarget bool
}

// Adherence buckets the patient's results into a trailing window of
// calendar days (local time) ending on the day of now, inclusive. Days with
// no results are present with a zero count.
func Adherence(list []*results.WorkoutResult, now time.Time) []AdherenceDay {
	today := truncateToDay(now)
	start := today.AddDate(0, 0, -(AdherenceWindowDays - 1))

	counts := make(map[time.Time]int, AdherenceWindowDays)
	for _, result := range list {
		day := truncateToDay(result.CompletedAt)
		if day.Before(start) || day.After(today) {
			continue
		}
		counts[day]++
	}

	days := make([]AdherenceDay, 0, AdherenceWindowDays)
	for i := 0; i < AdherenceWindowDays; i++ {
		day := start.AddDate(0, 0, i)
		count := counts[day]
		days = append(days, AdherenceDay{
			Date:      day,
			Count:     count,
			MetTarget: count >= DailyAdherenceTarget,
		})
	}
	return days
}

func truncateToDay(t time.Time) time.Time {
	local := t.Local()
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, local.Location())
}
