package trends

import (
	"fmt"

	"github.com/sid-c23/cs6440-project/internal/models"
)

// relative change above which a metric is considered to have moved
// meaningfully between periods.
const significantChange = 0.10

// ActionItems splits the user's densified weekly series into a current period
// (the last WindowSize weeks) and the period immediately before it, compares
// per-day and per-week averages against the configured thresholds, and emits
// prioritized recommendations with human-readable justifications.
func ActionItems(events []models.Event, p ActionParams) models.ActionItemsResponse {
	weeks, _ := Densify(Aggregate(events, p.UseLocaltime), "", "")
	if len(weeks) == 0 {
		return models.ActionItemsResponse{
			ActionItems: []models.ActionItem{},
			Summary:     models.ActionSummary{Message: NoDataMessage},
		}
	}

	curStart := len(weeks) - p.WindowSize
	if curStart < 0 {
		curStart = 0
	}
	current := periodStats(weeks[curStart:])

	prevStart := curStart - p.WindowSize
	if prevStart < 0 {
		prevStart = 0
	}
	var previous *models.PeriodStats
	if curStart > 0 {
		stats := periodStats(weeks[prevStart:curStart])
		previous = &stats
	}

	items := []models.ActionItem{}
	items = appendSleepAction(items, current, previous, p)
	items = appendMealsAction(items, current, p)
	items = appendStressAction(items, current, previous, p)
	items = appendExerciseAction(items, current, p)

	return models.ActionItemsResponse{
		ActionItems: items,
		Summary: models.ActionSummary{
			WeeksAnalyzed:  len(weeks),
			CurrentPeriod:  &current,
			PreviousPeriod: previous,
		},
	}
}

// periodStats reduces a run of weeks to per-day averages for summed metrics
// and simple averages over non-nil weeks for rated metrics.
func periodStats(weeks []models.WeeklySummary) models.PeriodStats {
	days := float64(7 * len(weeks))

	stats := models.PeriodStats{Weeks: len(weeks)}
	var stressSum float64
	stressN := 0
	for _, w := range weeks {
		stats.SleepHoursPerDay += w.SleepHours
		stats.MealsPerDay += w.MealsCount
		stats.ExerciseDays += w.ExerciseDays
		stats.MigraineEvents += w.MigraineEvents
		if w.StressAvgSeverity != nil {
			stressSum += *w.StressAvgSeverity
			stressN++
		}
	}
	stats.SleepHoursPerDay /= days
	stats.MealsPerDay /= days
	if stressN > 0 {
		avg := stressSum / float64(stressN)
		stats.StressAvgSeverity = &avg
	}
	return stats
}

func appendSleepAction(items []models.ActionItem, cur models.PeriodStats, prev *models.PeriodStats, p ActionParams) []models.ActionItem {
	if cur.SleepHoursPerDay >= p.MinSleepHours {
		return items
	}

	priority := models.PriorityMedium
	msg := fmt.Sprintf("Average sleep is %.1f hours/day over the last %d week(s), below the %.1f hours/day target.",
		cur.SleepHoursPerDay, cur.Weeks, p.MinSleepHours)

	if prev != nil && prev.SleepHoursPerDay > 0 {
		change := (cur.SleepHoursPerDay - prev.SleepHoursPerDay) / prev.SleepHoursPerDay
		if change < -significantChange {
			priority = models.PriorityHigh
		}
		msg += fmt.Sprintf(" That is a %.1f%% change versus the previous period.", change*100)
	}

	return append(items, models.ActionItem{Type: models.ActionSleep, Priority: priority, Message: msg})
}

func appendMealsAction(items []models.ActionItem, cur models.PeriodStats, p ActionParams) []models.ActionItem {
	if cur.MealsPerDay >= p.MinMealsPerDay {
		return items
	}
	msg := fmt.Sprintf("Averaging %.1f meals/day over the last %d week(s), below the %.1f meals/day target.",
		cur.MealsPerDay, cur.Weeks, p.MinMealsPerDay)
	return append(items, models.ActionItem{Type: models.ActionMeals, Priority: models.PriorityMedium, Message: msg})
}

func appendStressAction(items []models.ActionItem, cur models.PeriodStats, prev *models.PeriodStats, p ActionParams) []models.ActionItem {
	aboveThreshold := cur.StressAvgSeverity != nil && *cur.StressAvgSeverity >= p.StressSeverityThreshold

	rising := false
	var change float64
	if cur.StressAvgSeverity != nil && prev != nil && prev.StressAvgSeverity != nil && *prev.StressAvgSeverity > 0 {
		change = (*cur.StressAvgSeverity - *prev.StressAvgSeverity) / *prev.StressAvgSeverity
		rising = change > significantChange
	}

	if !aboveThreshold && !rising {
		return items
	}

	// High priority only when stress is both elevated and climbing.
	priority := models.PriorityMedium
	if aboveThreshold && rising {
		priority = models.PriorityHigh
	}

	msg := fmt.Sprintf("Average stress severity is %.1f over the last %d week(s)", *cur.StressAvgSeverity, cur.Weeks)
	if aboveThreshold {
		msg += fmt.Sprintf(", at or above the %.1f threshold", p.StressSeverityThreshold)
	}
	if rising {
		msg += fmt.Sprintf(", up %.1f%% versus the previous period", change*100)
	}
	msg += "."

	return append(items, models.ActionItem{Type: models.ActionStress, Priority: priority, Message: msg})
}

func appendExerciseAction(items []models.ActionItem, cur models.PeriodStats, p ActionParams) []models.ActionItem {
	target := float64(p.MinExerciseDays * cur.Weeks)
	if cur.ExerciseDays >= target {
		return items
	}
	msg := fmt.Sprintf("Logged %.0f exercise day(s) over the last %d week(s); the target is %.0f.",
		cur.ExerciseDays, cur.Weeks, target)
	return append(items, models.ActionItem{Type: models.ActionExercise, Priority: models.PriorityMedium, Message: msg})
}
