package trends

import "github.com/sid-c23/cs6440-project/internal/models"

// metricColumn describes one metric of the weekly series so that all metrics
// share a single derivative code path. averaged marks nil-defaulted average
// metrics, which get the pre-substitution percent-change guard.
type metricColumn struct {
	name     string
	averaged bool
	value    func(*models.WeeklySummary) *float64
	setPrev  func(*models.WeeklySummary, *float64)
	setPct   func(*models.WeeklySummary, *float64)
	setMA    func(*models.WeeklySummary, *float64)
}

func fp(v float64) *float64 { return &v }

var seriesColumns = []metricColumn{
	{
		name:    "migraine_events",
		value:   func(w *models.WeeklySummary) *float64 { return fp(float64(w.MigraineEvents)) },
		setPrev: func(w *models.WeeklySummary, v *float64) { w.MigraineEventsPrev = v },
		setPct:  func(w *models.WeeklySummary, v *float64) { w.PctMigraineEventsChange = v },
		setMA:   func(w *models.WeeklySummary, v *float64) { w.MovingAvgMigraineEvents = v },
	},
	{
		name:     "migraine_avg_severity",
		averaged: true,
		value:    func(w *models.WeeklySummary) *float64 { return w.MigraineAvgSeverity },
		setPrev:  func(w *models.WeeklySummary, v *float64) { w.MigraineAvgSeverityPrev = v },
		setPct:   func(w *models.WeeklySummary, v *float64) { w.PctMigraineAvgSeverityChange = v },
		setMA:    func(w *models.WeeklySummary, v *float64) { w.MovingAvgMigraineAvgSeverity = v },
	},
	{
		name:    "stress_events",
		value:   func(w *models.WeeklySummary) *float64 { return fp(float64(w.StressEvents)) },
		setPrev: func(w *models.WeeklySummary, v *float64) { w.StressEventsPrev = v },
		setPct:  func(w *models.WeeklySummary, v *float64) { w.PctStressEventsChange = v },
		setMA:   func(w *models.WeeklySummary, v *float64) { w.MovingAvgStressEvents = v },
	},
	{
		name:     "stress_avg_severity",
		averaged: true,
		value:    func(w *models.WeeklySummary) *float64 { return w.StressAvgSeverity },
		setPrev:  func(w *models.WeeklySummary, v *float64) { w.StressAvgSeverityPrev = v },
		setPct:   func(w *models.WeeklySummary, v *float64) { w.PctStressAvgSeverityChange = v },
		setMA:    func(w *models.WeeklySummary, v *float64) { w.MovingAvgStressAvgSeverity = v },
	},
	{
		name:    "sleep_hours",
		value:   func(w *models.WeeklySummary) *float64 { return fp(w.SleepHours) },
		setPrev: func(w *models.WeeklySummary, v *float64) { w.SleepHoursPrev = v },
		setPct:  func(w *models.WeeklySummary, v *float64) { w.PctSleepHoursChange = v },
		setMA:   func(w *models.WeeklySummary, v *float64) { w.MovingAvgSleepHours = v },
	},
	{
		name:    "meals_count",
		value:   func(w *models.WeeklySummary) *float64 { return fp(w.MealsCount) },
		setPrev: func(w *models.WeeklySummary, v *float64) { w.MealsCountPrev = v },
		setPct:  func(w *models.WeeklySummary, v *float64) { w.PctMealsCountChange = v },
		setMA:   func(w *models.WeeklySummary, v *float64) { w.MovingAvgMealsCount = v },
	},
	{
		name:    "exercise_days",
		value:   func(w *models.WeeklySummary) *float64 { return fp(w.ExerciseDays) },
		setPrev: func(w *models.WeeklySummary, v *float64) { w.ExerciseDaysPrev = v },
		setPct:  func(w *models.WeeklySummary, v *float64) { w.PctExerciseDaysChange = v },
		setMA:   func(w *models.WeeklySummary, v *float64) { w.MovingAvgExerciseDays = v },
	},
	{
		name:    "medication_count",
		value:   func(w *models.WeeklySummary) *float64 { return fp(w.MedicationCount) },
		setPrev: func(w *models.WeeklySummary, v *float64) { w.MedicationCountPrev = v },
		setPct:  func(w *models.WeeklySummary, v *float64) { w.PctMedicationCountChange = v },
		setMA:   func(w *models.WeeklySummary, v *float64) { w.MovingAvgMedicationCount = v },
	},
}

// Derive fills the lag, percent-change, and moving-average fields of a
// densified weekly series in place. windowSize is the trailing window k; the
// window at position i covers [max(0, i-k+1), i].
func Derive(weeks []models.WeeklySummary, windowSize int) {
	if windowSize < 1 {
		windowSize = 1
	}

	for _, col := range seriesColumns {
		values := make([]*float64, len(weeks))
		for i := range weeks {
			values[i] = col.value(&weeks[i])
		}

		for i := range weeks {
			if i > 0 {
				col.setPrev(&weeks[i], clonePtr(values[i-1]))
			}
			var prev *float64
			if i > 0 {
				prev = values[i-1]
			}
			col.setPct(&weeks[i], pctChange(values[i], prev))
			col.setMA(&weeks[i], windowMean(values, i, windowSize))
		}
	}
}

// pctChange computes (curr - prev) / prev, returning nil whenever the
// original previous value is nil or exactly zero. A nil current value is
// treated as zero for the subtraction, but the guard always uses the
// pre-substitution previous value: a week following "no data" never produces
// a spurious percent change.
func pctChange(curr, prev *float64) *float64 {
	if prev == nil || *prev == 0 {
		return nil
	}
	c := 0.0
	if curr != nil {
		c = *curr
	}
	v := (c - *prev) / *prev
	return &v
}

// windowMean averages the non-nil values in [max(0, i-k+1), i]. Nil entries
// are excluded from both numerator and denominator; an all-nil window yields
// nil.
func windowMean(values []*float64, i, k int) *float64 {
	lo := i - k + 1
	if lo < 0 {
		lo = 0
	}

	var sum float64
	n := 0
	for j := lo; j <= i; j++ {
		if values[j] != nil {
			sum += *values[j]
			n++
		}
	}
	if n == 0 {
		return nil
	}
	mean := sum / float64(n)
	return &mean
}

func clonePtr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
