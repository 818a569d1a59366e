package trends

import (
	"sort"

	"github.com/sid-c23/cs6440-project/internal/models"
)

// weekAccum accumulates one week's events before conversion to a summary row.
type weekAccum struct {
	migraineCount  int
	migraineSevSum int
	migraineSevN   int

	stressCount  int
	stressSevSum int
	stressSevN   int

	sleepHours      float64
	mealsCount      float64
	exerciseDays    float64
	medicationCount float64
}

// Aggregate groups a user's events by week bucket and produces one sparse
// summary row per observed week, ascending by week key. Events without an
// event timestamp are silently excluded. Derivative fields are left unset;
// see Derive.
func Aggregate(events []models.Event, useLocaltime bool) []models.WeeklySummary {
	buckets := make(map[string]*weekAccum)

	for _, e := range events {
		if e.EventTimestamp == nil {
			continue
		}
		key := WeekKey(*e.EventTimestamp, useLocaltime)
		acc := buckets[key]
		if acc == nil {
			acc = &weekAccum{}
			buckets[key] = acc
		}

		switch e.EventType {
		case models.EventTypeMigraine:
			acc.migraineCount++
			if e.Severity != nil {
				acc.migraineSevSum += *e.Severity
				acc.migraineSevN++
			}
		case models.EventTypeStress:
			acc.stressCount++
			if e.Severity != nil {
				acc.stressSevSum += *e.Severity
				acc.stressSevN++
			}
		default:
			if std := StandardValue(e); std != nil {
				switch e.EventType {
				case models.EventTypeSleep:
					acc.sleepHours += *std
				case models.EventTypeMeal:
					acc.mealsCount += *std
				case models.EventTypeExercise:
					acc.exerciseDays += *std
				case models.EventTypeMedication:
					acc.medicationCount += *std
				}
			}
		}
	}

	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rows := make([]models.WeeklySummary, 0, len(keys))
	for _, k := range keys {
		acc := buckets[k]
		row := models.WeeklySummary{
			Week:            k,
			MigraineEvents:  acc.migraineCount,
			StressEvents:    acc.stressCount,
			SleepHours:      acc.sleepHours,
			MealsCount:      acc.mealsCount,
			ExerciseDays:    acc.exerciseDays,
			MedicationCount: acc.medicationCount,
		}
		if acc.migraineSevN > 0 {
			avg := float64(acc.migraineSevSum) / float64(acc.migraineSevN)
			row.MigraineAvgSeverity = &avg
		}
		if acc.stressSevN > 0 {
			avg := float64(acc.stressSevSum) / float64(acc.stressSevN)
			row.StressAvgSeverity = &avg
		}
		rows = append(rows, row)
	}

	return rows
}
