package trends

import (
	"sort"

	"github.com/sid-c23/cs6440-project/internal/models"
)

// MigraineWeeks produces the lightweight per-week migraine rollup: event
// count and average severity for each week with at least one migraine event,
// ascending by week. No densification and no derivatives.
func MigraineWeeks(events []models.Event, useLocaltime bool) []models.MigraineWeek {
	type accum struct {
		count  int
		sevSum int
		sevN   int
	}
	buckets := make(map[string]*accum)

	for _, e := range events {
		if e.EventType != models.EventTypeMigraine || e.EventTimestamp == nil {
			continue
		}
		key := WeekKey(*e.EventTimestamp, useLocaltime)
		acc := buckets[key]
		if acc == nil {
			acc = &accum{}
			buckets[key] = acc
		}
		acc.count++
		if e.Severity != nil {
			acc.sevSum += *e.Severity
			acc.sevN++
		}
	}

	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	weeks := make([]models.MigraineWeek, 0, len(keys))
	for _, k := range keys {
		acc := buckets[k]
		row := models.MigraineWeek{Week: k, EventCount: acc.count}
		if acc.sevN > 0 {
			avg := float64(acc.sevSum) / float64(acc.sevN)
			row.AvgSeverity = &avg
		}
		weeks = append(weeks, row)
	}
	return weeks
}
