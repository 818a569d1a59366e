// Package trends converts a sparse, irregularly timed health-event log into a
// continuous weekly calendar with unit-normalized metrics, lag and
// percent-change derivatives, rolling moving averages, and threshold-based
// action items.
//
// Every function here is a pure computation over events already fetched from
// the store: no I/O, no shared mutable state, no locking. Concurrent calls
// for the same or different users never interfere.
//
// Stress policy: stress is aggregated as a rated event (event count plus
// average severity), not as a summed duration. The normalizer therefore has
// no stress entries and stress duration values are ignored.
package trends

import (
	"fmt"
	"time"

	"github.com/sid-c23/cs6440-project/internal/models"
)

// Parameter defaults and bounds for the weekly series and the rule engine.
const (
	DefaultSeriesWindow = 4
	MinSeriesWindow     = 1
	MaxSeriesWindow     = 52

	DefaultActionWindow = 2
	MinActionWindow     = 1
	MaxActionWindow     = 26

	DefaultMinSleepHours           = 7.0
	DefaultMinMealsPerDay          = 3.0
	DefaultStressSeverityThreshold = 3.0
	DefaultMinExerciseDays         = 3
)

// NoDataMessage is returned in the action summary for users with no events.
const NoDataMessage = "No data found for user."

// SeriesParams configures the weekly rolling series query.
type SeriesParams struct {
	// WindowSize is the trailing moving-average window in weeks.
	WindowSize int
	// UseLocaltime buckets events by local calendar date instead of UTC.
	UseLocaltime bool
	// StartDate and EndDate are optional YYYY-MM-DD range bounds; each is
	// aligned to its own week's Monday before use.
	StartDate string
	EndDate   string
}

// DefaultSeriesParams returns SeriesParams with documented defaults.
func DefaultSeriesParams() SeriesParams {
	return SeriesParams{WindowSize: DefaultSeriesWindow}
}

// Validate rejects out-of-bounds or malformed parameters. Callers are
// expected to run this at the boundary so the core never sees bad input.
func (p SeriesParams) Validate() error {
	if p.WindowSize < MinSeriesWindow || p.WindowSize > MaxSeriesWindow {
		return fmt.Errorf("window_size must be between %d and %d", MinSeriesWindow, MaxSeriesWindow)
	}
	for _, d := range []string{p.StartDate, p.EndDate} {
		if d == "" {
			continue
		}
		if _, err := time.Parse(dateLayout, d); err != nil {
			return fmt.Errorf("date %q is not in YYYY-MM-DD form", d)
		}
	}
	return nil
}

// ActionParams configures the action-item rule engine.
type ActionParams struct {
	// WindowSize is the number of weeks in each comparison period.
	WindowSize   int
	UseLocaltime bool

	MinSleepHours           float64
	MinMealsPerDay          float64
	StressSeverityThreshold float64
	MinExerciseDays         int
}

// DefaultActionParams returns ActionParams with documented defaults.
func DefaultActionParams() ActionParams {
	return ActionParams{
		WindowSize:              DefaultActionWindow,
		MinSleepHours:           DefaultMinSleepHours,
		MinMealsPerDay:          DefaultMinMealsPerDay,
		StressSeverityThreshold: DefaultStressSeverityThreshold,
		MinExerciseDays:         DefaultMinExerciseDays,
	}
}

// Validate rejects out-of-bounds parameters.
func (p ActionParams) Validate() error {
	if p.WindowSize < MinActionWindow || p.WindowSize > MaxActionWindow {
		return fmt.Errorf("window_size must be between %d and %d", MinActionWindow, MaxActionWindow)
	}
	if p.MinSleepHours < 0 || p.MinMealsPerDay < 0 || p.StressSeverityThreshold < 0 || p.MinExerciseDays < 0 {
		return fmt.Errorf("thresholds must not be negative")
	}
	return nil
}

// WeeklySeries runs the full pipeline: bucket, normalize, aggregate, densify,
// derive. It returns an empty slice when the user has no aggregatable events.
func WeeklySeries(events []models.Event, p SeriesParams) ([]models.WeeklySummary, error) {
	sparse := Aggregate(events, p.UseLocaltime)

	dense, err := Densify(sparse, p.StartDate, p.EndDate)
	if err != nil {
		return nil, err
	}

	Derive(dense, p.WindowSize)
	return dense, nil
}
