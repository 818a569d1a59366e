package models

// WeeklySummary is one densified calendar week of normalized metrics plus its
// lag, percent-change, and moving-average derivatives. Summed and counted
// metrics default to zero for weeks without data; averaged metrics and all
// derivatives use nil to mean "no value", which serializes as JSON null.
// WeeklySummary rows are recomputed per request and never persisted.
type WeeklySummary struct {
	Week string `json:"week"` // Monday of the ISO week, YYYY-MM-DD

	MigraineEvents      int      `json:"migraine_events"`
	MigraineAvgSeverity *float64 `json:"migraine_avg_severity"`
	StressEvents        int      `json:"stress_events"`
	StressAvgSeverity   *float64 `json:"stress_avg_severity"`
	SleepHours          float64  `json:"sleep_hours"`
	MealsCount          float64  `json:"meals_count"`
	ExerciseDays        float64  `json:"exercise_days"`
	MedicationCount     float64  `json:"medication_count"`

	MigraineEventsPrev      *float64 `json:"migraine_events_prev"`
	MigraineAvgSeverityPrev *float64 `json:"migraine_avg_severity_prev"`
	StressEventsPrev        *float64 `json:"stress_events_prev"`
	StressAvgSeverityPrev   *float64 `json:"stress_avg_severity_prev"`
	SleepHoursPrev          *float64 `json:"sleep_hours_prev"`
	MealsCountPrev          *float64 `json:"meals_count_prev"`
	ExerciseDaysPrev        *float64 `json:"exercise_days_prev"`
	MedicationCountPrev     *float64 `json:"medication_count_prev"`

	PctMigraineEventsChange      *float64 `json:"pct_migraine_events_change"`
	PctMigraineAvgSeverityChange *float64 `json:"pct_migraine_avg_severity_change"`
	PctStressEventsChange        *float64 `json:"pct_stress_events_change"`
	PctStressAvgSeverityChange   *float64 `json:"pct_stress_avg_severity_change"`
	PctSleepHoursChange          *float64 `json:"pct_sleep_hours_change"`
	PctMealsCountChange          *float64 `json:"pct_meals_count_change"`
	PctExerciseDaysChange        *float64 `json:"pct_exercise_days_change"`
	PctMedicationCountChange     *float64 `json:"pct_medication_count_change"`

	MovingAvgMigraineEvents      *float64 `json:"moving_average_migraine_events"`
	MovingAvgMigraineAvgSeverity *float64 `json:"moving_average_migraine_avg_severity"`
	MovingAvgStressEvents        *float64 `json:"moving_average_stress_events"`
	MovingAvgStressAvgSeverity   *float64 `json:"moving_average_stress_avg_severity"`
	MovingAvgSleepHours          *float64 `json:"moving_average_sleep_hours"`
	MovingAvgMealsCount          *float64 `json:"moving_average_meals_count"`
	MovingAvgExerciseDays        *float64 `json:"moving_average_exercise_days"`
	MovingAvgMedicationCount     *float64 `json:"moving_average_medication_count"`
}

// MigraineWeek is a sparse per-week migraine rollup: only weeks with at least
// one migraine event appear, with no densification or derivatives.
type MigraineWeek struct {
	Week        string   `json:"week"`
	EventCount  int      `json:"event_count"`
	AvgSeverity *float64 `json:"avg_severity"`
}

// Action item categories.
const (
	ActionSleep    = "sleep"
	ActionMeals    = "meals"
	ActionStress   = "stress"
	ActionExercise = "exercise"
)

// Action item priorities.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
)

// ActionItem is a single rule-engine recommendation with a human-readable
// justification built from the computed period numbers.
type ActionItem struct {
	Type     string `json:"type"`
	Priority string `json:"priority"`
	Message  string `json:"message"`
}

// PeriodStats summarizes one comparison period for the rule engine.
type PeriodStats struct {
	Weeks             int      `json:"weeks"`
	SleepHoursPerDay  float64  `json:"sleep_hours_per_day"`
	MealsPerDay       float64  `json:"meals_per_day"`
	ExerciseDays      float64  `json:"exercise_days"`
	MigraineEvents    int      `json:"migraine_events"`
	StressAvgSeverity *float64 `json:"stress_avg_severity"`
}

// ActionSummary accompanies the action-item list. For users with no events it
// carries only the explanatory message.
type ActionSummary struct {
	Message        string       `json:"message,omitempty"`
	WeeksAnalyzed  int          `json:"weeks_analyzed,omitempty"`
	CurrentPeriod  *PeriodStats `json:"current_period,omitempty"`
	PreviousPeriod *PeriodStats `json:"previous_period,omitempty"`
}

// ActionItemsResponse is the rule-engine result for one user.
type ActionItemsResponse struct {
	ActionItems []ActionItem  `json:"action_items"`
	Summary     ActionSummary `json:"summary"`
}
