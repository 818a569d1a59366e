package trends

import "github.com/sid-c23/cs6440-project/internal/models"

type normKey struct {
	Type models.EventType
	Unit models.Unit
}

// stdFactors maps an (event_type, unit) pair to the multiplier that converts
// the event's raw numerical value into its standardized metric contribution.
// Mixed-unit logging (sleep in minutes one day, hours the next) lands on the
// same scale. Adding a new type or unit is a one-line change here.
//
// Migraine and stress are absent on purpose: both aggregate by event count
// and average severity rather than through a standardized value.
var stdFactors = map[normKey]float64{
	{models.EventTypeSleep, models.UnitMinutes}:     1.0 / 60.0,
	{models.EventTypeSleep, models.UnitHours}:       1,
	{models.EventTypeMeal, models.UnitCount}:        1,
	{models.EventTypeExercise, models.UnitCount}:    1,
	{models.EventTypeMedication, models.UnitCount}:  1,
}

// StandardValue returns the unit-normalized contribution of e, or nil when
// the event carries no numerical value or its (type, unit) pair has no
// standardization. Nil contributions are excluded from weekly sums.
func StandardValue(e models.Event) *float64 {
	if e.NumericalValue == nil || e.NumericalUnit == nil {
		return nil
	}
	factor, ok := stdFactors[normKey{e.EventType, *e.NumericalUnit}]
	if !ok {
		return nil
	}
	v := float64(*e.NumericalValue) * factor
	return &v
}
