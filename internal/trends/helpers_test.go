package trends

import (
	"time"

	"github.com/sid-c23/cs6440-project/internal/models"
)

// Test fixture builders shared across the package tests.

func tsOn(date string, hour int) *time.Time {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		panic(err)
	}
	t := d.Add(time.Duration(hour) * time.Hour)
	return &t
}

func intPtr(v int) *int               { return &v }
func unitPtr(u models.Unit) *models.Unit { return &u }

func valueEvent(typ models.EventType, date string, value int, unit models.Unit) models.Event {
	return models.Event{
		EventType:      typ,
		EventTimestamp: tsOn(date, 10),
		NumericalValue: intPtr(value),
		NumericalUnit:  unitPtr(unit),
	}
}

func ratedEvent(typ models.EventType, date string, severity int) models.Event {
	return models.Event{
		EventType:      typ,
		EventTimestamp: tsOn(date, 10),
		Severity:       intPtr(severity),
	}
}
