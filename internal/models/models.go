package models

import (
	"fmt"
	"time"
)

// EventType categorizes a health observation.
type EventType string

const (
	EventTypeMigraine   EventType = "migraine"
	EventTypeStress     EventType = "stress"
	EventTypeSleep      EventType = "sleep"
	EventTypeMeal       EventType = "meal"
	EventTypeExercise   EventType = "exercise"
	EventTypeMedication EventType = "medication"
)

// EventTypes lists every valid event type, in a stable order.
var EventTypes = []EventType{
	EventTypeMigraine,
	EventTypeStress,
	EventTypeSleep,
	EventTypeMeal,
	EventTypeExercise,
	EventTypeMedication,
}

// Valid reports whether t is a known event type.
func (t EventType) Valid() bool {
	for _, known := range EventTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Unit is the unit of an event's numerical_value.
type Unit string

const (
	UnitHours   Unit = "hours"
	UnitMinutes Unit = "minutes"
	UnitCount   Unit = "count"
)

// Valid reports whether u is a known unit.
func (u Unit) Valid() bool {
	return u == UnitHours || u == UnitMinutes || u == UnitCount
}

// Severity bounds for migraine/stress ratings.
const (
	SeverityMin = 1
	SeverityMax = 5
)

// severityLabels maps the textual severity scale to its ordinal value.
// Clients may send either form.
var severityLabels = map[string]int{
	"low":      1,
	"low_med":  2,
	"med":      3,
	"med_high": 4,
	"high":     5,
}

// SeverityOrdinal converts a severity value from decoded JSON (number or
// label) into its 1-5 ordinal.
func SeverityOrdinal(v any) (int, error) {
	switch s := v.(type) {
	case float64:
		n := int(s)
		if float64(n) != s || n < SeverityMin || n > SeverityMax {
			return 0, fmt.Errorf("severity must be an integer between %d and %d", SeverityMin, SeverityMax)
		}
		return n, nil
	case string:
		if n, ok := severityLabels[s]; ok {
			return n, nil
		}
		return 0, fmt.Errorf("unknown severity label %q", s)
	default:
		return 0, fmt.Errorf("severity must be a number or label")
	}
}

// Coding is a clinical coding-system reference attached to events.
type Coding struct {
	System string `json:"system"`
	Code   string `json:"code"`
}

// User owns zero or more events. Deleting a user cascades to its events.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"creation_timestamp"`
}

// Event is a single immutable health observation. EventTimestamp is when the
// observation occurred and may be absent; events without it are excluded from
// weekly aggregation but still appear in raw listings. An event with a
// non-nil NumericalValue always carries a non-nil NumericalUnit.
type Event struct {
	ID             string     `json:"id"`
	UserID         string     `json:"user_id"`
	EventType      EventType  `json:"event_type"`
	EventTimestamp *time.Time `json:"event_timestamp"`
	Severity       *int       `json:"severity,omitempty"`
	NumericalValue *int       `json:"numerical_value,omitempty"`
	NumericalUnit  *Unit      `json:"numerical_unit,omitempty"`
	Description    *string    `json:"description,omitempty"`
	System         string     `json:"system"`
	Code           string     `json:"code"`
	CreatedAt      time.Time  `json:"creation_timestamp"`
	UpdatedAt      time.Time  `json:"update_timestamp"`
}

// CreateUserRequest represents the request to create a user
type CreateUserRequest struct {
	Name string `json:"name" binding:"required"`
}

// RawCreateEventRequest accepts loosely-typed JSON for manual parsing and
// aggregated validation in the handler. Severity may arrive as a number or a
// textual label, so it is decoded as any.
type RawCreateEventRequest struct {
	EventType      string  `json:"event_type"`
	EventTimestamp *string `json:"event_timestamp"`
	Severity       any     `json:"severity"`
	NumericalValue *int    `json:"numerical_value"`
	NumericalUnit  *string `json:"numerical_unit"`
	Description    *string `json:"description"`
	System         *string `json:"system"`
	Code           *string `json:"code"`
}

// CreateEventRequest is the validated form of RawCreateEventRequest.
type CreateEventRequest struct {
	EventType      EventType
	EventTimestamp *time.Time
	Severity       *int
	NumericalValue *int
	NumericalUnit  *Unit
	Description    *string
	System         *string
	Code           *string
}

// MaxDescriptionLen bounds the free-text description column.
const MaxDescriptionLen = 200
