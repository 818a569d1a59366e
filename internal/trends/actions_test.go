package trends

import (
	"testing"

	"github.com/sid-c23/cs6440-project/internal/models"
)

// sleepWeek logs one sleep event carrying a whole week's hours.
func sleepWeek(date string, hours int) models.Event {
	return valueEvent(models.EventTypeSleep, date, hours, models.UnitHours)
}

func findAction(items []models.ActionItem, typ string) *models.ActionItem {
	for i := range items {
		if items[i].Type == typ {
			return &items[i]
		}
	}
	return nil
}

func TestActionItemsNoEvents(t *testing.T) {
	resp := ActionItems(nil, DefaultActionParams())

	if resp.ActionItems == nil || len(resp.ActionItems) != 0 {
		t.Errorf("action_items = %v, want empty non-nil list", resp.ActionItems)
	}
	if resp.Summary.Message != NoDataMessage {
		t.Errorf("summary message = %q, want %q", resp.Summary.Message, NoDataMessage)
	}
	if resp.Summary.CurrentPeriod != nil {
		t.Error("no-data summary must not carry period stats")
	}
}

func TestActionItemsLowSleep(t *testing.T) {
	// Two weeks at 5.5 h/day against the default 7.0 target, no prior history.
	events := []models.Event{
		sleepWeek("2025-09-15", 38), // 38/7 ≈ 5.43
		sleepWeek("2025-09-22", 39), // total 77h over 14 days = 5.5/day
	}

	resp := ActionItems(events, DefaultActionParams())
	sleep := findAction(resp.ActionItems, models.ActionSleep)
	if sleep == nil {
		t.Fatalf("no sleep action in %v", resp.ActionItems)
	}
	if sleep.Priority != models.PriorityMedium {
		t.Errorf("priority = %q, want medium without a previous period", sleep.Priority)
	}
	if resp.Summary.CurrentPeriod.SleepHoursPerDay != 5.5 {
		t.Errorf("sleep_hours_per_day = %v, want 5.5", resp.Summary.CurrentPeriod.SleepHoursPerDay)
	}
}

func TestActionItemsSleepDropEscalates(t *testing.T) {
	// Previous period 8 h/day, current 5.5 h/day: below target and down more
	// than 10%, so the sleep action is high priority.
	events := []models.Event{
		sleepWeek("2025-09-01", 56),
		sleepWeek("2025-09-08", 56),
		sleepWeek("2025-09-15", 38),
		sleepWeek("2025-09-22", 39),
	}

	resp := ActionItems(events, DefaultActionParams())
	sleep := findAction(resp.ActionItems, models.ActionSleep)
	if sleep == nil {
		t.Fatal("no sleep action")
	}
	if sleep.Priority != models.PriorityHigh {
		t.Errorf("priority = %q, want high for a >10%% drop", sleep.Priority)
	}
	if resp.Summary.PreviousPeriod == nil || resp.Summary.PreviousPeriod.SleepHoursPerDay != 8 {
		t.Errorf("previous period = %+v, want 8 h/day", resp.Summary.PreviousPeriod)
	}
}

func TestActionItemsSleepSmallDropStaysMedium(t *testing.T) {
	// Down less than 10% but still below target: medium.
	events := []models.Event{
		sleepWeek("2025-09-01", 40),
		sleepWeek("2025-09-08", 40),
		sleepWeek("2025-09-15", 38),
		sleepWeek("2025-09-22", 39),
	}

	resp := ActionItems(events, DefaultActionParams())
	sleep := findAction(resp.ActionItems, models.ActionSleep)
	if sleep == nil {
		t.Fatal("no sleep action")
	}
	if sleep.Priority != models.PriorityMedium {
		t.Errorf("priority = %q, want medium for a <10%% drop", sleep.Priority)
	}
}

func TestActionItemsAdequateSleepNoAction(t *testing.T) {
	events := []models.Event{
		sleepWeek("2025-09-15", 56),
		sleepWeek("2025-09-22", 56),
	}
	resp := ActionItems(events, DefaultActionParams())
	if a := findAction(resp.ActionItems, models.ActionSleep); a != nil {
		t.Errorf("unexpected sleep action: %+v", a)
	}
}

func TestActionItemsLowMeals(t *testing.T) {
	events := []models.Event{
		valueEvent(models.EventTypeMeal, "2025-09-15", 10, models.UnitCount),
		valueEvent(models.EventTypeMeal, "2025-09-22", 11, models.UnitCount), // 21/14 = 1.5/day
	}
	resp := ActionItems(events, DefaultActionParams())
	meals := findAction(resp.ActionItems, models.ActionMeals)
	if meals == nil {
		t.Fatal("no meals action")
	}
	if meals.Priority != models.PriorityMedium {
		t.Errorf("priority = %q, want medium", meals.Priority)
	}
}

func TestActionItemsStressPriorities(t *testing.T) {
	tests := []struct {
		name         string
		prevSeverity int
		curSeverity  int
		wantAction   bool
		wantPriority string
	}{
		{"high severity and rising", 3, 5, true, models.PriorityHigh},
		{"high severity but flat", 4, 4, true, models.PriorityMedium},
		{"rising but below threshold", 1, 2, true, models.PriorityMedium},
		{"low and flat", 2, 2, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := []models.Event{
				ratedEvent(models.EventTypeStress, "2025-09-01", tt.prevSeverity),
				ratedEvent(models.EventTypeStress, "2025-09-08", tt.prevSeverity),
				ratedEvent(models.EventTypeStress, "2025-09-15", tt.curSeverity),
				ratedEvent(models.EventTypeStress, "2025-09-22", tt.curSeverity),
				// Keep the other rules quiet.
				sleepWeek("2025-09-15", 56),
				sleepWeek("2025-09-22", 56),
			}
			p := DefaultActionParams()
			p.MinMealsPerDay = 0
			p.MinExerciseDays = 0

			resp := ActionItems(events, p)
			stress := findAction(resp.ActionItems, models.ActionStress)
			if !tt.wantAction {
				if stress != nil {
					t.Errorf("unexpected stress action: %+v", stress)
				}
				return
			}
			if stress == nil {
				t.Fatal("no stress action")
			}
			if stress.Priority != tt.wantPriority {
				t.Errorf("priority = %q, want %q", stress.Priority, tt.wantPriority)
			}
		})
	}
}

func TestActionItemsStressRisesFromThreshold(t *testing.T) {
	// "Rising but below threshold" on its own: 2 -> 3 is +50% but below the
	// 3.5 threshold override, so medium.
	events := []models.Event{
		ratedEvent(models.EventTypeStress, "2025-09-01", 2),
		ratedEvent(models.EventTypeStress, "2025-09-08", 2),
		ratedEvent(models.EventTypeStress, "2025-09-15", 3),
		ratedEvent(models.EventTypeStress, "2025-09-22", 3),
	}
	p := DefaultActionParams()
	p.StressSeverityThreshold = 3.5
	p.MinSleepHours = 0
	p.MinMealsPerDay = 0
	p.MinExerciseDays = 0

	resp := ActionItems(events, p)
	stress := findAction(resp.ActionItems, models.ActionStress)
	if stress == nil {
		t.Fatal("no stress action")
	}
	if stress.Priority != models.PriorityMedium {
		t.Errorf("priority = %q, want medium when only one condition holds", stress.Priority)
	}
}

func TestActionItemsLowExercise(t *testing.T) {
	// 2 exercise days over 2 weeks against a target of 3 x 2 = 6.
	events := []models.Event{
		valueEvent(models.EventTypeExercise, "2025-09-16", 1, models.UnitCount),
		valueEvent(models.EventTypeExercise, "2025-09-23", 1, models.UnitCount),
	}
	p := DefaultActionParams()
	p.MinSleepHours = 0
	p.MinMealsPerDay = 0

	resp := ActionItems(events, p)
	exercise := findAction(resp.ActionItems, models.ActionExercise)
	if exercise == nil {
		t.Fatal("no exercise action")
	}
	if exercise.Priority != models.PriorityMedium {
		t.Errorf("priority = %q, want medium", exercise.Priority)
	}
}

func TestActionItemsShortHistory(t *testing.T) {
	// A single week of data with window_size 2: the current period is the one
	// observed week and there is no previous period.
	events := []models.Event{sleepWeek("2025-09-22", 35)}

	resp := ActionItems(events, DefaultActionParams())
	if resp.Summary.CurrentPeriod == nil || resp.Summary.CurrentPeriod.Weeks != 1 {
		t.Errorf("current period = %+v, want 1 week", resp.Summary.CurrentPeriod)
	}
	if resp.Summary.PreviousPeriod != nil {
		t.Errorf("previous period = %+v, want nil", resp.Summary.PreviousPeriod)
	}
}
