package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sid-c23/cs6440-project/internal/models"
	"github.com/sid-c23/cs6440-project/internal/repository"
)

func testCoding() map[string]models.Coding {
	return map[string]models.Coding{
		"migraine": {System: "http://snomed.info/sct", Code: "37796009"},
		"sleep":    {System: "http://loinc.org", Code: "93832-4"},
	}
}

func seedUser(t *testing.T, users *mockUserRepository) string {
	t.Helper()
	u, err := users.Create(context.Background(), &models.User{Name: "test"})
	if err != nil {
		t.Fatal(err)
	}
	return u.ID
}

func TestCreateEventDefaultsCoding(t *testing.T) {
	users := newMockUserRepository()
	events := newMockEventRepository()
	svc := NewEventService(events, users, testCoding())
	userID := seedUser(t, users)

	ts := time.Date(2025, 10, 1, 8, 0, 0, 0, time.UTC)
	sev := 4
	created, err := svc.CreateEvent(context.Background(), userID, &models.CreateEventRequest{
		EventType:      models.EventTypeMigraine,
		EventTimestamp: &ts,
		Severity:       &sev,
	})
	if err != nil {
		t.Fatal(err)
	}

	if created.System != "http://snomed.info/sct" || created.Code != "37796009" {
		t.Errorf("coding = %q/%q, want configured migraine defaults", created.System, created.Code)
	}
	if created.ID == "" {
		t.Error("event was not assigned an ID")
	}
}

func TestCreateEventKeepsExplicitCoding(t *testing.T) {
	users := newMockUserRepository()
	events := newMockEventRepository()
	svc := NewEventService(events, users, testCoding())
	userID := seedUser(t, users)

	system := "http://example.org/custom"
	code := "X-1"
	created, err := svc.CreateEvent(context.Background(), userID, &models.CreateEventRequest{
		EventType: models.EventTypeMigraine,
		System:    &system,
		Code:      &code,
	})
	if err != nil {
		t.Fatal(err)
	}
	if created.System != system || created.Code != code {
		t.Errorf("coding = %q/%q, want caller-supplied values", created.System, created.Code)
	}
}

func TestCreateEventUnknownType_NoCodingConfigured(t *testing.T) {
	users := newMockUserRepository()
	events := newMockEventRepository()
	svc := NewEventService(events, users, testCoding())
	userID := seedUser(t, users)

	created, err := svc.CreateEvent(context.Background(), userID, &models.CreateEventRequest{
		EventType: models.EventTypeMeal,
	})
	if err != nil {
		t.Fatal(err)
	}
	if created.System != "" || created.Code != "" {
		t.Errorf("coding = %q/%q, want empty when no default configured", created.System, created.Code)
	}
}

func TestCreateEventUnknownUser(t *testing.T) {
	users := newMockUserRepository()
	events := newMockEventRepository()
	svc := NewEventService(events, users, nil)

	_, err := svc.CreateEvent(context.Background(), "missing", &models.CreateEventRequest{
		EventType: models.EventTypeSleep,
	})
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
	if events.createCalls != 0 {
		t.Error("event was created for a missing user")
	}
}

func TestGetUserEventsPaginationDefaults(t *testing.T) {
	users := newMockUserRepository()
	events := newMockEventRepository()
	svc := NewEventService(events, users, nil)
	userID := seedUser(t, users)

	tests := []struct {
		name       string
		limit      int
		offset     int
		wantLimit  int
		wantOffset int
	}{
		{"defaults applied", 0, -3, 50, 0},
		{"limit capped", 500, 10, 50, 10},
		{"explicit values kept", 25, 5, 25, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.GetUserEvents(context.Background(), userID, nil, tt.limit, tt.offset); err != nil {
				t.Fatal(err)
			}
			if events.lastLimit != tt.wantLimit {
				t.Errorf("limit = %d, want %d", events.lastLimit, tt.wantLimit)
			}
			if events.lastOffset != tt.wantOffset {
				t.Errorf("offset = %d, want %d", events.lastOffset, tt.wantOffset)
			}
		})
	}
}

func TestGetMigrainesAndTriggersFilters(t *testing.T) {
	users := newMockUserRepository()
	events := newMockEventRepository()
	svc := NewEventService(events, users, nil)
	userID := seedUser(t, users)

	for _, et := range []models.EventType{models.EventTypeMigraine, models.EventTypeSleep, models.EventTypeStress} {
		if _, err := events.Create(context.Background(), &models.Event{UserID: userID, EventType: et}); err != nil {
			t.Fatal(err)
		}
	}

	migraines, err := svc.GetMigraines(context.Background(), userID, 10, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(migraines) != 1 || migraines[0].EventType != models.EventTypeMigraine {
		t.Errorf("migraines = %+v, want single migraine event", migraines)
	}

	triggers, err := svc.GetTriggers(context.Background(), userID, 10, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(triggers) != 2 {
		t.Errorf("got %d triggers, want 2", len(triggers))
	}
	if !events.lastFilter.ExcludeMigraine {
		t.Error("triggers listing did not exclude migraines at the repository")
	}
}
