package service

import (
	"context"
	"fmt"

	"github.com/sid-c23/cs6440-project/internal/models"
	"github.com/sid-c23/cs6440-project/internal/repository"
)

// Pagination bounds for event listings.
const (
	defaultEventLimit = 50
	maxEventLimit     = 100
)

type eventService struct {
	eventRepo repository.EventRepository
	userRepo  repository.UserRepository
	// coding holds the per-event-type clinical coding defaults, keyed by
	// event type. Injected from configuration.
	coding map[string]models.Coding
}

// NewEventService creates a new event service. codingSystems supplies the
// default system/code pair per event type for events that arrive without one.
func NewEventService(eventRepo repository.EventRepository, userRepo repository.UserRepository, codingSystems map[string]models.Coding) EventService {
	return &eventService{
		eventRepo: eventRepo,
		userRepo:  userRepo,
		coding:    codingSystems,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, userID string, req *models.CreateEventRequest) (*models.Event, error) {
	// The owning user must exist.
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	event := &models.Event{
		UserID:         userID,
		EventType:      req.EventType,
		EventTimestamp: req.EventTimestamp,
		Severity:       req.Severity,
		NumericalValue: req.NumericalValue,
		NumericalUnit:  req.NumericalUnit,
		Description:    req.Description,
	}

	// Default the coding pair from configuration when the caller omits it.
	if req.System != nil {
		event.System = *req.System
	}
	if req.Code != nil {
		event.Code = *req.Code
	}
	if event.System == "" || event.Code == "" {
		if c, ok := s.coding[string(req.EventType)]; ok {
			if event.System == "" {
				event.System = c.System
			}
			if event.Code == "" {
				event.Code = c.Code
			}
		}
	}

	created, err := s.eventRepo.Create(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return created, nil
}

func (s *eventService) GetUserEvents(ctx context.Context, userID string, eventType *models.EventType, limit, offset int) ([]models.Event, error) {
	return s.list(ctx, userID, repository.EventFilter{EventType: eventType}, limit, offset)
}

func (s *eventService) GetMigraines(ctx context.Context, userID string, limit, offset int) ([]models.Event, error) {
	migraine := models.EventTypeMigraine
	return s.list(ctx, userID, repository.EventFilter{EventType: &migraine}, limit, offset)
}

func (s *eventService) GetTriggers(ctx context.Context, userID string, limit, offset int) ([]models.Event, error) {
	return s.list(ctx, userID, repository.EventFilter{ExcludeMigraine: true}, limit, offset)
}

func (s *eventService) list(ctx context.Context, userID string, filter repository.EventFilter, limit, offset int) ([]models.Event, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	if limit <= 0 || limit > maxEventLimit {
		limit = defaultEventLimit
	}
	if offset < 0 {
		offset = 0
	}
	return s.eventRepo.GetByUserID(ctx, userID, filter, limit, offset)
}
