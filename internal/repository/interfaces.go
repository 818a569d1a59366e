// Package repository provides data access for users and health events,
// backed by PostgreSQL or an in-memory store.
package repository

import (
	"context"
	"errors"

	"github.com/sid-c23/cs6440-project/internal/models"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	// Delete removes the user and cascades to their events.
	Delete(ctx context.Context, id string) error
}

// EventFilter narrows event listings. Zero value means no type filtering.
type EventFilter struct {
	// EventType restricts results to one type when non-nil.
	EventType *models.EventType
	// ExcludeMigraine drops migraine events (the "triggers" view).
	ExcludeMigraine bool
}

// EventRepository defines the interface for event data access.
type EventRepository interface {
	Create(ctx context.Context, event *models.Event) (*models.Event, error)
	// GetByUserID lists a user's events newest-first with limit/offset paging.
	GetByUserID(ctx context.Context, userID string, filter EventFilter, limit, offset int) ([]models.Event, error)
	// GetAllByUserID returns every event for a user, for trend computation.
	GetAllByUserID(ctx context.Context, userID string) ([]models.Event, error)
}
