// Package service implements the business logic between handlers and
// repositories.
package service

import (
	"context"

	"github.com/sid-c23/cs6440-project/internal/models"
	"github.com/sid-c23/cs6440-project/internal/trends"
)

// UserService defines the interface for user business logic.
type UserService interface {
	CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error)
	GetUser(ctx context.Context, userID string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	DeleteUser(ctx context.Context, userID string) error
}

// EventService defines the interface for event business logic.
type EventService interface {
	CreateEvent(ctx context.Context, userID string, req *models.CreateEventRequest) (*models.Event, error)
	GetUserEvents(ctx context.Context, userID string, eventType *models.EventType, limit, offset int) ([]models.Event, error)
	GetMigraines(ctx context.Context, userID string, limit, offset int) ([]models.Event, error)
	GetTriggers(ctx context.Context, userID string, limit, offset int) ([]models.Event, error)
}

// TrendsService defines the interface for trend computation over a user's
// event history.
type TrendsService interface {
	WeeklySeries(ctx context.Context, userID string, p trends.SeriesParams) ([]models.WeeklySummary, error)
	ActionItems(ctx context.Context, userID string, p trends.ActionParams) (*models.ActionItemsResponse, error)
	MigraineWeeks(ctx context.Context, userID string, useLocaltime bool) ([]models.MigraineWeek, error)
}
