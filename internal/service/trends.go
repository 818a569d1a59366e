package service

import (
	"context"
	"fmt"

	"github.com/sid-c23/cs6440-project/internal/models"
	"github.com/sid-c23/cs6440-project/internal/repository"
	"github.com/sid-c23/cs6440-project/internal/trends"
)

type trendsService struct {
	eventRepo repository.EventRepository
	userRepo  repository.UserRepository
}

// NewTrendsService creates a new trends service.
func NewTrendsService(eventRepo repository.EventRepository, userRepo repository.UserRepository) TrendsService {
	return &trendsService{eventRepo: eventRepo, userRepo: userRepo}
}

func (s *trendsService) WeeklySeries(ctx context.Context, userID string, p trends.SeriesParams) ([]models.WeeklySummary, error) {
	events, err := s.fetchEvents(ctx, userID)
	if err != nil {
		return nil, err
	}
	series, err := trends.WeeklySeries(events, p)
	if err != nil {
		return nil, fmt.Errorf("compute weekly series: %w", err)
	}
	return series, nil
}

func (s *trendsService) ActionItems(ctx context.Context, userID string, p trends.ActionParams) (*models.ActionItemsResponse, error) {
	events, err := s.fetchEvents(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := trends.ActionItems(events, p)
	return &resp, nil
}

func (s *trendsService) MigraineWeeks(ctx context.Context, userID string, useLocaltime bool) ([]models.MigraineWeek, error) {
	events, err := s.fetchEvents(ctx, userID)
	if err != nil {
		return nil, err
	}
	return trends.MigraineWeeks(events, useLocaltime), nil
}

func (s *trendsService) fetchEvents(ctx context.Context, userID string) ([]models.Event, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.eventRepo.GetAllByUserID(ctx, userID)
}
