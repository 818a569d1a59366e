package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sid-c23/cs6440-project/internal/models"
	"github.com/sid-c23/cs6440-project/internal/repository"
)

// mockUserRepository is a hand-written UserRepository for tests.
type mockUserRepository struct {
	users       map[string]*models.User
	createCalls int
	deleteCalls int
	err         error // returned by every method when set
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{users: make(map[string]*models.User)}
}

func (m *mockUserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.createCalls++
	user.ID = fmt.Sprintf("user-%d", m.createCalls)
	user.CreatedAt = time.Now()
	m.users[user.ID] = user
	return user, nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, repository.ErrNotFound
}

func (m *mockUserRepository) List(ctx context.Context) ([]models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := []models.User{}
	for _, u := range m.users {
		out = append(out, *u)
	}
	return out, nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	m.deleteCalls++
	if _, ok := m.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.users, id)
	return nil
}

// mockEventRepository is a hand-written EventRepository for tests.
type mockEventRepository struct {
	events      []models.Event
	createCalls int
	lastFilter  repository.EventFilter
	lastLimit   int
	lastOffset  int
	err         error
}

func newMockEventRepository() *mockEventRepository {
	return &mockEventRepository{}
}

func (m *mockEventRepository) Create(ctx context.Context, event *models.Event) (*models.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.createCalls++
	event.ID = fmt.Sprintf("event-%d", m.createCalls)
	event.CreatedAt = time.Now()
	event.UpdatedAt = event.CreatedAt
	m.events = append(m.events, *event)
	return event, nil
}

func (m *mockEventRepository) GetByUserID(ctx context.Context, userID string, filter repository.EventFilter, limit, offset int) ([]models.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.lastFilter = filter
	m.lastLimit = limit
	m.lastOffset = offset

	out := []models.Event{}
	for _, e := range m.events {
		if e.UserID != userID {
			continue
		}
		if filter.EventType != nil && e.EventType != *filter.EventType {
			continue
		}
		if filter.ExcludeMigraine && e.EventType == models.EventTypeMigraine {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (m *mockEventRepository) GetAllByUserID(ctx context.Context, userID string) ([]models.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := []models.Event{}
	for _, e := range m.events {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}
