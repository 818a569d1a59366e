package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sid-c23/cs6440-project/internal/models"
)

// MemoryStore is an in-process implementation of both repositories, used by
// tests and by `serve --memory` for dependency-free runs. Safe for concurrent
// use.
type MemoryStore struct {
	mu     sync.RWMutex
	users  map[string]models.User
	events map[string][]models.Event // keyed by user ID, insertion order
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:  make(map[string]models.User),
		events: make(map[string][]models.Event),
	}
}

func (s *MemoryStore) Create(ctx context.Context, user *models.User) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user.ID = uuid.NewString()
	user.CreatedAt = time.Now().UTC()
	s.users[user.ID] = *user
	return user, nil
}

func (s *MemoryStore) GetByID(ctx context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (s *MemoryStore) List(ctx context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.Before(users[j].CreatedAt)
	})
	return users, nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return ErrNotFound
	}
	delete(s.users, id)
	delete(s.events, id) // cascade
	return nil
}

// Events returns an EventRepository view of the store.
func (s *MemoryStore) Events() EventRepository { return (*memoryEvents)(s) }

// Users returns a UserRepository view of the store.
func (s *MemoryStore) Users() UserRepository { return s }

type memoryEvents MemoryStore

func (s *memoryEvents) Create(ctx context.Context, event *models.Event) (*models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	event.ID = uuid.NewString()
	now := time.Now().UTC()
	event.CreatedAt = now
	event.UpdatedAt = now
	s.events[event.UserID] = append(s.events[event.UserID], *event)
	return event, nil
}

func (s *memoryEvents) GetByUserID(ctx context.Context, userID string, filter EventFilter, limit, offset int) ([]models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := []models.Event{}
	// Walk newest-first to mirror the SQL ordering.
	stored := s.events[userID]
	for i := len(stored) - 1; i >= 0; i-- {
		e := stored[i]
		if filter.EventType != nil && e.EventType != *filter.EventType {
			continue
		}
		if filter.ExcludeMigraine && e.EventType == models.EventTypeMigraine {
			continue
		}
		matched = append(matched, e)
	}

	if offset >= len(matched) {
		return []models.Event{}, nil
	}
	matched = matched[offset:]
	if limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, nil
}

func (s *memoryEvents) GetAllByUserID(ctx context.Context, userID string) ([]models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Event, len(s.events[userID]))
	copy(out, s.events[userID])
	return out, nil
}
