package repository

import (
	"context"
	"sync"

	"filmoteca/internal/models"
)

type MemoryUserStorage struct {
	mu    sync.RWMutex
	users map[int]models.User
}

func NewMemoryUserStorage() *MemoryUserStorage {
	return &MemoryUserStorage{users: make(map[int]models.User)}
}

func (s *MemoryUserStorage) FindAll(ctx context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	return out, nil
}

func (s *MemoryUserStorage) FindByID(ctx context.Context, id int) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (s *MemoryUserStorage) Create(ctx context.Context, user *models.User) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user.ID = s.nextID()
	s.users[user.ID] = *user

	u := s.users[user.ID]
	return &u, nil
}

func (s *MemoryUserStorage) Update(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.ID]; !ok {
		return models.NewNotFound("user", user.ID)
	}
	s.users[user.ID] = *user
	return nil
}

func (s *MemoryUserStorage) Exists(ctx context.Context, id int) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.users[id]
	return ok, nil
}

func (s *MemoryUserStorage) nextID() int {
	max := 0
	for id := range s.users {
		if id > max {
			max = id
		}
	}
	return max + 1
}
