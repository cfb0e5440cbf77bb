package repository

import (
	"context"
	"sort"
	"sync"
)

type MemoryFriendshipStorage struct {
	mu      sync.RWMutex
	friends map[int]map[int]struct{} // userID -> set de friendIDs (salientes)
}

func NewMemoryFriendshipStorage() *MemoryFriendshipStorage {
	return &MemoryFriendshipStorage{friends: make(map[int]map[int]struct{})}
}

func (s *MemoryFriendshipStorage) AddFriend(ctx context.Context, userID, friendID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.friends[userID]
	if !ok {
		set = make(map[int]struct{})
		s.friends[userID] = set
	}
	set[friendID] = struct{}{}
	return nil
}

func (s *MemoryFriendshipStorage) RemoveFriend(ctx context.Context, userID, friendID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if set, ok := s.friends[userID]; ok {
		delete(set, friendID)
	}
	return nil
}

func (s *MemoryFriendshipStorage) FriendIDs(ctx context.Context, userID int) ([]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	set := s.friends[userID]
	out := make([]int, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Ints(out)
	return out, nil
}
