package service

import (
	"context"
	"log"
	"strings"

	"filmoteca/internal/models"
	"filmoteca/internal/repository"
)

type UserService struct {
	users   repository.UserStorage
	friends repository.FriendshipStorage
}

func NewUserService(users repository.UserStorage, friends repository.FriendshipStorage) *UserService {
	return &UserService{users: users, friends: friends}
}

func (s *UserService) FindAll(ctx context.Context) ([]models.User, error) {
	return s.users.FindAll(ctx)
}

func (s *UserService) GetByID(ctx context.Context, id int) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewNotFound("user", id)
	}
	return user, nil
}

func (s *UserService) Create(ctx context.Context, user models.User) (*models.User, error) {
	// name en blanco cae al login
	if strings.TrimSpace(user.Name) == "" {
		user.Name = user.Login
	}
	return s.users.Create(ctx, &user)
}

func (s *UserService) Update(ctx context.Context, in models.UserUpdate) (*models.User, error) {
	stored, err := s.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	merged := mergeUser(*stored, in)
	if strings.TrimSpace(merged.Name) == "" {
		merged.Name = merged.Login
	}

	if err := s.users.Update(ctx, &merged); err != nil {
		return nil, err
	}
	log.Printf("actualizado user %d", merged.ID)
	return &merged, nil
}

// AddFriend registra la amistad dirigida userID→friendID; el inverso
// no se toca.
func (s *UserService) AddFriend(ctx context.Context, userID, friendID int) error {
	if err := s.ensureBoth(ctx, userID, friendID); err != nil {
		return err
	}

	if err := s.friends.AddFriend(ctx, userID, friendID); err != nil {
		return err
	}
	log.Printf("user %d agregó como amigo a user %d", userID, friendID)
	return nil
}

func (s *UserService) RemoveFriend(ctx context.Context, userID, friendID int) error {
	if err := s.ensureBoth(ctx, userID, friendID); err != nil {
		return err
	}

	if err := s.friends.RemoveFriend(ctx, userID, friendID); err != nil {
		return err
	}
	log.Printf("user %d quitó de amigos a user %d", userID, friendID)
	return nil
}

func (s *UserService) GetFriends(ctx context.Context, userID int) ([]models.User, error) {
	if err := s.ensureExists(ctx, userID); err != nil {
		return nil, err
	}

	ids, err := s.friends.FriendIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.resolve(ctx, ids)
}

func (s *UserService) GetCommonFriends(ctx context.Context, userID, otherID int) ([]models.User, error) {
	if err := s.ensureExists(ctx, userID); err != nil {
		return nil, err
	}
	if err := s.ensureExists(ctx, otherID); err != nil {
		return nil, err
	}

	mine, err := s.friends.FriendIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	theirs, err := s.friends.FriendIDs(ctx, otherID)
	if err != nil {
		return nil, err
	}

	other := make(map[int]struct{}, len(theirs))
	for _, id := range theirs {
		other[id] = struct{}{}
	}

	var common []int
	for _, id := range mine {
		if _, ok := other[id]; ok {
			common = append(common, id)
		}
	}
	return s.resolve(ctx, common)
}

func (s *UserService) ensureExists(ctx context.Context, userID int) error {
	ok, err := s.users.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !ok {
		return models.NewNotFound("user", userID)
	}
	return nil
}

func (s *UserService) ensureBoth(ctx context.Context, userID, friendID int) error {
	if err := s.ensureExists(ctx, userID); err != nil {
		return err
	}
	return s.ensureExists(ctx, friendID)
}

// resolve mapea ids de amigos a sus entidades. Un id que no resuelve
// es un edge colgante: corrupción del store, se propaga como fatal.
func (s *UserService) resolve(ctx context.Context, ids []int) ([]models.User, error) {
	out := make([]models.User, 0, len(ids))
	for _, id := range ids {
		u, err := s.users.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if u == nil {
			return nil, models.NewConsistency("friendship apunta a user %d inexistente", id)
		}
		out = append(out, *u)
	}
	return out, nil
}
