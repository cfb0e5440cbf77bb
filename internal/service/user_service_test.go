package service

import (
	"context"
	"testing"

	"filmoteca/internal/models"
	"filmoteca/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService() *UserService {
	return NewUserService(repository.NewMemoryUserStorage(), repository.NewMemoryFriendshipStorage())
}

func TestUserService_CreateFallsBackNameToLogin(t *testing.T) {
	ctx := context.Background()
	svc := newUserService()

	created, err := svc.Create(ctx, models.User{
		Email:    "ana@example.com",
		Login:    "ana",
		Name:     "   ",
		Birthday: "1990-05-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "ana", created.Name)
}

func TestUserService_UpdateMergesPartialFields(t *testing.T) {
	ctx := context.Background()
	svc := newUserService()
	created := createUser(t, svc, "ana")

	email := "nueva@example.com"
	updated, err := svc.Update(ctx, models.UserUpdate{ID: created.ID, Email: &email})
	require.NoError(t, err)

	assert.Equal(t, "nueva@example.com", updated.Email)
	assert.Equal(t, created.Login, updated.Login)
	assert.Equal(t, created.Birthday, updated.Birthday)
}

func TestUserService_UpdateAllNilIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc := newUserService()
	created := createUser(t, svc, "ana")

	updated, err := svc.Update(ctx, models.UserUpdate{ID: created.ID})
	require.NoError(t, err)
	assert.Equal(t, *created, *updated)
}

func TestUserService_UpdateBlankFieldsKeepStored(t *testing.T) {
	ctx := context.Background()
	svc := newUserService()
	created := createUser(t, svc, "ana")

	blank := "  "
	updated, err := svc.Update(ctx, models.UserUpdate{ID: created.ID, Email: &blank, Login: &blank})
	require.NoError(t, err)

	// un campo en blanco nunca pisa el valor guardado
	assert.Equal(t, created.Email, updated.Email)
	assert.Equal(t, created.Login, updated.Login)
}

func TestUserService_UpdateMissingUserIsNotFound(t *testing.T) {
	ctx := context.Background()
	svc := newUserService()

	_, err := svc.Update(ctx, models.UserUpdate{ID: 42})
	assert.True(t, models.IsNotFound(err))
}

func TestUserService_FriendshipIsDirected(t *testing.T) {
	ctx := context.Background()
	svc := newUserService()
	ana := createUser(t, svc, "ana")
	bob := createUser(t, svc, "bob")

	require.NoError(t, svc.AddFriend(ctx, ana.ID, bob.ID))

	friends, err := svc.GetFriends(ctx, ana.ID)
	require.NoError(t, err)
	require.Len(t, friends, 1)
	assert.Equal(t, bob.ID, friends[0].ID)

	// el edge inverso no se crea solo
	friends, err = svc.GetFriends(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, friends)

	require.NoError(t, svc.RemoveFriend(ctx, ana.ID, bob.ID))
	friends, err = svc.GetFriends(ctx, ana.ID)
	require.NoError(t, err)
	assert.Empty(t, friends)
}

func TestUserService_AddFriendValidatesBothUsers(t *testing.T) {
	ctx := context.Background()
	svc := newUserService()
	ana := createUser(t, svc, "ana")

	err := svc.AddFriend(ctx, ana.ID, 42)
	assert.True(t, models.IsNotFound(err))
	assert.Contains(t, err.Error(), "user 42")

	err = svc.AddFriend(ctx, 42, ana.ID)
	assert.True(t, models.IsNotFound(err))
}

func TestUserService_GetFriendsMissingUserIsNotFound(t *testing.T) {
	ctx := context.Background()
	svc := newUserService()

	// nunca lista vacía para un usuario inexistente
	_, err := svc.GetFriends(ctx, 42)
	require.Error(t, err)
	assert.True(t, models.IsNotFound(err))
}

func TestUserService_CommonFriends(t *testing.T) {
	ctx := context.Background()
	svc := newUserService()

	logins := []string{"u1", "u2", "u3", "u4", "u5"}
	users := make([]*models.User, 0, len(logins))
	for _, l := range logins {
		users = append(users, createUser(t, svc, l))
	}

	// amigos de u1: {u2, u3, u4}; amigos de u5: {u3, u4}
	for _, f := range []*models.User{users[1], users[2], users[3]} {
		require.NoError(t, svc.AddFriend(ctx, users[0].ID, f.ID))
	}
	for _, f := range []*models.User{users[2], users[3]} {
		require.NoError(t, svc.AddFriend(ctx, users[4].ID, f.ID))
	}

	common, err := svc.GetCommonFriends(ctx, users[0].ID, users[4].ID)
	require.NoError(t, err)

	ids := make([]int, 0, len(common))
	for _, u := range common {
		ids = append(ids, u.ID)
	}
	assert.ElementsMatch(t, []int{users[2].ID, users[3].ID}, ids)
}

func TestUserService_CommonFriendsNoOverlapIsEmpty(t *testing.T) {
	ctx := context.Background()
	svc := newUserService()
	ana := createUser(t, svc, "ana")
	bob := createUser(t, svc, "bob")

	common, err := svc.GetCommonFriends(ctx, ana.ID, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, common)
}

func TestUserService_CommonFriendsMissingUserIsNotFound(t *testing.T) {
	ctx := context.Background()
	svc := newUserService()
	ana := createUser(t, svc, "ana")

	_, err := svc.GetCommonFriends(ctx, ana.ID, 42)
	require.Error(t, err)
	assert.True(t, models.IsNotFound(err))
	assert.Contains(t, err.Error(), "user 42")
}

func TestUserService_DanglingFriendEdgeIsConsistencyError(t *testing.T) {
	ctx := context.Background()
	users := repository.NewMemoryUserStorage()
	friends := repository.NewMemoryFriendshipStorage()
	svc := NewUserService(users, friends)

	ana := createUser(t, svc, "ana")

	// edge colgante metido por fuera del servicio
	require.NoError(t, friends.AddFriend(ctx, ana.ID, 42))

	_, err := svc.GetFriends(ctx, ana.ID)
	require.Error(t, err)
	assert.False(t, models.IsNotFound(err))

	var ce *models.ConsistencyError
	assert.ErrorAs(t, err, &ce)
}
