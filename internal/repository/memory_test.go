package repository

import (
	"context"
	"sync"
	"testing"

	"filmoteca/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFilm(name string) *models.Film {
	return &models.Film{
		Name:        name,
		Description: "una película",
		ReleaseDate: "2000-01-01",
		Duration:    120,
	}
}

func TestMemoryFilmStorage_CreateAssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryFilmStorage()

	for i := 1; i <= 5; i++ {
		created, err := store.Create(ctx, testFilm("film"))
		require.NoError(t, err)
		assert.Equal(t, i, created.ID)
	}
}

func TestMemoryFilmStorage_CreateIgnoresCallerID(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryFilmStorage()

	f := testFilm("film")
	f.ID = 99
	created, err := store.Create(ctx, f)
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
}

func TestMemoryFilmStorage_ConcurrentCreatesUniqueIDs(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryFilmStorage()

	const n = 100
	ids := make(chan int, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			created, err := store.Create(ctx, testFilm("film"))
			if assert.NoError(t, err) {
				ids <- created.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int]bool)
	for id := range ids {
		assert.False(t, seen[id], "id %d repetido", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
}

func TestMemoryFilmStorage_LikesAreIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryFilmStorage()

	created, err := store.Create(ctx, testFilm("film"))
	require.NoError(t, err)

	require.NoError(t, store.AddLike(ctx, created.ID, 7))
	require.NoError(t, store.AddLike(ctx, created.ID, 7))

	got, err := store.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, []int{7}, got.Likes)

	// quitar un like inexistente tampoco es error
	require.NoError(t, store.RemoveLike(ctx, created.ID, 99))
	require.NoError(t, store.RemoveLike(ctx, created.ID, 7))

	got, err = store.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Likes)
}

func TestMemoryFilmStorage_FindByIDReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryFilmStorage()

	f := testFilm("original")
	f.Genres = []models.Genre{{ID: 1, Name: "Comedy"}}
	created, err := store.Create(ctx, f)
	require.NoError(t, err)

	got, err := store.FindByID(ctx, created.ID)
	require.NoError(t, err)
	got.Name = "mutado"
	got.Genres[0].Name = "mutado"

	again, err := store.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "original", again.Name)
	assert.Equal(t, "Comedy", again.Genres[0].Name)
}

func TestMemoryFilmStorage_UpdateMissingIsNotFound(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryFilmStorage()

	f := testFilm("film")
	f.ID = 42
	err := store.Update(ctx, f)
	assert.True(t, models.IsNotFound(err))
}

func TestMemoryUserStorage_CRUD(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryUserStorage()

	created, err := store.Create(ctx, &models.User{
		Email:    "ana@example.com",
		Login:    "ana",
		Name:     "Ana",
		Birthday: "1990-05-01",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)

	ok, err := store.Exists(ctx, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Exists(ctx, 2)
	require.NoError(t, err)
	assert.False(t, ok)

	missing, err := store.FindByID(ctx, 2)
	require.NoError(t, err)
	assert.Nil(t, missing)

	created.Name = "Ana María"
	require.NoError(t, store.Update(ctx, created))

	got, err := store.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Ana María", got.Name)
}

func TestMemoryFriendshipStorage_Directed(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryFriendshipStorage()

	require.NoError(t, store.AddFriend(ctx, 1, 2))
	require.NoError(t, store.AddFriend(ctx, 1, 2)) // idempotente

	mine, err := store.FriendIDs(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, mine)

	// el edge es dirigido: el inverso no existe
	theirs, err := store.FriendIDs(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, theirs)

	require.NoError(t, store.RemoveFriend(ctx, 1, 2))
	require.NoError(t, store.RemoveFriend(ctx, 1, 2)) // no-op

	mine, err = store.FriendIDs(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, mine)
}

func TestMemoryReferenceStorages(t *testing.T) {
	ctx := context.Background()

	genres := NewMemoryGenreStorage()
	all, err := genres.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 6)

	g, err := genres.FindByID(ctx, 2)
	require.NoError(t, err)
	require.NotNil(t, g)
	assert.Equal(t, "Drama", g.Name)

	g, err = genres.FindByID(ctx, 99)
	require.NoError(t, err)
	assert.Nil(t, g)

	mpa := NewMemoryMpaStorage()
	ratings, err := mpa.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, ratings, 5)

	m, err := mpa.FindByID(ctx, 3)
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, "PG-13", m.Name)
}
