package repository

import (
	"context"
	"sort"
	"sync"

	"filmoteca/internal/models"
)

// MemoryFilmStorage es el backend transitorio: un map protegido por
// mutex. Útil para tests y para correr sin Postgres.
type MemoryFilmStorage struct {
	mu    sync.RWMutex
	films map[int]models.Film
	likes map[int]map[int]struct{} // filmID -> set de userIDs
}

func NewMemoryFilmStorage() *MemoryFilmStorage {
	return &MemoryFilmStorage{
		films: make(map[int]models.Film),
		likes: make(map[int]map[int]struct{}),
	}
}

func (s *MemoryFilmStorage) FindAll(ctx context.Context) ([]models.Film, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Film, 0, len(s.films))
	for id := range s.films {
		out = append(out, s.snapshot(id))
	}
	return out, nil
}

func (s *MemoryFilmStorage) FindByID(ctx context.Context, id int) (*models.Film, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.films[id]; !ok {
		return nil, nil
	}
	f := s.snapshot(id)
	return &f, nil
}

func (s *MemoryFilmStorage) Create(ctx context.Context, film *models.Film) (*models.Film, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// se ignora cualquier id que venga del caller
	id := s.nextID()
	film.ID = id

	s.films[id] = cloneFilm(*film)
	s.likes[id] = make(map[int]struct{})

	f := s.snapshot(id)
	return &f, nil
}

func (s *MemoryFilmStorage) Update(ctx context.Context, film *models.Film) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.films[film.ID]; !ok {
		return models.NewNotFound("film", film.ID)
	}
	// los likes viven en su propio map, no se pisan en el update
	s.films[film.ID] = cloneFilm(*film)
	return nil
}

func (s *MemoryFilmStorage) Exists(ctx context.Context, id int) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.films[id]
	return ok, nil
}

func (s *MemoryFilmStorage) AddLike(ctx context.Context, filmID, userID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if set, ok := s.likes[filmID]; ok {
		set[userID] = struct{}{}
	}
	return nil
}

func (s *MemoryFilmStorage) RemoveLike(ctx context.Context, filmID, userID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if set, ok := s.likes[filmID]; ok {
		delete(set, userID)
	}
	return nil
}

// snapshot arma una copia del film con sus likes. Requiere lock tomado.
func (s *MemoryFilmStorage) snapshot(id int) models.Film {
	f := cloneFilm(s.films[id])

	likes := make([]int, 0, len(s.likes[id]))
	for uid := range s.likes[id] {
		likes = append(likes, uid)
	}
	sort.Ints(likes)
	f.Likes = likes
	return f
}

func (s *MemoryFilmStorage) nextID() int {
	max := 0
	for id := range s.films {
		if id > max {
			max = id
		}
	}
	return max + 1
}

// cloneFilm copia el film sin compartir slices con el caller.
func cloneFilm(f models.Film) models.Film {
	c := f
	if f.Genres != nil {
		c.Genres = append([]models.Genre{}, f.Genres...)
	}
	if f.Mpa != nil {
		m := *f.Mpa
		c.Mpa = &m
	}
	c.Likes = append([]int(nil), f.Likes...)
	return c
}
