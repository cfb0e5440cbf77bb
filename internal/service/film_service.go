package service

import (
	"context"
	"fmt"
	"log"
	"sort"

	"filmoteca/internal/cache"
	"filmoteca/internal/models"
	"filmoteca/internal/repository"
)

const popularCachePrefix = "popular_films:"

type FilmService struct {
	films  repository.FilmStorage
	users  repository.UserStorage
	mpa    repository.MpaStorage
	genres repository.GenreStorage
}

func NewFilmService(
	films repository.FilmStorage,
	users repository.UserStorage,
	mpa repository.MpaStorage,
	genres repository.GenreStorage,
) *FilmService {
	return &FilmService{
		films:  films,
		users:  users,
		mpa:    mpa,
		genres: genres,
	}
}

func (s *FilmService) FindAll(ctx context.Context) ([]models.Film, error) {
	return s.films.FindAll(ctx)
}

func (s *FilmService) GetByID(ctx context.Context, id int) (*models.Film, error) {
	film, err := s.films.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if film == nil {
		return nil, models.NewNotFound("film", id)
	}
	return film, nil
}

func (s *FilmService) Create(ctx context.Context, film models.Film) (*models.Film, error) {
	if err := s.validateRefs(ctx, &film); err != nil {
		return nil, err
	}
	if film.Genres == nil {
		film.Genres = []models.Genre{}
	}
	film.Likes = nil // los likes nunca vienen del caller

	created, err := s.films.Create(ctx, &film)
	if err != nil {
		return nil, err
	}

	s.invalidatePopular(ctx)
	log.Printf("creado film %d", created.ID)
	return created, nil
}

func (s *FilmService) Update(ctx context.Context, in models.FilmUpdate) (*models.Film, error) {
	stored, err := s.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	merged := mergeFilm(*stored, in)
	if err := s.validateRefs(ctx, &merged); err != nil {
		return nil, err
	}

	if err := s.films.Update(ctx, &merged); err != nil {
		return nil, err
	}

	s.invalidatePopular(ctx)
	log.Printf("actualizado film %d", merged.ID)
	return &merged, nil
}

func (s *FilmService) AddLike(ctx context.Context, filmID, userID int) error {
	if err := s.ensureEdge(ctx, filmID, userID); err != nil {
		return err
	}

	if err := s.films.AddLike(ctx, filmID, userID); err != nil {
		return err
	}
	s.invalidatePopular(ctx)
	log.Printf("user %d dio like al film %d", userID, filmID)
	return nil
}

func (s *FilmService) RemoveLike(ctx context.Context, filmID, userID int) error {
	if err := s.ensureEdge(ctx, filmID, userID); err != nil {
		return err
	}

	if err := s.films.RemoveLike(ctx, filmID, userID); err != nil {
		return err
	}
	s.invalidatePopular(ctx)
	log.Printf("user %d quitó su like al film %d", userID, filmID)
	return nil
}

// GetPopular ordena por cantidad de likes desc y desempata por id asc,
// para que el orden sea siempre determinista.
func (s *FilmService) GetPopular(ctx context.Context, count int) ([]models.Film, error) {
	if count <= 0 {
		return []models.Film{}, nil
	}

	key := fmt.Sprintf("%s%d", popularCachePrefix, count)
	var cached []models.Film
	if ok, err := cache.GetJSON(ctx, key, &cached); err == nil && ok {
		return cached, nil
	}

	films, err := s.films.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if films == nil {
		films = []models.Film{}
	}

	sort.Slice(films, func(i, j int) bool {
		if len(films[i].Likes) != len(films[j].Likes) {
			return len(films[i].Likes) > len(films[j].Likes)
		}
		return films[i].ID < films[j].ID
	})

	if len(films) > count {
		films = films[:count]
	}

	if err := cache.SetJSON(ctx, key, films, 60); err != nil {
		log.Printf("error cacheando films populares: %v", err)
	}
	return films, nil
}

// ensureEdge valida film y user antes de tocar la tabla de likes:
// nunca se registra un edge contra una entidad inexistente.
func (s *FilmService) ensureEdge(ctx context.Context, filmID, userID int) error {
	ok, err := s.films.Exists(ctx, filmID)
	if err != nil {
		return err
	}
	if !ok {
		return models.NewNotFound("film", filmID)
	}

	ok, err = s.users.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !ok {
		return models.NewNotFound("user", userID)
	}
	return nil
}

// validateRefs resuelve las referencias mpa/género contra su
// vocabulario antes de persistir el film.
func (s *FilmService) validateRefs(ctx context.Context, film *models.Film) error {
	if film.Mpa != nil {
		m, err := s.mpa.FindByID(ctx, film.Mpa.ID)
		if err != nil {
			return err
		}
		if m == nil {
			return models.NewNotFound("mpa", film.Mpa.ID)
		}
		film.Mpa = m
	}

	for i, g := range film.Genres {
		known, err := s.genres.FindByID(ctx, g.ID)
		if err != nil {
			return err
		}
		if known == nil {
			return models.NewNotFound("genre", g.ID)
		}
		film.Genres[i] = *known
	}
	return nil
}

func (s *FilmService) invalidatePopular(ctx context.Context) {
	if err := cache.DeleteByPrefix(ctx, popularCachePrefix); err != nil {
		log.Printf("error invalidando cache de populares: %v", err)
	}
}
