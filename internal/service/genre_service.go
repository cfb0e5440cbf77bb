package service

import (
	"context"

	"filmoteca/internal/models"
	"filmoteca/internal/repository"
)

type GenreService struct {
	genres repository.GenreStorage
}

func NewGenreService(genres repository.GenreStorage) *GenreService {
	return &GenreService{genres: genres}
}

func (s *GenreService) FindAll(ctx context.Context) ([]models.Genre, error) {
	return s.genres.FindAll(ctx)
}

func (s *GenreService) GetByID(ctx context.Context, id int) (*models.Genre, error) {
	g, err := s.genres.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, models.NewNotFound("genre", id)
	}
	return g, nil
}
