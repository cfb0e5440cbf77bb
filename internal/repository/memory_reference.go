package repository

import (
	"context"

	"filmoteca/internal/models"
)

// Vocabulario fijo para el backend en memoria. En Postgres estas
// tablas las carga el bootstrap del esquema.
var seedGenres = []models.Genre{
	{ID: 1, Name: "Comedy"},
	{ID: 2, Name: "Drama"},
	{ID: 3, Name: "Cartoon"},
	{ID: 4, Name: "Thriller"},
	{ID: 5, Name: "Documentary"},
	{ID: 6, Name: "Action"},
}

var seedMpa = []models.Mpa{
	{ID: 1, Name: "G"},
	{ID: 2, Name: "PG"},
	{ID: 3, Name: "PG-13"},
	{ID: 4, Name: "R"},
	{ID: 5, Name: "NC-17"},
}

type MemoryGenreStorage struct{}

func NewMemoryGenreStorage() *MemoryGenreStorage { return &MemoryGenreStorage{} }

func (s *MemoryGenreStorage) FindAll(ctx context.Context) ([]models.Genre, error) {
	return append([]models.Genre(nil), seedGenres...), nil
}

func (s *MemoryGenreStorage) FindByID(ctx context.Context, id int) (*models.Genre, error) {
	for _, g := range seedGenres {
		if g.ID == id {
			out := g
			return &out, nil
		}
	}
	return nil, nil
}

type MemoryMpaStorage struct{}

func NewMemoryMpaStorage() *MemoryMpaStorage { return &MemoryMpaStorage{} }

func (s *MemoryMpaStorage) FindAll(ctx context.Context) ([]models.Mpa, error) {
	return append([]models.Mpa(nil), seedMpa...), nil
}

func (s *MemoryMpaStorage) FindByID(ctx context.Context, id int) (*models.Mpa, error) {
	for _, m := range seedMpa {
		if m.ID == id {
			out := m
			return &out, nil
		}
	}
	return nil, nil
}
