package service

import (
	"context"

	"filmoteca/internal/models"
	"filmoteca/internal/repository"
)

type MpaService struct {
	mpa repository.MpaStorage
}

func NewMpaService(mpa repository.MpaStorage) *MpaService {
	return &MpaService{mpa: mpa}
}

func (s *MpaService) FindAll(ctx context.Context) ([]models.Mpa, error) {
	return s.mpa.FindAll(ctx)
}

func (s *MpaService) GetByID(ctx context.Context, id int) (*models.Mpa, error) {
	m, err := s.mpa.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, models.NewNotFound("mpa", id)
	}
	return m, nil
}
