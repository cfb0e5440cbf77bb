package repository

import (
	"context"
	"errors"
	"fmt"

	"filmoteca/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MpaRepository struct {
	pool *pgxpool.Pool
}

func NewMpaRepository(pool *pgxpool.Pool) *MpaRepository {
	return &MpaRepository{pool: pool}
}

func (r *MpaRepository) FindAll(ctx context.Context) ([]models.Mpa, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM mpa_ratings ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("db: find all mpa: %w", err)
	}
	defer rows.Close()

	var ratings []models.Mpa
	for rows.Next() {
		var m models.Mpa
		if err := rows.Scan(&m.ID, &m.Name); err != nil {
			return nil, fmt.Errorf("db: scan mpa: %w", err)
		}
		ratings = append(ratings, m)
	}
	return ratings, rows.Err()
}

func (r *MpaRepository) FindByID(ctx context.Context, id int) (*models.Mpa, error) {
	var m models.Mpa
	err := r.pool.QueryRow(ctx, `SELECT id, name FROM mpa_ratings WHERE id = $1`, id).Scan(&m.ID, &m.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db: find mpa: %w", err)
	}
	return &m, nil
}
