package repository

import (
	"context"
	"fmt"
	"sort"
	"time"

	"filmoteca/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const dateLayout = "2006-01-02"

type FilmRepository struct {
	pool *pgxpool.Pool
}

func NewFilmRepository(pool *pgxpool.Pool) *FilmRepository {
	return &FilmRepository{pool: pool}
}

const filmSelect = `
	SELECT f.id, f.name, f.description, f.release_date, f.duration,
	       m.id AS mpa_id, m.name AS mpa_name
	FROM films f
	LEFT JOIN mpa_ratings m ON f.mpa_id = m.id
`

func (r *FilmRepository) FindAll(ctx context.Context) ([]models.Film, error) {
	rows, err := r.pool.Query(ctx, filmSelect)
	if err != nil {
		return nil, fmt.Errorf("db: find all films: %w", err)
	}
	defer rows.Close()

	films, err := scanFilms(rows)
	if err != nil {
		return nil, err
	}

	if err := r.loadGenres(ctx, films); err != nil {
		return nil, err
	}
	if err := r.loadLikes(ctx, films); err != nil {
		return nil, err
	}
	return films, nil
}

func (r *FilmRepository) FindByID(ctx context.Context, id int) (*models.Film, error) {
	rows, err := r.pool.Query(ctx, filmSelect+" WHERE f.id = $1", id)
	if err != nil {
		return nil, fmt.Errorf("db: find film: %w", err)
	}
	defer rows.Close()

	films, err := scanFilms(rows)
	if err != nil {
		return nil, err
	}
	if len(films) == 0 {
		return nil, nil
	}

	if err := r.loadGenres(ctx, films); err != nil {
		return nil, err
	}
	if err := r.loadLikes(ctx, films); err != nil {
		return nil, err
	}
	return &films[0], nil
}

func (r *FilmRepository) Create(ctx context.Context, film *models.Film) (*models.Film, error) {
	release, err := time.Parse(dateLayout, film.ReleaseDate)
	if err != nil {
		return nil, fmt.Errorf("db: release date inválida %q: %w", film.ReleaseDate, err)
	}

	q := `
		INSERT INTO films (name, description, release_date, duration, mpa_id)
		VALUES (@name, @description, @release_date, @duration, @mpa_id)
		RETURNING id
	`
	args := pgx.NamedArgs{
		"name":         film.Name,
		"description":  film.Description,
		"release_date": release,
		"duration":     film.Duration,
		"mpa_id":       mpaID(film.Mpa),
	}

	// la serial de la tabla garantiza ids únicos bajo concurrencia
	if err := r.pool.QueryRow(ctx, q, args).Scan(&film.ID); err != nil {
		return nil, fmt.Errorf("db: insert film: %w", err)
	}

	if err := r.replaceGenres(ctx, film); err != nil {
		return nil, err
	}
	if film.Likes == nil {
		film.Likes = []int{}
	}
	return film, nil
}

func (r *FilmRepository) Update(ctx context.Context, film *models.Film) error {
	release, err := time.Parse(dateLayout, film.ReleaseDate)
	if err != nil {
		return fmt.Errorf("db: release date inválida %q: %w", film.ReleaseDate, err)
	}

	q := `
		UPDATE films
		SET name = @name, description = @description, release_date = @release_date,
		    duration = @duration, mpa_id = @mpa_id
		WHERE id = @id
	`
	args := pgx.NamedArgs{
		"id":           film.ID,
		"name":         film.Name,
		"description":  film.Description,
		"release_date": release,
		"duration":     film.Duration,
		"mpa_id":       mpaID(film.Mpa),
	}

	tag, err := r.pool.Exec(ctx, q, args)
	if err != nil {
		return fmt.Errorf("db: update film: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.NewNotFound("film", film.ID)
	}

	return r.replaceGenres(ctx, film)
}

func (r *FilmRepository) Exists(ctx context.Context, id int) (bool, error) {
	var found bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM films WHERE id = $1)`, id).Scan(&found)
	if err != nil {
		return false, fmt.Errorf("db: film exists: %w", err)
	}
	return found, nil
}

func (r *FilmRepository) AddLike(ctx context.Context, filmID, userID int) error {
	// upsert idempotente: repetir el like no es error
	q := `INSERT INTO film_likes (film_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`
	_, err := r.pool.Exec(ctx, q, filmID, userID)
	if err != nil {
		return fmt.Errorf("db: add like: %w", err)
	}
	return nil
}

func (r *FilmRepository) RemoveLike(ctx context.Context, filmID, userID int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM film_likes WHERE film_id = $1 AND user_id = $2`, filmID, userID)
	if err != nil {
		return fmt.Errorf("db: remove like: %w", err)
	}
	return nil
}

/* --------- helpers --------- */

func scanFilms(rows pgx.Rows) ([]models.Film, error) {
	var films []models.Film
	for rows.Next() {
		var (
			f       models.Film
			release time.Time
			mpaID   *int
			mpaName *string
		)
		if err := rows.Scan(&f.ID, &f.Name, &f.Description, &release, &f.Duration, &mpaID, &mpaName); err != nil {
			return nil, fmt.Errorf("db: scan film: %w", err)
		}
		f.ReleaseDate = release.Format(dateLayout)
		if mpaID != nil {
			f.Mpa = &models.Mpa{ID: *mpaID, Name: *mpaName}
		}
		f.Genres = []models.Genre{}
		f.Likes = []int{}
		films = append(films, f)
	}
	return films, rows.Err()
}

func (r *FilmRepository) loadGenres(ctx context.Context, films []models.Film) error {
	if len(films) == 0 {
		return nil
	}

	byID := make(map[int]*models.Film, len(films))
	ids := make([]int, 0, len(films))
	for i := range films {
		byID[films[i].ID] = &films[i]
		ids = append(ids, films[i].ID)
	}

	q := `
		SELECT fg.film_id, g.id, g.name
		FROM film_genres fg
		JOIN genres g ON fg.genre_id = g.id
		WHERE fg.film_id = ANY($1)
		ORDER BY g.id
	`
	rows, err := r.pool.Query(ctx, q, ids)
	if err != nil {
		return fmt.Errorf("db: load genres: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			filmID int
			g      models.Genre
		)
		if err := rows.Scan(&filmID, &g.ID, &g.Name); err != nil {
			return fmt.Errorf("db: scan genre: %w", err)
		}
		byID[filmID].Genres = append(byID[filmID].Genres, g)
	}
	return rows.Err()
}

func (r *FilmRepository) loadLikes(ctx context.Context, films []models.Film) error {
	if len(films) == 0 {
		return nil
	}

	byID := make(map[int]*models.Film, len(films))
	ids := make([]int, 0, len(films))
	for i := range films {
		byID[films[i].ID] = &films[i]
		ids = append(ids, films[i].ID)
	}

	rows, err := r.pool.Query(ctx, `SELECT film_id, user_id FROM film_likes WHERE film_id = ANY($1)`, ids)
	if err != nil {
		return fmt.Errorf("db: load likes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var filmID, userID int
		if err := rows.Scan(&filmID, &userID); err != nil {
			return fmt.Errorf("db: scan like: %w", err)
		}
		byID[filmID].Likes = append(byID[filmID].Likes, userID)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for i := range films {
		sort.Ints(films[i].Likes)
	}
	return nil
}

// replaceGenres reemplaza el set completo de géneros del film
// (delete + insert dentro de una tx, nunca diff incremental).
func (r *FilmRepository) replaceGenres(ctx context.Context, film *models.Film) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("db: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM film_genres WHERE film_id = $1`, film.ID); err != nil {
		return fmt.Errorf("db: clear genres: %w", err)
	}

	for _, g := range film.Genres {
		_, err := tx.Exec(ctx,
			`INSERT INTO film_genres (film_id, genre_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			film.ID, g.ID,
		)
		if err != nil {
			return fmt.Errorf("db: insert genre %d: %w", g.ID, err)
		}
	}

	return tx.Commit(ctx)
}

func mpaID(m *models.Mpa) any {
	if m == nil {
		return nil
	}
	return m.ID
}
