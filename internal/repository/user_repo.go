package repository

import (
	"context"
	"fmt"
	"time"

	"filmoteca/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, email, login, name, birthday FROM users`)
	if err != nil {
		return nil, fmt.Errorf("db: find all users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserRepository) FindByID(ctx context.Context, id int) (*models.User, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, email, login, name, birthday FROM users WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("db: find user: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	u, err := scanUser(rows)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	birthday, err := time.Parse(dateLayout, user.Birthday)
	if err != nil {
		return nil, fmt.Errorf("db: birthday inválida %q: %w", user.Birthday, err)
	}

	q := `
		INSERT INTO users (email, login, name, birthday)
		VALUES (@email, @login, @name, @birthday)
		RETURNING id
	`
	args := pgx.NamedArgs{
		"email":    user.Email,
		"login":    user.Login,
		"name":     user.Name,
		"birthday": birthday,
	}

	if err := r.pool.QueryRow(ctx, q, args).Scan(&user.ID); err != nil {
		return nil, fmt.Errorf("db: insert user: %w", err)
	}
	return user, nil
}

func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	birthday, err := time.Parse(dateLayout, user.Birthday)
	if err != nil {
		return fmt.Errorf("db: birthday inválida %q: %w", user.Birthday, err)
	}

	q := `UPDATE users SET email = @email, login = @login, name = @name, birthday = @birthday WHERE id = @id`
	args := pgx.NamedArgs{
		"id":       user.ID,
		"email":    user.Email,
		"login":    user.Login,
		"name":     user.Name,
		"birthday": birthday,
	}

	tag, err := r.pool.Exec(ctx, q, args)
	if err != nil {
		return fmt.Errorf("db: update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.NewNotFound("user", user.ID)
	}
	return nil
}

func (r *UserRepository) Exists(ctx context.Context, id int) (bool, error) {
	var found bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, id).Scan(&found)
	if err != nil {
		return false, fmt.Errorf("db: user exists: %w", err)
	}
	return found, nil
}

func scanUser(rows pgx.Rows) (models.User, error) {
	var (
		u        models.User
		birthday time.Time
	)
	if err := rows.Scan(&u.ID, &u.Email, &u.Login, &u.Name, &birthday); err != nil {
		return u, fmt.Errorf("db: scan user: %w", err)
	}
	u.Birthday = birthday.Format(dateLayout)
	return u, nil
}
