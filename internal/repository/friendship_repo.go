package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// FriendshipRepository guarda la tabla dirigida de amistades:
// una fila (user_id, friend_id) por edge saliente.
type FriendshipRepository struct {
	pool *pgxpool.Pool
}

func NewFriendshipRepository(pool *pgxpool.Pool) *FriendshipRepository {
	return &FriendshipRepository{pool: pool}
}

func (r *FriendshipRepository) AddFriend(ctx context.Context, userID, friendID int) error {
	q := `INSERT INTO friendships (user_id, friend_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`
	_, err := r.pool.Exec(ctx, q, userID, friendID)
	if err != nil {
		return fmt.Errorf("db: add friend: %w", err)
	}
	return nil
}

func (r *FriendshipRepository) RemoveFriend(ctx context.Context, userID, friendID int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM friendships WHERE user_id = $1 AND friend_id = $2`, userID, friendID)
	if err != nil {
		return fmt.Errorf("db: remove friend: %w", err)
	}
	return nil
}

func (r *FriendshipRepository) FriendIDs(ctx context.Context, userID int) ([]int, error) {
	rows, err := r.pool.Query(ctx, `SELECT friend_id FROM friendships WHERE user_id = $1 ORDER BY friend_id`, userID)
	if err != nil {
		return nil, fmt.Errorf("db: friend ids: %w", err)
	}
	defer rows.Close()

	out := []int{}
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("db: scan friend id: %w", err)
		}
		out = append(out, id)
	}
	return out, rows.Err()
}
