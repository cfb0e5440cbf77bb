package repository

import (
	"context"

	"filmoteca/internal/models"
)

// Los storages devuelven (nil, nil) cuando la entidad no existe;
// la capa de servicio decide si eso es un NotFound.

type FilmStorage interface {
	FindAll(ctx context.Context) ([]models.Film, error)
	FindByID(ctx context.Context, id int) (*models.Film, error)
	Create(ctx context.Context, film *models.Film) (*models.Film, error)
	Update(ctx context.Context, film *models.Film) error
	Exists(ctx context.Context, id int) (bool, error)
	AddLike(ctx context.Context, filmID, userID int) error
	RemoveLike(ctx context.Context, filmID, userID int) error
}

type UserStorage interface {
	FindAll(ctx context.Context) ([]models.User, error)
	FindByID(ctx context.Context, id int) (*models.User, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Exists(ctx context.Context, id int) (bool, error)
}

// FriendshipStorage guarda edges dirigidos: AddFriend(a, b) registra
// solo a→b, nunca el inverso.
type FriendshipStorage interface {
	AddFriend(ctx context.Context, userID, friendID int) error
	RemoveFriend(ctx context.Context, userID, friendID int) error
	FriendIDs(ctx context.Context, userID int) ([]int, error)
}

type GenreStorage interface {
	FindAll(ctx context.Context) ([]models.Genre, error)
	FindByID(ctx context.Context, id int) (*models.Genre, error)
}

type MpaStorage interface {
	FindAll(ctx context.Context) ([]models.Mpa, error)
	FindByID(ctx context.Context, id int) (*models.Mpa, error)
}
