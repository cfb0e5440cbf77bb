package main

import (
	"log"
	"net/http"

	"filmoteca/internal/cache"
	"filmoteca/internal/config"
	"filmoteca/internal/db"
	"filmoteca/internal/handler"
	"filmoteca/internal/repository"
	"filmoteca/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func main() {
	cfg := config.Load()

	cache.InitRedis(cfg)

	// =============================================
	// Storage: memoria o Postgres según STORAGE
	// =============================================
	var (
		films   repository.FilmStorage
		users   repository.UserStorage
		friends repository.FriendshipStorage
		genres  repository.GenreStorage
		mpa     repository.MpaStorage
	)

	switch cfg.Storage {
	case "postgres":
		db.InitPostgres(cfg)
		pool := db.Pool()
		films = repository.NewFilmRepository(pool)
		users = repository.NewUserRepository(pool)
		friends = repository.NewFriendshipRepository(pool)
		genres = repository.NewGenreRepository(pool)
		mpa = repository.NewMpaRepository(pool)
	case "memory":
		films = repository.NewMemoryFilmStorage()
		users = repository.NewMemoryUserStorage()
		friends = repository.NewMemoryFriendshipStorage()
		genres = repository.NewMemoryGenreStorage()
		mpa = repository.NewMemoryMpaStorage()
	default:
		log.Fatalf("STORAGE desconocido: %q (usar memory|postgres)", cfg.Storage)
	}

	// services
	filmSvc := service.NewFilmService(films, users, mpa, genres)
	userSvc := service.NewUserService(users, friends)
	genreSvc := service.NewGenreService(genres)
	mpaSvc := service.NewMpaService(mpa)

	// handlers
	filmH := handler.NewFilmHandler(filmSvc)
	userH := handler.NewUserHandler(userSvc)
	genreH := handler.NewGenreHandler(genreSvc)
	mpaH := handler.NewMpaHandler(mpaSvc)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", handler.Health)

	r.Route("/films", func(r chi.Router) {
		r.Get("/", filmH.List)
		r.Post("/", filmH.Create)
		r.Put("/", filmH.Update)
		r.Get("/popular", filmH.Popular)
		r.Get("/{id}", filmH.Get)
		r.Put("/{id}/like/{userId}", filmH.AddLike)
		r.Delete("/{id}/like/{userId}", filmH.RemoveLike)
	})

	r.Route("/users", func(r chi.Router) {
		r.Get("/", userH.List)
		r.Post("/", userH.Create)
		r.Put("/", userH.Update)
		r.Get("/{id}", userH.Get)
		r.Get("/{id}/friends", userH.Friends)
		r.Get("/{id}/friends/common/{otherId}", userH.CommonFriends)
		r.Put("/{id}/friends/{friendId}", userH.AddFriend)
		r.Delete("/{id}/friends/{friendId}", userH.RemoveFriend)
	})

	r.Route("/genres", func(r chi.Router) {
		r.Get("/", genreH.List)
		r.Get("/{id}", genreH.Get)
	})

	r.Route("/mpa", func(r chi.Router) {
		r.Get("/", mpaH.List)
		r.Get("/{id}", mpaH.Get)
	})

	log.Printf("HTTP escuchando en :%s (storage=%s)", cfg.HTTPPort, cfg.Storage)
	log.Fatal(http.ListenAndServe(":"+cfg.HTTPPort, r))
}
