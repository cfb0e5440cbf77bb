package db

import (
	"context"
	"log"
	"time"

	"filmoteca/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

var pool *pgxpool.Pool

func InitPostgres(cfg *config.Config) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	p, err := pgxpool.New(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("[postgres] error conectando: %v", err)
	}
	if err := p.Ping(ctx); err != nil {
		log.Fatalf("[postgres] ping falló: %v", err)
	}

	pool = p
	log.Println("[postgres] conectado")
}

func Pool() *pgxpool.Pool {
	return pool
}
