package app

import (
	"context"
	"log"
	"time"

	"job-board/internal/config"
	"job-board/internal/database"
	"job-board/internal/database/migration"
	dbpostgres "job-board/internal/database/postgres"
	"job-board/internal/infrastructure/cache"
)

type Container struct {
	Config   config.Config
	DB       database.DB
	Denylist *cache.TokenDenylist
}

func NewContainer(cfg config.Config) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := (migration.Runner{}).Run(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	denylist := cache.NewTokenDenylist(cfg.Redis, log.Default())

	return &Container{Config: cfg, DB: db, Denylist: denylist}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Denylist != nil {
		_ = c.Denylist.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
