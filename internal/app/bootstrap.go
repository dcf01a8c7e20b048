package app

import (
	"fmt"
	"log"
	"strings"

	"job-board/internal/config"
	"job-board/internal/database"
	"job-board/internal/delivery/http/middleware"
	"job-board/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber *fiber.App
}

func New(cfg config.Config, db database.DB, denylist routes.Denylist) *App {
	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	registerGlobalMiddleware(f)
	routes.NewRegistry(cfg, db, denylist).Register(f)

	return &App{Fiber: f}
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	c, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	app := New(cfg, c.DB, c.Denylist)
	return app, c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App) {
	if app == nil {
		return
	}

	app.Use(middleware.NewErrorMiddleware().Middleware())
	app.Use(middleware.NewAccessLogMiddleware(log.Default()).Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
