package app

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"job-seeker/internal/config"
	"job-seeker/internal/database"
	"job-seeker/internal/database/mongodb"
	"job-seeker/internal/delivery/http/middleware"
	"job-seeker/internal/delivery/http/routes"
	"job-seeker/internal/repository"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
)

type App struct {
	Fiber *fiber.App
	DB    database.DB
}

func New(cfg config.Config, db database.DB, logger *log.Logger) *App {
	f := fiber.New(fiber.Config{AppName: "job-seeker"})

	registerGlobalMiddleware(f, cfg, logger)
	routes.NewRegistry(cfg, db).Register(f)

	return &App{Fiber: f, DB: db}
}

// Bootstrap opens the store connection, ensures indexes, and builds the HTTP
// app. The returned cleanup closes the store handle on shutdown.
func Bootstrap(cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := mongodb.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, nil, err
	}

	if err := repository.NewMongoApplicationRepository(db).EnsureIndexes(ctx); err != nil {
		_ = db.Close(ctx)
		return nil, nil, err
	}

	app := New(cfg, db, logger)

	cleanup := func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return db.Close(ctx)
	}
	return app, cleanup, nil
}

func registerGlobalMiddleware(f *fiber.App, cfg config.Config, logger *log.Logger) {
	if f == nil {
		return
	}

	f.Use(middleware.NewErrorMiddleware(logger).Middleware())
	f.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowCredentials: true,
	}))
	f.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
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
