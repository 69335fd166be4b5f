package routes

import (
	"job-seeker/internal/config"
	"job-seeker/internal/database"
	"job-seeker/internal/delivery/http/handler"
	"job-seeker/internal/delivery/http/middleware"
	"job-seeker/internal/pkg/jwt"
	"job-seeker/internal/repository"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	auth    *handler.AuthHandler
	jobs    *handler.JobHandler
	seekers *handler.SeekerHandler
	health  *handler.HealthHandler
	authMw  *middleware.AuthMiddleware
}

func NewRegistry(cfg config.Config, db database.DB) *Registry {
	jwtSvc := jwt.NewHMACService(cfg.JWT.AccessSecret, cfg.JWT.AccessExpiresIn)

	jobRepo := repository.NewMongoJobRepository(db)
	applicationRepo := repository.NewMongoApplicationRepository(db)

	return &Registry{
		auth:    handler.NewAuthHandler(jwtSvc),
		jobs:    handler.NewJobHandler(jobRepo, applicationRepo),
		seekers: handler.NewSeekerHandler(applicationRepo, jobRepo),
		health:  handler.NewHealthHandler(),
		authMw:  middleware.NewAuthMiddleware(jwtSvc),
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	gate := r.authMw.Middleware()

	app.Get("/", r.health.Liveness)

	app.Post("/jwt", r.auth.IssueToken)
	app.Post("/logout", r.auth.Logout)

	app.Get("/jobs", r.jobs.List)
	app.Get("/jobs/:id", r.jobs.GetByID)
	app.Get("/jobFilter", r.jobs.FilterByOwner, gate)
	app.Post("/jobs", r.jobs.Create, gate)
	app.Delete("/deleteJob/:id", r.jobs.Delete)
	app.Patch("/updatePost/:id", r.jobs.Update)

	app.Get("/seekers", r.seekers.ListForSeeker)
	app.Post("/seekers", r.seekers.Apply)
}
