package app

import (
	"log/slog"

	"user-store/database"
	"user-store/services"
	"user-store/validator"
	"user-store/worker"
)

// App holds all application dependencies
// This struct is the central point for dependency injection
type App struct {
	Repo      *database.Repository
	Users     *services.UserService
	Worker    *worker.Worker
	Validator *validator.Validator
	Logger    *slog.Logger
}

// New creates a new App instance with all dependencies
func New(repo *database.Repository, w *worker.Worker, logger *slog.Logger) *App {
	return &App{
		Repo:      repo,
		Users:     services.NewUserService(repo),
		Worker:    w,
		Validator: validator.New(),
		Logger:    logger,
	}
}
