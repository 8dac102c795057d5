package setup

import (
	"log/slog"

	"user-store/app"
	"user-store/database"
	"user-store/worker"
)

// InitDatabase opens the SQLite database and runs migrations
func InitDatabase(dbPath string, logger *slog.Logger) (*database.DB, error) {
	db, err := database.New(dbPath)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("database initialized", "path", dbPath)
	return db, nil
}

// InitApp initializes the application with all dependencies
func InitApp(db *database.DB, workers int, logger *slog.Logger) *app.App {
	repo := database.NewRepository(db)

	// Start background worker used by the async demos
	w := worker.NewWorker(workers, logger)
	w.Start()
	logger.Info("background worker started", "workers", workers)

	application := app.New(repo, w, logger)
	logger.Info("application initialized with dependency injection")

	return application
}

// Shutdown performs graceful shutdown of all services
func Shutdown(w *worker.Worker, db *database.DB, logger *slog.Logger) {
	logger.Info("shutting down services...")

	if w != nil {
		w.Stop()
		logger.Info("background worker stopped")
	}

	if db != nil {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
			return
		}
		logger.Info("database closed")
	}
}
