package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"user-store/app"
	"user-store/config"
	"user-store/config/setup"
	"user-store/demo"
	"user-store/worker"

	"github.com/gofiber/fiber/v2"
)

func main() {
	config.Load()

	logger := setupLogger()
	slog.SetDefault(logger)

	db, err := setup.InitDatabase(config.AppConfig.DBPath, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}

	application := setup.InitApp(db, config.AppConfig.Workers, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The main goroutine owns result delivery for the task demo
	looper := worker.NewLooper(16)
	screen := worker.NewRef[demo.Notifier](demo.LogNotifier{Logger: logger})

	var server *fiber.App
	if config.AppConfig.Serve {
		server = setup.NewFiberApp(logger)
		setup.ApplyMiddleware(server, logger)
		setup.RegisterRoutes(server, application)

		logger.Info("starting server", "port", config.AppConfig.Port, "env", config.AppConfig.Env)

		go func() {
			if err := server.Listen(":" + config.AppConfig.Port); err != nil {
				logger.Error("server failed", "error", err)
				stop()
			}
		}()
	}

	waitForTask := runDemos(ctx, application, looper, screen, logger)

	if server != nil || waitForTask {
		if err := looper.Run(ctx); err != nil {
			logger.Info("shutting down", "reason", err)
		}
	}
	screen.Clear()
	looper.Quit()

	if server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.ShutdownWithContext(shutdownCtx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
		logger.Info("server stopped")
	}

	setup.Shutdown(application.Worker, db, logger)
}

// runDemos runs the demos selected by DEMO_MODE. It reports whether a task
// demo result is still pending delivery on the looper.
func runDemos(ctx context.Context, a *app.App, looper *worker.Looper, screen *worker.Ref[demo.Notifier], logger *slog.Logger) bool {
	mode := config.AppConfig.DemoMode
	notifier := demo.LogNotifier{Logger: logger}

	if mode == "all" || mode == "basic" {
		if err := demo.Basic(a.Users, notifier); err != nil {
			logger.Error("basic demo failed", "error", err)
		}
	}

	if mode == "all" || mode == "coroutine" {
		if err := demo.Coroutine(ctx, a.Worker, a.Users, notifier); err != nil {
			logger.Error("coroutine demo failed", "error", err)
		}
	}

	if mode == "all" || mode == "task" {
		// Without a server the looper only lives until the task result is in
		var then func()
		if !config.AppConfig.Serve {
			then = looper.Quit
		}

		if err := demo.Task(a.Worker, looper, a.Users, screen, logger, then); err != nil {
			logger.Error("task demo failed", "error", err)
			return false
		}
		return true
	}

	return false
}

func setupLogger() *slog.Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level:     getLogLevel(),
		AddSource: config.AppConfig.Env == "development",
	}

	if config.AppConfig.Env == "production" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}

func getLogLevel() slog.Level {
	switch config.AppConfig.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
