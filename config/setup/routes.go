package setup

import (
	"user-store/app"
	"user-store/handlers"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers all application routes
func RegisterRoutes(fiberApp *fiber.App, application *app.App) {
	fiberApp.Get("/health", handlers.Health(application))

	api := fiberApp.Group("/api")

	api.Get("/users", handlers.GetUsers(application))
	api.Post("/users", handlers.CreateUsers(application))
	api.Get("/users/search", handlers.FindUser(application))
	api.Get("/users/listing", handlers.GetListing(application))
	api.Delete("/users/:uid", handlers.DeleteUser(application))
}
