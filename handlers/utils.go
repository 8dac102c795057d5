package handlers

import (
	"errors"
	"log/slog"

	"user-store/database"
	"user-store/middleware"
	"user-store/validator"

	"github.com/gofiber/fiber/v2"
)

func success(c *fiber.Ctx, data fiber.Map) error {
	return c.JSON(data)
}

func created(c *fiber.Ctx, data fiber.Map) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": message})
}

func conflict(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": message})
}

func validationError(c *fiber.Ctx, err error) error {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Validation failed",
			"fields": errs,
		})
	}
	return badRequest(c, err.Error())
}

func serverErrorWithDetails(c *fiber.Ctx, message string, err error) error {
	slog.Error("server error",
		"request_id", middleware.GetRequestID(c),
		"method", c.Method(),
		"path", c.Path(),
		"message", message,
		"error", err,
	)

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": message})
}

// storeError maps store failures onto HTTP statuses
func storeError(c *fiber.Ctx, message string, err error) error {
	switch {
	case database.IsNotFound(err):
		return notFound(c, "User not found")
	case database.IsConstraintViolation(err):
		return conflict(c, "User id already taken")
	case database.IsStorageUnavailable(err):
		slog.Error("storage unavailable",
			"request_id", middleware.GetRequestID(c),
			"path", c.Path(),
			"error", err,
		)
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Storage unavailable"})
	default:
		return serverErrorWithDetails(c, message, err)
	}
}
