package handlers

import (
	"strconv"
	"strings"

	"user-store/app"
	"user-store/models"

	"github.com/gofiber/fiber/v2"
)

// GetUsers lists every user, or only those named by ?ids=1,2,3
func GetUsers(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		idsParam := c.Query("ids")
		if idsParam == "" {
			users, err := a.Users.List()
			if err != nil {
				return storeError(c, "Failed to fetch users", err)
			}
			return success(c, fiber.Map{"users": users})
		}

		ids, err := parseIDs(idsParam)
		if err != nil {
			return badRequest(c, "ids must be a comma-separated list of integers")
		}

		users, err := a.Users.Load(ids)
		if err != nil {
			return storeError(c, "Failed to fetch users", err)
		}

		return success(c, fiber.Map{"users": users})
	}
}

// CreateUsers inserts a batch of users and returns their uids
func CreateUsers(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.InsertUsersRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		// Validate request
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		uids, err := a.Users.Create(req.ToUsers())
		if err != nil {
			return storeError(c, "Failed to create users", err)
		}

		return created(c, fiber.Map{"uids": uids})
	}
}

// FindUser looks a user up by ?first=&last= (LIKE patterns)
func FindUser(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.FindUserRequest
		if err := c.QueryParser(&req); err != nil {
			return badRequest(c, "Invalid query")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		user, err := a.Users.Find(req.First, req.Last)
		if err != nil {
			return storeError(c, "Failed to find user", err)
		}

		return success(c, fiber.Map{"user": user})
	}
}

// DeleteUser removes a user by uid
func DeleteUser(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := strconv.ParseInt(c.Params("uid"), 10, 64)
		if err != nil || uid <= 0 {
			return badRequest(c, "uid must be a positive integer")
		}

		if err := a.Users.Delete(uid); err != nil {
			return storeError(c, "Failed to delete user", err)
		}

		return success(c, fiber.Map{"message": "User deleted successfully"})
	}
}

// GetListing returns the numbered "n: first last" listing as plain text
func GetListing(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		listing, err := a.Users.Listing()
		if err != nil {
			return storeError(c, "Failed to build listing", err)
		}

		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.SendString(listing)
	}
}

// Health reports liveness together with the number of stored users
func Health(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		count, err := a.Users.Count()
		if err != nil {
			return storeError(c, "Failed to count users", err)
		}

		return success(c, fiber.Map{"status": "ok", "users": count})
	}
}

func parseIDs(param string) ([]int64, error) {
	parts := strings.Split(param, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
