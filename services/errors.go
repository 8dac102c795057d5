package services

import (
	"errors"

	"user-store/database"
)

// Common service-level errors. Store errors are re-exported so callers above
// the service layer do not need to import the database package.
var (
	ErrUserNotFound       = database.ErrNotFound
	ErrUIDTaken           = database.ErrConstraintViolation
	ErrStorageUnavailable = database.ErrStorageUnavailable
	ErrNoUsers            = errors.New("no users given")
)
