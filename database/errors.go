package database

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"
)

// Store errors. Driver failures are wrapped so that both the sentinel and the
// original cause stay reachable through errors.Is / errors.As.
var (
	// ErrNotFound is returned when a lookup or delete has no matching record.
	ErrNotFound = errors.New("record not found")

	// ErrConstraintViolation is returned when a write breaks a table constraint,
	// most commonly an explicit uid that is already taken.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrStorageUnavailable is returned when the database file cannot be
	// opened, read or written, or the handle has been closed.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// mapError translates sqlite and database/sql errors into the store errors above.
// Errors it does not recognise are returned unchanged.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrConstraintViolation) || errors.Is(err, ErrStorageUnavailable) {
		return err
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code {
		case sqlite3.ErrConstraint:
			return fmt.Errorf("%w: %w", ErrConstraintViolation, err)
		case sqlite3.ErrCantOpen,
			sqlite3.ErrIoErr,
			sqlite3.ErrReadonly,
			sqlite3.ErrFull,
			sqlite3.ErrCorrupt,
			sqlite3.ErrNotADB,
			sqlite3.ErrPerm,
			sqlite3.ErrBusy,
			sqlite3.ErrLocked:
			return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
		}
	}

	// database/sql does not export its "closed" error
	if errors.Is(err, sql.ErrConnDone) || strings.Contains(err.Error(), "database is closed") {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	return err
}

// IsNotFound reports whether err is, or wraps, ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConstraintViolation reports whether err is, or wraps, ErrConstraintViolation.
func IsConstraintViolation(err error) bool {
	return errors.Is(err, ErrConstraintViolation)
}

// IsStorageUnavailable reports whether err is, or wraps, ErrStorageUnavailable.
func IsStorageUnavailable(err error) bool {
	return errors.Is(err, ErrStorageUnavailable)
}
