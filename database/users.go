package database

import (
	"database/sql"
	"fmt"
	"slices"
	"strings"

	"user-store/models"
)

// maxIDsPerQuery keeps IN (...) lists well below SQLite's bound-parameter limit
const maxIDsPerQuery = 500

// ==================== USER OPERATIONS ====================

// InsertUsers stores every user in a single transaction and returns the final
// uids in input order. A zero UID is assigned by the database; any other value
// is used as an explicit key and fails with ErrConstraintViolation if taken.
func (r *Repository) InsertUsers(users ...models.User) ([]int64, error) {
	uids := make([]int64, 0, len(users))
	if len(users) == 0 {
		return uids, nil
	}

	for _, user := range users {
		if user.UID < 0 {
			return nil, fmt.Errorf("%w: invalid uid %d", ErrConstraintViolation, user.UID)
		}
	}

	tx, err := r.db.Begin()
	if err != nil {
		return nil, mapError(fmt.Errorf("failed to begin transaction: %w", err))
	}
	defer tx.Rollback()

	for _, user := range users {
		var result sql.Result
		if user.UID == 0 {
			result, err = tx.Exec(`
				INSERT INTO users (first_name, last_name)
				VALUES (?, ?)
			`, nullString(user.FirstName), nullString(user.LastName))
		} else {
			result, err = tx.Exec(`
				INSERT INTO users (uid, first_name, last_name)
				VALUES (?, ?, ?)
			`, user.UID, nullString(user.FirstName), nullString(user.LastName))
		}
		if err != nil {
			return nil, mapError(fmt.Errorf("failed to insert user %d: %w", user.UID, err))
		}

		uid, err := result.LastInsertId()
		if err != nil {
			return nil, mapError(err)
		}
		uids = append(uids, uid)
	}

	if err := tx.Commit(); err != nil {
		return nil, mapError(fmt.Errorf("failed to commit users: %w", err))
	}

	return uids, nil
}

// GetAllUsers returns every stored user ordered by uid
func (r *Repository) GetAllUsers() ([]models.User, error) {
	rows, err := r.db.Query(`
		SELECT uid, first_name, last_name
		FROM users
		ORDER BY uid ASC
	`)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	return collectUsers(rows)
}

// LoadUsersByIDs returns the users whose uid is in ids. Unknown ids are skipped.
func (r *Repository) LoadUsersByIDs(ids []int64) ([]models.User, error) {
	// Initialize with empty slice to avoid returning nil
	users := make([]models.User, 0, len(ids))
	if len(ids) == 0 {
		return users, nil
	}

	unique := slices.Clone(ids)
	slices.Sort(unique)
	unique = slices.Compact(unique)

	for chunk := range slices.Chunk(unique, maxIDsPerQuery) {
		found, err := r.loadUserChunk(chunk)
		if err != nil {
			return nil, err
		}
		users = append(users, found...)
	}

	return users, nil
}

func (r *Repository) loadUserChunk(ids []int64) ([]models.User, error) {
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := r.db.Query(`
		SELECT uid, first_name, last_name
		FROM users
		WHERE uid IN (`+placeholders+`)
		ORDER BY uid ASC
	`, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	return collectUsers(rows)
}

// FindUserByName returns the first user (by uid) whose names match the given
// LIKE patterns. Without % or _ the match is exact, including case.
func (r *Repository) FindUserByName(first, last string) (*models.User, error) {
	row := r.db.QueryRow(`
		SELECT uid, first_name, last_name
		FROM users
		WHERE first_name LIKE ? AND last_name LIKE ?
		ORDER BY uid ASC
		LIMIT 1
	`, first, last)

	user, err := scanUser(row)
	if err != nil {
		return nil, mapError(err)
	}

	return &user, nil
}

// DeleteUser removes the record with user.UID. Deleting a uid that is not
// stored returns ErrNotFound.
func (r *Repository) DeleteUser(user models.User) error {
	result, err := r.db.Exec("DELETE FROM users WHERE uid = ?", user.UID)
	if err != nil {
		return mapError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return mapError(err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: user %d", ErrNotFound, user.UID)
	}

	return nil
}

// CountUsers returns the number of stored users
func (r *Repository) CountUsers() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return 0, mapError(err)
	}
	return count, nil
}

func collectUsers(rows *sql.Rows) ([]models.User, error) {
	users := make([]models.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, mapError(err)
		}
		users = append(users, user)
	}

	return users, mapError(rows.Err())
}

func scanUser(s scanner) (models.User, error) {
	var user models.User
	var firstName, lastName sql.NullString

	if err := s.Scan(&user.UID, &firstName, &lastName); err != nil {
		return models.User{}, err
	}

	if firstName.Valid {
		user.FirstName = &firstName.String
	}
	if lastName.Valid {
		user.LastName = &lastName.String
	}

	return user, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
