package services

import (
	"fmt"

	"user-store/database"
	"user-store/models"
)

// Ensure the sqlite repository satisfies UserRepository
var _ UserRepository = (*database.Repository)(nil)

// UserService handles business logic for users
type UserService struct {
	repo UserRepository
}

// NewUserService creates a new user service
func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Create stores the given users and returns their final uids
func (us *UserService) Create(users []models.User) ([]int64, error) {
	if len(users) == 0 {
		return nil, ErrNoUsers
	}
	return us.repo.InsertUsers(users...)
}

// List retrieves all users
func (us *UserService) List() ([]models.User, error) {
	return us.repo.GetAllUsers()
}

// Load retrieves the users with the given uids, skipping unknown ones
func (us *UserService) Load(ids []int64) ([]models.User, error) {
	return us.repo.LoadUsersByIDs(ids)
}

// Find looks a user up by first and last name
func (us *UserService) Find(first, last string) (*models.User, error) {
	return us.repo.FindUserByName(first, last)
}

// Delete removes the user with the given uid
func (us *UserService) Delete(uid int64) error {
	return us.repo.DeleteUser(models.User{UID: uid})
}

// Count returns how many users are stored
func (us *UserService) Count() (int, error) {
	return us.repo.CountUsers()
}

// Listing renders every stored user as a numbered list
func (us *UserService) Listing() (string, error) {
	users, err := us.repo.GetAllUsers()
	if err != nil {
		return "", err
	}
	return models.FormatUserList(users), nil
}

// DemoUsers are the records written by WriteAndRead
func DemoUsers() []models.User {
	return []models.User{
		models.NewUser("Benjamin", "Blümchen"),
		models.NewUser("Karla", "Kolumna"),
	}
}

// WriteAndRead inserts the demo users and returns the listing of everything stored.
// It blocks on the database and is meant to run off any latency-sensitive goroutine.
func (us *UserService) WriteAndRead() (string, error) {
	if _, err := us.repo.InsertUsers(DemoUsers()...); err != nil {
		return "", fmt.Errorf("failed to write demo users: %w", err)
	}

	listing, err := us.Listing()
	if err != nil {
		return "", fmt.Errorf("failed to read users: %w", err)
	}

	return listing, nil
}
