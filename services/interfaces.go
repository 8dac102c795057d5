package services

import "user-store/models"

// UserRepository defines the interface for user data access
type UserRepository interface {
	InsertUsers(users ...models.User) ([]int64, error)
	GetAllUsers() ([]models.User, error)
	LoadUsersByIDs(ids []int64) ([]models.User, error)
	FindUserByName(first, last string) (*models.User, error)
	DeleteUser(user models.User) error
	CountUsers() (int, error)
}
