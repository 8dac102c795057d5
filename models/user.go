package models

import (
	"fmt"
	"strings"
)

// User is the single record kind kept in the store.
// UID 0 means "not yet assigned"; the store picks the next free id on insert.
type User struct {
	UID       int64   `json:"uid"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

// NewUser builds an unassigned user with both names set.
func NewUser(firstName, lastName string) User {
	return User{
		FirstName: &firstName,
		LastName:  &lastName,
	}
}

// String renders the user the way the listing shows it. Missing names print as "null".
func (u User) String() string {
	return fmt.Sprintf("%s %s", nameOrNull(u.FirstName), nameOrNull(u.LastName))
}

func nameOrNull(name *string) string {
	if name == nil {
		return "null"
	}
	return *name
}

// FormatUserList numbers users from 1 and joins them with newlines.
func FormatUserList(users []User) string {
	lines := make([]string, 0, len(users))
	for idx, user := range users {
		lines = append(lines, fmt.Sprintf("%d: %s", idx+1, user))
	}
	return strings.Join(lines, "\n")
}

type UserInput struct {
	UID       int64   `json:"uid" validate:"gte=0"`
	FirstName *string `json:"first_name" validate:"omitempty,max=100,personname"`
	LastName  *string `json:"last_name" validate:"omitempty,max=100,personname"`
}

type InsertUsersRequest struct {
	Users []UserInput `json:"users" validate:"required,min=1,max=500,dive"`
}

type FindUserRequest struct {
	First string `json:"first" query:"first" validate:"required,max=100,namepattern"`
	Last  string `json:"last" query:"last" validate:"required,max=100,namepattern"`
}

// ToUsers converts request payloads into store records.
func (r InsertUsersRequest) ToUsers() []User {
	users := make([]User, 0, len(r.Users))
	for _, in := range r.Users {
		users = append(users, User{
			UID:       in.UID,
			FirstName: in.FirstName,
			LastName:  in.LastName,
		})
	}
	return users
}
