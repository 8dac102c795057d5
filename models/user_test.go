package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatUserList(t *testing.T) {
	tests := []struct {
		name  string
		users []User
		want  string
	}{
		{
			name:  "Empty list",
			users: nil,
			want:  "",
		},
		{
			name: "Demo users",
			users: []User{
				NewUser("Benjamin", "Blümchen"),
				NewUser("Karla", "Kolumna"),
			},
			want: "1: Benjamin Blümchen\n2: Karla Kolumna",
		},
		{
			name: "Missing names print as null",
			users: []User{
				{UID: 7, LastName: strPtr("Kolumna")},
			},
			want: "1: null Kolumna",
		},
		{
			name: "Empty string is not null",
			users: []User{
				{UID: 1, FirstName: strPtr(""), LastName: strPtr("")},
			},
			want: "1:  ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatUserList(tt.users))
		})
	}
}

func TestInsertUsersRequestToUsers(t *testing.T) {
	req := InsertUsersRequest{Users: []UserInput{
		{UID: 0, FirstName: strPtr("Karla")},
		{UID: 42, LastName: strPtr("Blümchen")},
	}}

	users := req.ToUsers()

	assert.Len(t, users, 2)
	assert.Equal(t, int64(0), users[0].UID)
	assert.Equal(t, "Karla", *users[0].FirstName)
	assert.Nil(t, users[0].LastName)
	assert.Equal(t, int64(42), users[1].UID)
	assert.Nil(t, users[1].FirstName)
}

func strPtr(s string) *string {
	return &s
}
