package core

import "time"

// User represents an account record in the system.
//
// The password hash never leaves the server; it is excluded from every
// JSON response.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Password  string    `json:"-"` // bcrypt hash, never exposed
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserPage is one page of the admin user listing.
type UserPage struct {
	UsersCount int     `json:"usersCount"`
	Users      []*User `json:"users"`
	PageCount  int     `json:"pageCount"`
}
