package models

import "time"

// User roles and statuses
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleUser    = "user"

	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// User represents a back-office user in the system
type User struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	Department string    `json:"department"`
	Phone      string    `json:"phone"`
	Status     string    `json:"status"`
	LastLogin  time.Time `json:"last_login"`
	CreatedAt  time.Time `json:"created_at"`
}

// RecordID returns the user identifier.
func (u User) RecordID() string { return u.ID }

// WithIdentity returns a copy of the user stamped with a store-assigned
// id and creation timestamp. LastLogin starts at the creation time.
func (u User) WithIdentity(id string, createdAt time.Time) User {
	u.ID = id
	u.CreatedAt = createdAt
	if u.LastLogin.IsZero() {
		u.LastLogin = createdAt
	}
	return u
}
