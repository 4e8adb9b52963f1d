package domain

import "time"

// User is the domain model for account holders. Email is stored
// lower-cased; the password exists only as a bcrypt hash.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
