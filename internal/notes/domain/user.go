package domain

import "time"

// MaxBioLen is counted in characters, not bytes.
const MaxBioLen = 500

type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // argon2 encoded
	Bio          string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
