package domain

import "time"

// User is a registered account. PasswordHash is an Argon2id PHC string; the
// plaintext never crosses the store boundary.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
