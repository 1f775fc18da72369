package domain

import "time"

// Account is the identity boundary for all campaigns.
type Account struct {
	ID           int64
	Handle       string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
