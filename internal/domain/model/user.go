package model

import "time"

// User represents a dashboard account allowed to manage invoices.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
