package model

import "time"

// Customer is a billable party an invoice references.
type Customer struct {
	ID        string
	Name      string
	Email     string
	CreatedAt time.Time
}
