package auth

import "time"

// Strategy issues and verifies session tokens for dashboard users.
type Strategy interface {
	IssueToken(userID string) (string, error)
	ParseToken(token string) (string, error)
	Name() string
}

type Options struct {
	TTL time.Duration
}
