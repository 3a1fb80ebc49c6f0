package test

import (
	"errors"
)

// HasherStub provides deterministic hashing for tests.
type HasherStub struct {
	HashFn    func(string) (string, error)
	CompareFn func(string, string) error
	Compared  []string
}

// Hash returns a predictable hash for the supplied password.
func (h *HasherStub) Hash(password string) (string, error) {
	if h.HashFn != nil {
		return h.HashFn(password)
	}
	return "hash:" + password, nil
}

// Compare validates password against stored hash and records the hash used.
func (h *HasherStub) Compare(hash string, password string) error {
	h.Compared = append(h.Compared, hash)
	if h.CompareFn != nil {
		return h.CompareFn(hash, password)
	}
	if hash != "hash:"+password {
		return errors.New("mismatch")
	}
	return nil
}

// StrategyStub issues and parses tokens via function overrides.
type StrategyStub struct {
	IssueFn func(string) (string, error)
	ParseFn func(string) (string, error)
	NameVal string
}

// IssueToken returns deterministic tokens for tests.
func (s StrategyStub) IssueToken(userID string) (string, error) {
	if s.IssueFn != nil {
		return s.IssueFn(userID)
	}
	return "token", nil
}

// ParseToken parses previously issued token strings.
func (s StrategyStub) ParseToken(token string) (string, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return "user-1", nil
}

// Name returns the strategy identifier used in tests.
func (s StrategyStub) Name() string {
	if s.NameVal != "" {
		return s.NameVal
	}
	return "stub"
}

// SessionParserStub resolves session tokens in middleware tests.
type SessionParserStub struct {
	UserID string
	Err    error
}

// ParseSession returns the configured user id or error.
func (s SessionParserStub) ParseSession(token string) (string, error) {
	if s.Err != nil {
		return "", s.Err
	}
	if s.UserID == "" {
		return "user-1", nil
	}
	return s.UserID, nil
}
