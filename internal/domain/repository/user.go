package repository

import (
	"context"

	"github.com/invoicehub/invoicehub/internal/domain/model"
)

// UserRepository describes persistence operations for dashboard accounts.
type UserRepository interface {
	Create(ctx context.Context, email, passwordHash string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}
