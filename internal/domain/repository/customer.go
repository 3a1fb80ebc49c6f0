package repository

import (
	"context"

	"github.com/invoicehub/invoicehub/internal/domain/model"
)

// CustomerRepository describes read access to the customers table.
type CustomerRepository interface {
	List(ctx context.Context) ([]model.Customer, error)
	GetByID(ctx context.Context, id string) (*model.Customer, error)
}
