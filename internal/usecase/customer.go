package usecase

import (
	"context"

	"github.com/invoicehub/invoicehub/internal/domain/model"
	"github.com/invoicehub/invoicehub/internal/domain/repository"
)

// CustomerUseCase exposes the customer data the invoice forms need.
type CustomerUseCase struct {
	customers repository.CustomerRepository
}

// NewCustomerUseCase constructs CustomerUseCase.
func NewCustomerUseCase(customers repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{customers: customers}
}

// List returns customers sorted by name.
func (u *CustomerUseCase) List(ctx context.Context) ([]model.Customer, error) {
	return u.customers.List(ctx)
}

// Get fetches a customer by id.
func (u *CustomerUseCase) Get(ctx context.Context, id string) (*model.Customer, error) {
	return u.customers.GetByID(ctx, id)
}
