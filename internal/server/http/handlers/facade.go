package handlers

import (
	"context"

	"github.com/invoicehub/invoicehub/internal/domain/model"
	"github.com/invoicehub/invoicehub/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, email, password string) (string, error)
	ParseSession(token string) (string, error)
}

// InvoiceFacade encapsulates invoice operations exposed via HTTP.
type InvoiceFacade interface {
	CreateInvoice(ctx context.Context, form map[string]string) *usecase.MutationOutcome
	UpdateInvoice(ctx context.Context, id string, form map[string]string) *usecase.MutationOutcome
	DeleteInvoice(ctx context.Context, id string) *usecase.MutationOutcome
	Invoices(ctx context.Context) ([]model.Invoice, error)
	Invoice(ctx context.Context, id string) (*model.Invoice, error)
	Overview(ctx context.Context) (*model.DashboardSummary, error)
}

// CustomerFacade provides the customer data behind the invoice form.
type CustomerFacade interface {
	Customers(ctx context.Context) ([]model.Customer, error)
}

// DashboardFacade aggregates the full set of operations used across handlers.
type DashboardFacade interface {
	AuthFacade
	InvoiceFacade
	CustomerFacade
}
