package facades

import (
	"context"

	"github.com/invoicehub/invoicehub/internal/domain/model"
	"github.com/invoicehub/invoicehub/internal/usecase"
)

// AuthFacadeStub provides controllable behaviour for auth endpoints.
type AuthFacadeStub struct {
	LoginFn    func(context.Context, string, string) (string, error)
	RegisterFn func(context.Context, string, string) (string, error)
	ParseFn    func(string) (string, error)
}

// Login delegates to provided function or returns a default token.
func (s AuthFacadeStub) Login(ctx context.Context, email, password string) (string, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, email, password)
	}
	return "token", nil
}

// Register delegates to provided function or returns a default token.
func (s AuthFacadeStub) Register(ctx context.Context, email, password string) (string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, email, password)
	}
	return "token", nil
}

// ParseSession resolves tokens to a fixed user id unless overridden.
func (s AuthFacadeStub) ParseSession(token string) (string, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return "user-1", nil
}

// InvoiceFacadeStub simulates invoice pipelines for handler tests.
type InvoiceFacadeStub struct {
	CreateFn   func(context.Context, map[string]string) *usecase.MutationOutcome
	UpdateFn   func(context.Context, string, map[string]string) *usecase.MutationOutcome
	DeleteFn   func(context.Context, string) *usecase.MutationOutcome
	InvoicesFn func(context.Context) ([]model.Invoice, error)
	InvoiceFn  func(context.Context, string) (*model.Invoice, error)
	OverviewFn func(context.Context) (*model.DashboardSummary, error)
}

// CreateInvoice executes override or reports success.
func (s InvoiceFacadeStub) CreateInvoice(ctx context.Context, form map[string]string) *usecase.MutationOutcome {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, form)
	}
	return &usecase.MutationOutcome{Redirect: "/dashboard/invoices"}
}

// UpdateInvoice executes override or reports success.
func (s InvoiceFacadeStub) UpdateInvoice(ctx context.Context, id string, form map[string]string) *usecase.MutationOutcome {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, form)
	}
	return &usecase.MutationOutcome{Redirect: "/dashboard/invoices"}
}

// DeleteInvoice executes override or reports success.
func (s InvoiceFacadeStub) DeleteInvoice(ctx context.Context, id string) *usecase.MutationOutcome {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return &usecase.MutationOutcome{}
}

// Invoices returns configured invoices.
func (s InvoiceFacadeStub) Invoices(ctx context.Context) ([]model.Invoice, error) {
	if s.InvoicesFn != nil {
		return s.InvoicesFn(ctx)
	}
	return []model.Invoice{{ID: "inv-1"}}, nil
}

// Invoice returns a configured invoice by id.
func (s InvoiceFacadeStub) Invoice(ctx context.Context, id string) (*model.Invoice, error) {
	if s.InvoiceFn != nil {
		return s.InvoiceFn(ctx, id)
	}
	return &model.Invoice{ID: id}, nil
}

// Overview returns configured dashboard figures.
func (s InvoiceFacadeStub) Overview(ctx context.Context) (*model.DashboardSummary, error) {
	if s.OverviewFn != nil {
		return s.OverviewFn(ctx)
	}
	return &model.DashboardSummary{}, nil
}

// CustomerFacadeStub simulates customer reads.
type CustomerFacadeStub struct {
	CustomersFn func(context.Context) ([]model.Customer, error)
}

// Customers returns configured customers.
func (s CustomerFacadeStub) Customers(ctx context.Context) ([]model.Customer, error) {
	if s.CustomersFn != nil {
		return s.CustomersFn(ctx)
	}
	return []model.Customer{{ID: "cust-1", Name: "Acme Co"}}, nil
}

// DashboardFacadeStub aggregates the facade stubs for router tests.
type DashboardFacadeStub struct {
	AuthFacadeStub
	InvoiceFacadeStub
	CustomerFacadeStub
}
