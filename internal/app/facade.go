package app

import (
	"context"

	"github.com/invoicehub/invoicehub/internal/domain/model"
	"github.com/invoicehub/invoicehub/internal/usecase"
)

// DashboardFacade aggregates the use cases behind the HTTP surface.
type DashboardFacade struct {
	auth      *usecase.AuthUseCase
	invoices  *usecase.InvoiceUseCase
	customers *usecase.CustomerUseCase
}

// NewDashboardFacade creates DashboardFacade instance.
func NewDashboardFacade(auth *usecase.AuthUseCase, invoices *usecase.InvoiceUseCase, customers *usecase.CustomerUseCase) *DashboardFacade {
	return &DashboardFacade{auth: auth, invoices: invoices, customers: customers}
}

func (f *DashboardFacade) Login(ctx context.Context, email, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, email, password)
	return token, err
}

func (f *DashboardFacade) Register(ctx context.Context, email, password string) (string, error) {
	_, token, err := f.auth.Register(ctx, email, password)
	return token, err
}

func (f *DashboardFacade) ParseSession(token string) (string, error) {
	return f.auth.ParseToken(token)
}

func (f *DashboardFacade) CreateInvoice(ctx context.Context, form map[string]string) *usecase.MutationOutcome {
	return f.invoices.Create(ctx, form)
}

func (f *DashboardFacade) UpdateInvoice(ctx context.Context, id string, form map[string]string) *usecase.MutationOutcome {
	return f.invoices.Update(ctx, id, form)
}

func (f *DashboardFacade) DeleteInvoice(ctx context.Context, id string) *usecase.MutationOutcome {
	return f.invoices.Delete(ctx, id)
}

func (f *DashboardFacade) Invoices(ctx context.Context) ([]model.Invoice, error) {
	return f.invoices.List(ctx)
}

func (f *DashboardFacade) Invoice(ctx context.Context, id string) (*model.Invoice, error) {
	return f.invoices.Get(ctx, id)
}

func (f *DashboardFacade) Customers(ctx context.Context) ([]model.Customer, error) {
	return f.customers.List(ctx)
}

func (f *DashboardFacade) Overview(ctx context.Context) (*model.DashboardSummary, error) {
	return f.invoices.Overview(ctx)
}
