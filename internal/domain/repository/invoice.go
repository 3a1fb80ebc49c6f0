package repository

import (
	"context"

	"github.com/invoicehub/invoicehub/internal/domain/model"
)

// InvoiceRepository describes persistence operations with invoices.
// Every method maps to a single SQL statement; atomicity is the
// statement's own.
type InvoiceRepository interface {
	Create(ctx context.Context, customerID string, amountCents int64, status model.InvoiceStatus, issueDate string) (*model.Invoice, error)
	Update(ctx context.Context, id, customerID string, amountCents int64, status model.InvoiceStatus) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*model.Invoice, error)
	List(ctx context.Context) ([]model.Invoice, error)
	Summary(ctx context.Context) (*model.DashboardSummary, error)
}
