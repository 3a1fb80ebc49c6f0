package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/invoicehub/invoicehub/internal/domain/model"
	"github.com/invoicehub/invoicehub/internal/domain/repository"
	"github.com/invoicehub/invoicehub/internal/viewcache"
)

// Summary messages attached to failed mutation outcomes.
const (
	MsgMissingFieldsCreate = "Missing Fields. Failed to Create Invoice."
	MsgMissingFieldsUpdate = "Missing Fields. Failed to Update Invoice."
	MsgDatabaseCreate      = "Database Error: Failed to Create Invoice."
	MsgDatabaseUpdate      = "Database Error: Failed to Update Invoice."
	MsgDatabaseDelete      = "Database Error: Failed to Delete Invoice."
)

// ViewInvalidator marks a cached dashboard view stale after a mutation.
type ViewInvalidator interface {
	Invalidate(path string)
}

// MutationOutcome is what a pipeline reports back to the rendering layer:
// field errors, a database failure message, or a redirect target. Both
// failure kinds are recovered here and returned as data, never re-raised.
type MutationOutcome struct {
	Errors   FieldErrors
	Message  string
	Redirect string
}

// OK reports whether the mutation reached storage and succeeded.
func (o *MutationOutcome) OK() bool {
	return len(o.Errors) == 0 && o.Message == ""
}

// InvoiceUseCase runs the invoice mutation pipelines:
// validate, normalize, persist, invalidate cached views, redirect.
type InvoiceUseCase struct {
	invoices repository.InvoiceRepository
	views    ViewInvalidator
	logger   *slog.Logger
	now      func() time.Time
}

// NewInvoiceUseCase constructs InvoiceUseCase.
func NewInvoiceUseCase(invoices repository.InvoiceRepository, views ViewInvalidator, logger *slog.Logger) *InvoiceUseCase {
	return &InvoiceUseCase{invoices: invoices, views: views, logger: logger, now: time.Now}
}

// Create validates the submitted form, stamps today's issue date and inserts
// the invoice. The persisted amount is integer cents.
func (u *InvoiceUseCase) Create(ctx context.Context, form map[string]string) *MutationOutcome {
	draft, errs := ValidateInvoiceForm(form)
	if errs != nil {
		return &MutationOutcome{Errors: errs, Message: MsgMissingFieldsCreate}
	}

	issueDate := u.now().Format("2006-01-02")
	if _, err := u.invoices.Create(ctx, draft.CustomerID, draft.AmountCents, draft.Status, issueDate); err != nil {
		u.logger.Error("invoice insert failed", slog.String("error", err.Error()))
		return &MutationOutcome{Message: MsgDatabaseCreate}
	}

	u.views.Invalidate(viewcache.InvoicesListPath)
	return &MutationOutcome{Redirect: viewcache.InvoicesListPath}
}

// Update validates the form and rewrites customer, amount and status of the
// addressed invoice. Its id and issue date stay untouched.
func (u *InvoiceUseCase) Update(ctx context.Context, id string, form map[string]string) *MutationOutcome {
	draft, errs := ValidateInvoiceForm(form)
	if errs != nil {
		return &MutationOutcome{Errors: errs, Message: MsgMissingFieldsUpdate}
	}

	if err := u.invoices.Update(ctx, id, draft.CustomerID, draft.AmountCents, draft.Status); err != nil {
		u.logger.Error("invoice update failed", slog.String("invoice_id", id), slog.String("error", err.Error()))
		return &MutationOutcome{Message: MsgDatabaseUpdate}
	}

	u.views.Invalidate(viewcache.InvoicesListPath)
	return &MutationOutcome{Redirect: viewcache.InvoicesListPath}
}

// Delete removes the invoice and invalidates the list view. No redirect:
// deletion is triggered from the list itself.
func (u *InvoiceUseCase) Delete(ctx context.Context, id string) *MutationOutcome {
	if err := u.invoices.Delete(ctx, id); err != nil {
		u.logger.Error("invoice delete failed", slog.String("invoice_id", id), slog.String("error", err.Error()))
		return &MutationOutcome{Message: MsgDatabaseDelete}
	}

	u.views.Invalidate(viewcache.InvoicesListPath)
	return &MutationOutcome{}
}

// List returns invoices sorted by issue date.
func (u *InvoiceUseCase) List(ctx context.Context) ([]model.Invoice, error) {
	return u.invoices.List(ctx)
}

// Get fetches a single invoice by id.
func (u *InvoiceUseCase) Get(ctx context.Context, id string) (*model.Invoice, error) {
	return u.invoices.GetByID(ctx, id)
}

// Overview returns the dashboard card figures.
func (u *InvoiceUseCase) Overview(ctx context.Context) (*model.DashboardSummary, error) {
	return u.invoices.Summary(ctx)
}
