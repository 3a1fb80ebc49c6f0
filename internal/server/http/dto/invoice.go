package dto

import (
	"github.com/invoicehub/invoicehub/internal/domain/model"
)

// InvoiceFormRequest describes the invoice create/update form payload.
type InvoiceFormRequest struct {
	CustomerID string `form:"customerId" json:"customerId"`
	Amount     string `form:"amount" json:"amount"`
	Status     string `form:"status" json:"status"`
}

// Form flattens the request into the field map the pipelines validate.
func (r InvoiceFormRequest) Form() map[string]string {
	return map[string]string{
		"customerId": r.CustomerID,
		"amount":     r.Amount,
		"status":     r.Status,
	}
}

// InvoiceResponse represents an invoice row of the dashboard list.
type InvoiceResponse struct {
	ID          string `json:"id"`
	CustomerID  string `json:"customer_id"`
	AmountCents int64  `json:"amount_cents"`
	Status      string `json:"status"`
	Date        string `json:"date"`
}

// NewInvoiceResponse maps a domain invoice into its wire shape.
func NewInvoiceResponse(inv model.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:          inv.ID,
		CustomerID:  inv.CustomerID,
		AmountCents: inv.AmountCents,
		Status:      string(inv.Status),
		Date:        inv.ISOIssueDate(),
	}
}

// NewInvoiceListResponse maps a list of invoices.
func NewInvoiceListResponse(invoices []model.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, NewInvoiceResponse(inv))
	}
	return out
}

// MutationFailureResponse reports a rejected invoice mutation.
type MutationFailureResponse struct {
	Errors  map[string][]string `json:"errors,omitempty"`
	Message string              `json:"message"`
}

// OverviewResponse represents the dashboard card figures.
type OverviewResponse struct {
	InvoiceCount  int64 `json:"invoice_count"`
	CustomerCount int64 `json:"customer_count"`
	PaidCents     int64 `json:"paid_cents"`
	PendingCents  int64 `json:"pending_cents"`
}

// NewOverviewResponse maps the domain summary into its wire shape.
func NewOverviewResponse(s *model.DashboardSummary) OverviewResponse {
	return OverviewResponse{
		InvoiceCount:  s.InvoiceCount,
		CustomerCount: s.CustomerCount,
		PaidCents:     s.PaidCents,
		PendingCents:  s.PendingCents,
	}
}
