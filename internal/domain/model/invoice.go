package model

import "time"

// InvoiceStatus describes the payment state of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
)

// ValidInvoiceStatus reports whether the value is one of the two known states.
func ValidInvoiceStatus(v string) bool {
	switch InvoiceStatus(v) {
	case InvoiceStatusPending, InvoiceStatusPaid:
		return true
	}
	return false
}

// Invoice describes a stored invoice row. Amount is kept in integer cents;
// the decimal boundary conversion happens once, in the mutation pipeline.
type Invoice struct {
	ID          string
	CustomerID  string
	AmountCents int64
	Status      InvoiceStatus
	IssueDate   time.Time
}

// ISOIssueDate renders the issue date in YYYY-MM-DD form.
func (i Invoice) ISOIssueDate() string {
	return i.IssueDate.Format("2006-01-02")
}

// DashboardSummary aggregates the card figures shown on the dashboard home.
type DashboardSummary struct {
	InvoiceCount  int64
	CustomerCount int64
	PaidCents     int64
	PendingCents  int64
}
