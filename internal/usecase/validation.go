package usecase

import (
	"net/mail"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/invoicehub/invoicehub/internal/domain/model"
)

// Messages surfaced next to the failing form field. The wording is part of
// the contract with the rendering layer.
const (
	MsgSelectCustomer = "Please select a customer."
	MsgAmountTooSmall = "Please enter an amount greater than $0."
	MsgAmountTooLarge = "Please enter an amount less than $1,000,000,000."
	MsgSelectStatus   = "Please select an invoice status."
	MsgInvalidEmail   = "Please enter a valid email."
	MsgShortPassword  = "Password must be at least 6 characters."
)

// maxInvoiceAmount bounds the accepted dollar amount. Values at or above it
// are rejected in validation; without the bound, cents conversion of absurd
// magnitudes would overflow int64.
var maxInvoiceAmount = decimal.New(1, 9)

// Form field names accepted by the mutation pipelines.
const (
	FieldCustomerID = "customerId"
	FieldAmount     = "amount"
	FieldStatus     = "status"
	FieldEmail      = "email"
	FieldPassword   = "password"
)

// FieldErrors maps a form field to the ordered list of messages it failed
// with. A nil map means the form passed.
type FieldErrors map[string][]string

func (f FieldErrors) add(field, message string) {
	f[field] = append(f[field], message)
}

// InvoiceDraft is the normalized result of a valid invoice form: the amount
// already converted to integer cents and the status canonicalized.
type InvoiceDraft struct {
	CustomerID  string
	AmountCents int64
	Status      model.InvoiceStatus
}

// ValidateInvoiceForm checks every field of an invoice mutation form in one
// pass and either returns the normalized draft or the complete set of field
// errors. It never touches storage.
func ValidateInvoiceForm(form map[string]string) (*InvoiceDraft, FieldErrors) {
	errs := FieldErrors{}
	draft := &InvoiceDraft{}

	customerID := strings.TrimSpace(form[FieldCustomerID])
	if customerID == "" {
		errs.add(FieldCustomerID, MsgSelectCustomer)
	}
	draft.CustomerID = customerID

	amount, err := decimal.NewFromString(strings.TrimSpace(form[FieldAmount]))
	switch {
	case err != nil || !amount.IsPositive():
		errs.add(FieldAmount, MsgAmountTooSmall)
	case amount.GreaterThanOrEqual(maxInvoiceAmount):
		errs.add(FieldAmount, MsgAmountTooLarge)
	default:
		// The one place where decimal dollars become integer cents.
		draft.AmountCents = amount.Shift(2).Round(0).IntPart()
	}

	status := form[FieldStatus]
	if !model.ValidInvoiceStatus(status) {
		errs.add(FieldStatus, MsgSelectStatus)
	}
	draft.Status = model.InvoiceStatus(status)

	if len(errs) > 0 {
		return nil, errs
	}
	return draft, nil
}

// Credentials is a normalized login request.
type Credentials struct {
	Email    string
	Password string
}

// ValidateCredentials checks the login form shape: a well-formed address and
// a password of at least six characters. No complexity rules beyond that.
func ValidateCredentials(email, password string) (*Credentials, FieldErrors) {
	errs := FieldErrors{}

	email = strings.TrimSpace(email)
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		errs.add(FieldEmail, MsgInvalidEmail)
	}

	if len(password) < 6 {
		errs.add(FieldPassword, MsgShortPassword)
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return &Credentials{Email: email, Password: password}, nil
}
