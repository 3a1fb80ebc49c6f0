package test

import (
	"context"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/invoicehub/invoicehub/internal/domain/errors"
	"github.com/invoicehub/invoicehub/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{Users: make(map[string]*model.User)}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, email, passwordHash string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if _, exists := s.Users[email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	user := &model.User{ID: uuid.NewString(), Email: email, PasswordHash: passwordHash, CreatedAt: time.Now()}
	s.Users[email] = user
	return user, nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// CustomerRepositoryStub returns configured customers.
type CustomerRepositoryStub struct {
	ListFn    func(context.Context) ([]model.Customer, error)
	GetByIDFn func(context.Context, string) (*model.Customer, error)
	Customers []model.Customer
}

// List returns configured customers or executes override.
func (s *CustomerRepositoryStub) List(ctx context.Context) ([]model.Customer, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return s.Customers, nil
}

// GetByID finds customer in configured slice.
func (s *CustomerRepositoryStub) GetByID(ctx context.Context, id string) (*model.Customer, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for _, c := range s.Customers {
		if c.ID == id {
			customer := c
			return &customer, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// InvoiceCreateCall captures arguments of a Create invocation.
type InvoiceCreateCall struct {
	CustomerID  string
	AmountCents int64
	Status      model.InvoiceStatus
	IssueDate   string
}

// InvoiceUpdateCall captures arguments of an Update invocation.
type InvoiceUpdateCall struct {
	ID          string
	CustomerID  string
	AmountCents int64
	Status      model.InvoiceStatus
}

// InvoiceRepositoryStub allows tests to customize behaviour and records calls.
type InvoiceRepositoryStub struct {
	CreateFn  func(context.Context, string, int64, model.InvoiceStatus, string) (*model.Invoice, error)
	UpdateFn  func(context.Context, string, string, int64, model.InvoiceStatus) error
	DeleteFn  func(context.Context, string) error
	GetByIDFn func(context.Context, string) (*model.Invoice, error)
	ListFn    func(context.Context) ([]model.Invoice, error)
	SummaryFn func(context.Context) (*model.DashboardSummary, error)

	Created  []InvoiceCreateCall
	Updated  []InvoiceUpdateCall
	Deleted  []string
	Invoices []model.Invoice
}

// Create tracks invocations and returns configured responses.
func (s *InvoiceRepositoryStub) Create(ctx context.Context, customerID string, amountCents int64, status model.InvoiceStatus, issueDate string) (*model.Invoice, error) {
	s.Created = append(s.Created, InvoiceCreateCall{CustomerID: customerID, AmountCents: amountCents, Status: status, IssueDate: issueDate})
	if s.CreateFn != nil {
		return s.CreateFn(ctx, customerID, amountCents, status, issueDate)
	}
	date, _ := time.Parse("2006-01-02", issueDate)
	return &model.Invoice{ID: uuid.NewString(), CustomerID: customerID, AmountCents: amountCents, Status: status, IssueDate: date}, nil
}

// Update records the invocation and returns configured error.
func (s *InvoiceRepositoryStub) Update(ctx context.Context, id, customerID string, amountCents int64, status model.InvoiceStatus) error {
	s.Updated = append(s.Updated, InvoiceUpdateCall{ID: id, CustomerID: customerID, AmountCents: amountCents, Status: status})
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, customerID, amountCents, status)
	}
	return nil
}

// Delete records the invocation and returns configured error.
func (s *InvoiceRepositoryStub) Delete(ctx context.Context, id string) error {
	s.Deleted = append(s.Deleted, id)
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// GetByID returns matched invoice either via override or stored slice.
func (s *InvoiceRepositoryStub) GetByID(ctx context.Context, id string) (*model.Invoice, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for _, inv := range s.Invoices {
		if inv.ID == id {
			invoice := inv
			return &invoice, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// List returns invoices from configured slice.
func (s *InvoiceRepositoryStub) List(ctx context.Context) ([]model.Invoice, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return s.Invoices, nil
}

// Summary returns configured summary data.
func (s *InvoiceRepositoryStub) Summary(ctx context.Context) (*model.DashboardSummary, error) {
	if s.SummaryFn != nil {
		return s.SummaryFn(ctx)
	}
	return &model.DashboardSummary{InvoiceCount: int64(len(s.Invoices))}, nil
}
