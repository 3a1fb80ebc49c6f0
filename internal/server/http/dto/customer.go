package dto

import (
	"github.com/invoicehub/invoicehub/internal/domain/model"
)

// CustomerResponse represents a customer option for the invoice form.
type CustomerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// NewCustomerListResponse maps customers into their wire shape.
func NewCustomerListResponse(customers []model.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, CustomerResponse{ID: c.ID, Name: c.Name, Email: c.Email})
	}
	return out
}
