package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/invoicehub/invoicehub/internal/server/http/dto"
)

// CustomerHandler serves customer data for the invoice form.
type CustomerHandler struct {
	facade CustomerFacade
}

// NewCustomerHandler constructs CustomerHandler.
func NewCustomerHandler(facade CustomerFacade) *CustomerHandler {
	return &CustomerHandler{facade: facade}
}

// List handles GET /dashboard/customers.
func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.facade.Customers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: MsgSomethingWentWrong})
		return
	}
	c.JSON(http.StatusOK, dto.NewCustomerListResponse(customers))
}
