package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/invoicehub/invoicehub/internal/domain/errors"
	"github.com/invoicehub/invoicehub/internal/server/http/dto"
	"github.com/invoicehub/invoicehub/internal/usecase"
	"github.com/invoicehub/invoicehub/internal/viewcache"
)

// InvoiceHandler manages the invoice endpoints of the dashboard.
type InvoiceHandler struct {
	facade InvoiceFacade
	views  *viewcache.Cache
}

// NewInvoiceHandler constructs InvoiceHandler.
func NewInvoiceHandler(facade InvoiceFacade, views *viewcache.Cache) *InvoiceHandler {
	return &InvoiceHandler{facade: facade, views: views}
}

// List handles GET /dashboard/invoices. The rendered list is served from the
// view cache until a mutation invalidates it.
func (h *InvoiceHandler) List(c *gin.Context) {
	if cached, ok := h.views.Get(viewcache.InvoicesListPath); ok {
		c.JSON(http.StatusOK, cached)
		return
	}

	invoices, err := h.facade.Invoices(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: MsgSomethingWentWrong})
		return
	}

	view := dto.NewInvoiceListResponse(invoices)
	h.views.Put(viewcache.InvoicesListPath, view)
	c.JSON(http.StatusOK, view)
}

// Get handles GET /dashboard/invoices/:id.
func (h *InvoiceHandler) Get(c *gin.Context) {
	invoice, err := h.facade.Invoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: MsgSomethingWentWrong})
		return
	}
	c.JSON(http.StatusOK, dto.NewInvoiceResponse(*invoice))
}

// Create handles POST /dashboard/invoices.
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req dto.InvoiceFormRequest
	_ = c.ShouldBind(&req)

	outcome := h.facade.CreateInvoice(c.Request.Context(), req.Form())
	respondMutation(c, outcome)
}

// Update handles POST /dashboard/invoices/:id.
func (h *InvoiceHandler) Update(c *gin.Context) {
	var req dto.InvoiceFormRequest
	_ = c.ShouldBind(&req)

	outcome := h.facade.UpdateInvoice(c.Request.Context(), c.Param("id"), req.Form())
	respondMutation(c, outcome)
}

// Delete handles DELETE /dashboard/invoices/:id.
func (h *InvoiceHandler) Delete(c *gin.Context) {
	outcome := h.facade.DeleteInvoice(c.Request.Context(), c.Param("id"))
	respondMutation(c, outcome)
}

// respondMutation maps a pipeline outcome onto the HTTP surface: field errors
// and database failures arrive as data, success as a redirect or no content.
func respondMutation(c *gin.Context, outcome *usecase.MutationOutcome) {
	switch {
	case len(outcome.Errors) > 0:
		c.JSON(http.StatusUnprocessableEntity, dto.MutationFailureResponse{Errors: outcome.Errors, Message: outcome.Message})
	case outcome.Message != "":
		c.JSON(http.StatusInternalServerError, dto.MutationFailureResponse{Message: outcome.Message})
	case outcome.Redirect != "":
		c.Redirect(http.StatusSeeOther, outcome.Redirect)
	default:
		c.Status(http.StatusNoContent)
	}
}
