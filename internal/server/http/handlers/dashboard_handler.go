package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/invoicehub/invoicehub/internal/server/http/dto"
)

// DashboardHandler serves the overview card figures.
type DashboardHandler struct {
	facade InvoiceFacade
}

// NewDashboardHandler constructs DashboardHandler.
func NewDashboardHandler(facade InvoiceFacade) *DashboardHandler {
	return &DashboardHandler{facade: facade}
}

// Overview handles GET /dashboard.
func (h *DashboardHandler) Overview(c *gin.Context) {
	summary, err := h.facade.Overview(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: MsgSomethingWentWrong})
		return
	}
	c.JSON(http.StatusOK, dto.NewOverviewResponse(summary))
}
