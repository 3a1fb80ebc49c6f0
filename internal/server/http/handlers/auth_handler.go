package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/invoicehub/invoicehub/internal/domain/errors"
	"github.com/invoicehub/invoicehub/internal/server/http/dto"
	"github.com/invoicehub/invoicehub/internal/server/http/middleware"
)

// AuthHandler processes login, registration and logout.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Login handles POST /login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.CredentialsRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusUnauthorized, dto.MessageResponse{Message: MsgInvalidCredentials})
		return
	}

	token, err := h.facade.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, dto.MessageResponse{Message: MsgInvalidCredentials})
		default:
			c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: MsgSomethingWentWrong})
		}
		return
	}

	middleware.SetSessionCookie(c, token)
	c.Redirect(http.StatusSeeOther, middleware.DashboardPath)
}

// Register handles POST /register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.CredentialsRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: MsgInvalidCredentials})
		return
	}

	token, err := h.facade.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: MsgInvalidCredentials})
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			c.JSON(http.StatusConflict, dto.MessageResponse{Message: "Account already exists."})
		default:
			c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: MsgSomethingWentWrong})
		}
		return
	}

	middleware.SetSessionCookie(c, token)
	c.Redirect(http.StatusSeeOther, middleware.DashboardPath)
}

// Logout handles POST /logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.ClearSessionCookie(c)
	c.Redirect(http.StatusSeeOther, middleware.LoginPath)
}
