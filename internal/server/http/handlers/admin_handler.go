package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/RaffaFachrizal29/belivps/internal/domain/errors"
	"github.com/RaffaFachrizal29/belivps/internal/server/http/dto"
	"github.com/RaffaFachrizal29/belivps/internal/server/http/middleware"
)

// AdminHandler manages the administrative surface: login, review, confirm, delete.
type AdminHandler struct {
	facade AdminFacade
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(facade AdminFacade) *AdminHandler {
	return &AdminHandler{facade: facade}
}

// Login handles POST /api/admin/login.
func (h *AdminHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid login payload"})
		return
	}

	token, err := h.facade.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domainErrors.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	middleware.SetAdminCookie(c, token)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Logout handles POST /api/admin/logout. It revokes whatever session the
// cookie carries and clears the cookie either way.
func (h *AdminHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(middleware.AdminCookieName); err == nil && token != "" {
		h.facade.Logout(token)
	}
	middleware.ClearAdminCookie(c)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// List handles GET /api/admin/orders.
func (h *AdminHandler) List(c *gin.Context) {
	orders, err := h.facade.Orders(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list orders"})
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		response = append(response, dto.FromModel(&orders[i]))
	}

	c.JSON(http.StatusOK, response)
}

// Confirm handles POST /api/admin/confirm/:id.
func (h *AdminHandler) Confirm(c *gin.Context) {
	var req dto.ConfirmOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid confirm payload"})
		return
	}

	err := h.facade.ConfirmOrder(c.Request.Context(), c.Param("id"), req.IPv6, req.IPv4Addr)
	if err != nil {
		if errors.Is(err, domainErrors.ErrInvalidAddress) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "ipv6 address required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to confirm order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Delete handles DELETE /api/admin/orders/:id.
func (h *AdminHandler) Delete(c *gin.Context) {
	if err := h.facade.RemoveOrder(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
