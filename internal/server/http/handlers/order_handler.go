package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/RaffaFachrizal29/belivps/internal/domain/errors"
	"github.com/RaffaFachrizal29/belivps/internal/server/http/dto"
)

// OrderHandler manages customer-facing order endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order payload"})
		return
	}

	err := h.facade.PlaceOrder(c.Request.Context(), req.ToModel())
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			c.JSON(http.StatusConflict, gin.H{"error": "order id already exists"})
		case errors.Is(err, domainErrors.ErrInvalidOrderID):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid order id"})
		case errors.Is(err, domainErrors.ErrUnknownTier):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "unknown ram tier"})
		case errors.Is(err, domainErrors.ErrPriceMismatch):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "price mismatch"})
		case errors.Is(err, domainErrors.ErrDomainNotIncluded):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "domain not included in tier"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create order"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.facade.Order(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch order"})
		return
	}

	c.JSON(http.StatusOK, dto.FromModel(order))
}

// Email handles POST /api/orders/:id/email.
func (h *OrderHandler) Email(c *gin.Context) {
	simulated, err := h.facade.NotifyOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		case errors.Is(err, domainErrors.ErrDeliveryFailed):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send email"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send email"})
		}
		return
	}

	if simulated {
		c.JSON(http.StatusOK, gin.H{"success": true, "simulated": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
