package delivery

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"

	"reservia-backend/internal/order/usecase"
	"reservia-backend/pkg/apierr"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orders usecase.OrderUsecase
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orders usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{
		orders: orders,
	}
}

// PlaceOrder stores the caller-supplied order document
// POST /order
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var order bson.M
	if err := c.ShouldBindJSON(&order); err != nil {
		apierr.JSON(c, http.StatusBadRequest, apierr.KindInvalidInput, "request body must be a JSON object")
		return
	}

	id, err := h.orders.Place(c.Request.Context(), order)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"insertedId": id})
}

// GetMyOrders returns the orders placed by one buyer
// GET /api/my-ordered/foods?buyerId=u1
func (h *OrderHandler) GetMyOrders(c *gin.Context) {
	orders, err := h.orders.GetByBuyer(c.Request.Context(), c.Query("buyerId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}

// DeleteOrder removes an order by id
// DELETE /api/ordered/delete?id=...
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	deleted, err := h.orders.Delete(c.Request.Context(), c.Query("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deletedCount": deleted})
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrInvalidID):
		apierr.JSON(c, http.StatusBadRequest, apierr.KindInvalidID, "invalid id format")
	case errors.Is(err, usecase.ErrInvalidInput):
		apierr.JSON(c, http.StatusBadRequest, apierr.KindInvalidInput, err.Error())
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("store operation failed")
		apierr.JSON(c, http.StatusInternalServerError, apierr.KindStoreError, "store operation failed")
	}
}
