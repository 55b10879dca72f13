package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fedaykin-adel/sietch-shop/internal/http/response"
	"github.com/fedaykin-adel/sietch-shop/internal/services"
)

type OrderHandler struct {
	orderService services.OrderService
}

func NewOrderHandler(orderService services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// GET /orders/:id
func (oh *OrderHandler) GetOrder(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		// An unparseable id cannot name any order.
		response.RespondError(c, http.StatusNotFound, services.ErrOrderNotFound)
		return
	}
	found, err := oh.orderService.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			response.RespondError(c, http.StatusNotFound, err)
			return
		}
		response.RespondError(c, http.StatusInternalServerError, errors.New("failed to load order"))
		return
	}
	response.RespondOK(c, gin.H{"data": found})
}
