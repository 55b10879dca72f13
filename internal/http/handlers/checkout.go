package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	types "github.com/fedaykin-adel/sietch-shop/internal/domain"
	"github.com/fedaykin-adel/sietch-shop/internal/http/response"
	"github.com/fedaykin-adel/sietch-shop/internal/platform/ctxutil"
	"github.com/fedaykin-adel/sietch-shop/internal/platform/money"
	"github.com/fedaykin-adel/sietch-shop/internal/services"
)

type CheckoutHandler struct {
	checkoutService services.CheckoutService
}

func NewCheckoutHandler(checkoutService services.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// POST /checkout
// body: { "items": [{ "productId": "...", "quantity": 2 }] }
func (ch *CheckoutHandler) Checkout(c *gin.Context) {
	sd := ctxutil.GetSessionData(c.Request.Context())
	if sd == nil {
		response.RespondError(c, http.StatusUnauthorized, errors.New("not authenticated"))
		return
	}

	var req struct {
		Items []types.CartLineRequest `json:"items"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Items) == 0 {
		response.RespondError(c, http.StatusBadRequest, errors.New("cart is empty"))
		return
	}

	lines, err := services.NormalizeCart(req.Items)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, err)
		return
	}

	result, err := ch.checkoutService.Checkout(c.Request.Context(), sd.Identity, lines)
	if err != nil {
		var missing *services.MissingProductsError
		var insufficient *services.InsufficientStockError
		switch {
		case errors.Is(err, services.ErrEmptyCart):
			response.RespondError(c, http.StatusBadRequest, err)
		case errors.As(err, &missing):
			response.RespondError(c, http.StatusBadRequest, missing)
		case errors.As(err, &insufficient):
			response.RespondError(c, http.StatusConflict, insufficient)
		default:
			response.RespondError(c, http.StatusInternalServerError, errors.New("checkout failed"))
		}
		return
	}

	response.RespondCreated(c, gin.H{
		"ok":      true,
		"orderId": result.OrderID.String(),
		"total":   money.FormatBRL(result.TotalCents),
	})
}
