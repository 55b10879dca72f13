package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fedaykin-adel/sietch-shop/internal/http/response"
	"github.com/fedaykin-adel/sietch-shop/internal/services"
)

type ProductHandler struct {
	catalogService services.CatalogService
}

func NewProductHandler(catalogService services.CatalogService) *ProductHandler {
	return &ProductHandler{catalogService: catalogService}
}

// GET /products
func (ph *ProductHandler) ListProducts(c *gin.Context) {
	products, err := ph.catalogService.ListProducts(c.Request.Context())
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, errors.New("failed to list products"))
		return
	}
	response.RespondOK(c, gin.H{"data": products})
}

// GET /products/:slug
func (ph *ProductHandler) GetProductBySlug(c *gin.Context) {
	product, err := ph.catalogService.GetProductBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			response.RespondError(c, http.StatusNotFound, err)
			return
		}
		response.RespondError(c, http.StatusInternalServerError, errors.New("failed to load product"))
		return
	}
	response.RespondOK(c, gin.H{"data": product})
}
