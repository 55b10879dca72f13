package app

import (
	"github.com/gin-gonic/gin"

	httpserver "github.com/fedaykin-adel/sietch-shop/internal/http"
	httpH "github.com/fedaykin-adel/sietch-shop/internal/http/handlers"
	httpMW "github.com/fedaykin-adel/sietch-shop/internal/http/middleware"
	"github.com/fedaykin-adel/sietch-shop/internal/platform/logger"
)

type Middleware struct {
	Auth *httpMW.AuthMiddleware
}

type Handlers struct {
	Health   *httpH.HealthHandler
	Auth     *httpH.AuthHandler
	Product  *httpH.ProductHandler
	Order    *httpH.OrderHandler
	Checkout *httpH.CheckoutHandler
}

func wireHandlers(log *logger.Logger, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:   httpH.NewHealthHandler(),
		Auth:     httpH.NewAuthHandler(services.Auth),
		Product:  httpH.NewProductHandler(services.Catalog),
		Order:    httpH.NewOrderHandler(services.Order),
		Checkout: httpH.NewCheckoutHandler(services.Checkout),
	}
}

func wireMiddleware(log *logger.Logger, services Services) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		Auth: httpMW.NewAuthMiddleware(log, services.Auth),
	}
}

func wireRouter(log *logger.Logger, handlers Handlers, middleware Middleware) *gin.Engine {
	return httpserver.NewRouter(httpserver.RouterConfig{
		Log:             log,
		AuthMiddleware:  middleware.Auth,
		HealthHandler:   handlers.Health,
		AuthHandler:     handlers.Auth,
		ProductHandler:  handlers.Product,
		OrderHandler:    handlers.Order,
		CheckoutHandler: handlers.Checkout,
	})
}
