package http

import (
	"github.com/gin-gonic/gin"

	httpH "github.com/fedaykin-adel/sietch-shop/internal/http/handlers"
	httpMW "github.com/fedaykin-adel/sietch-shop/internal/http/middleware"
	"github.com/fedaykin-adel/sietch-shop/internal/platform/logger"
)

type RouterConfig struct {
	Log *logger.Logger

	AuthMiddleware *httpMW.AuthMiddleware

	HealthHandler   *httpH.HealthHandler
	AuthHandler     *httpH.AuthHandler
	ProductHandler  *httpH.ProductHandler
	OrderHandler    *httpH.OrderHandler
	CheckoutHandler *httpH.CheckoutHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS())

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	// Identity lifecycle (public)
	if cfg.AuthHandler != nil {
		r.POST("/register", cfg.AuthHandler.Register)
		r.POST("/login", cfg.AuthHandler.Login)
		r.POST("/logout", cfg.AuthHandler.Logout)
		r.GET("/me", cfg.AuthHandler.Me)
	}

	// Catalog reads (public)
	if cfg.ProductHandler != nil {
		r.GET("/products", cfg.ProductHandler.ListProducts)
		r.GET("/products/:slug", cfg.ProductHandler.GetProductBySlug)
	}

	// Order reads (public)
	if cfg.OrderHandler != nil {
		r.GET("/orders/:id", cfg.OrderHandler.GetOrder)
	}

	// Checkout requires a verified session
	protected := r.Group("/")
	{
		if cfg.AuthMiddleware != nil {
			protected.Use(cfg.AuthMiddleware.RequireSession())
		}
		if cfg.CheckoutHandler != nil {
			protected.POST("/checkout", cfg.CheckoutHandler.Checkout)
		}
	}

	return r
}
