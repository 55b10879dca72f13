package app

import (
	"gorm.io/gorm"

	redisclient "github.com/fedaykin-adel/sietch-shop/internal/clients/redis"
	"github.com/fedaykin-adel/sietch-shop/internal/platform/logger"
	"github.com/fedaykin-adel/sietch-shop/internal/services"
)

type Services struct {
	Auth     services.AuthService
	Catalog  services.CatalogService
	Checkout services.CheckoutService
	Order    services.OrderService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, repos Repos, cache redisclient.ProductCache) Services {
	log.Info("Wiring services...")
	return Services{
		Auth:     services.NewAuthService(db, log, repos.User, cfg.JWTSecretKey, cfg.SessionTTL),
		Catalog:  services.NewCatalogService(log, repos.Product, cache),
		Checkout: services.NewCheckoutService(db, log, repos.Product, repos.Order, cache),
		Order:    services.NewOrderService(log, repos.Order),
	}
}
