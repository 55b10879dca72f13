package app

import (
	"gorm.io/gorm"

	"github.com/fedaykin-adel/sietch-shop/internal/data/repos/catalog"
	"github.com/fedaykin-adel/sietch-shop/internal/data/repos/order"
	"github.com/fedaykin-adel/sietch-shop/internal/data/repos/user"
	"github.com/fedaykin-adel/sietch-shop/internal/platform/logger"
)

type Repos struct {
	User    user.UserRepo
	Product catalog.ProductRepo
	Order   order.OrderRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:    user.NewUserRepo(db, log),
		Product: catalog.NewProductRepo(db, log),
		Order:   order.NewOrderRepo(db, log),
	}
}
