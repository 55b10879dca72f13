package db

import (
	types "github.com/fedaykin-adel/sietch-shop/internal/domain"
	"gorm.io/gorm"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		// Identity
		&types.User{},

		// Catalog
		&types.Product{},

		// Orders
		&types.Order{},
		&types.OrderItem{},
	)
}
