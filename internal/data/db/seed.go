package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/fedaykin-adel/sietch-shop/internal/domain"
	"github.com/fedaykin-adel/sietch-shop/internal/platform/logger"
)

// SeedProducts inserts the starter catalog when the product table is
// empty. Running it against a seeded database is a no-op.
func SeedProducts(ctx context.Context, db *gorm.DB, log *logger.Logger) error {
	var count int64
	if err := db.WithContext(ctx).Model(&types.Product{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count products: %w", err)
	}
	if count > 0 {
		log.Debug("Seed skipped, products already present", "count", count)
		return nil
	}

	products := []*types.Product{
		{
			Slug:        "camiseta-fremen",
			Name:        "Camiseta Fremen",
			Description: "Camiseta básica 100% algodão com estampa minimalista.",
			PriceCents:  7990,
			ImageURL:    "https://picsum.photos/seed/fremen/600/600",
			Category:    "apparel",
			Stock:       24,
		},
		{
			Slug:        "mochila-deserto",
			Name:        "Mochila do Deserto",
			Description: "Mochila leve e resistente para o dia a dia.",
			PriceCents:  19990,
			ImageURL:    "https://picsum.photos/seed/desertpack/600/600",
			Category:    "bags",
			Stock:       12,
		},
		{
			Slug:        "canteen-arena",
			Name:        "Cantil Arena",
			Description: "Cantil térmico 1L em aço inoxidável.",
			PriceCents:  12990,
			ImageURL:    "https://picsum.photos/seed/canteen/600/600",
			Category:    "outdoor",
			Stock:       40,
		},
		{
			Slug:        "jaqueta-tempestade",
			Name:        "Jaqueta Tempestade",
			Description: "Corta-vento leve com capuz ajustável.",
			PriceCents:  27990,
			ImageURL:    "https://picsum.photos/seed/stormjacket/600/600",
			Category:    "apparel",
			Stock:       7,
		},
		{
			Slug:        "oculos-duna",
			Name:        "Óculos Duna",
			Description: "Proteção UV400 com acabamento fosco.",
			PriceCents:  9990,
			ImageURL:    "https://picsum.photos/seed/dunaglasses/600/600",
			Category:    "accessories",
			Stock:       18,
		},
		{
			Slug:        "bota-trilha",
			Name:        "Bota Trilha",
			Description: "Solado antiderrapante e palmilha confortável.",
			PriceCents:  34990,
			ImageURL:    "https://picsum.photos/seed/boottrail/600/600",
			Category:    "footwear",
			Stock:       9,
		},
	}
	for _, p := range products {
		p.ID = uuid.New()
	}

	if err := db.WithContext(ctx).Create(&products).Error; err != nil {
		return fmt.Errorf("seed products: %w", err)
	}
	log.Info("Seeded starter catalog", "count", len(products))
	return nil
}
