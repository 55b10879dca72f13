package testutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/fedaykin-adel/sietch-shop/internal/domain"
)

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, email string) *types.User {
	tb.Helper()
	u := &types.User{
		ID:           uuid.New(),
		Name:         "Chani",
		Email:        email,
		PasswordHash: "x",
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedProduct(tb testing.TB, ctx context.Context, tx *gorm.DB, slug string, priceCents int64, stock int) *types.Product {
	tb.Helper()
	p := &types.Product{
		ID:         uuid.New(),
		Slug:       slug,
		Name:       "Product " + slug,
		PriceCents: priceCents,
		Category:   "test",
		Stock:      stock,
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed product: %v", err)
	}
	return p
}

func Identity(u *types.User) types.Identity {
	return types.Identity{SubjectID: u.ID, Email: u.Email, Name: u.Name}
}

func StockOf(tb testing.TB, ctx context.Context, tx *gorm.DB, productID uuid.UUID) int {
	tb.Helper()
	var p types.Product
	if err := tx.WithContext(ctx).Where("id = ?", productID).First(&p).Error; err != nil {
		tb.Fatalf("load product: %v", err)
	}
	return p.Stock
}
