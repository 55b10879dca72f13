package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/fedaykin-adel/sietch-shop/internal/data/repos/catalog"
	"github.com/fedaykin-adel/sietch-shop/internal/data/repos/order"
	"github.com/fedaykin-adel/sietch-shop/internal/data/repos/testutil"
	types "github.com/fedaykin-adel/sietch-shop/internal/domain"
)

func newCheckoutService(t *testing.T) (CheckoutService, *gorm.DB) {
	t.Helper()
	gdb := testutil.DB(t)
	log := testutil.Logger(t)
	productRepo := catalog.NewProductRepo(gdb, log)
	orderRepo := order.NewOrderRepo(gdb, log)
	return NewCheckoutService(gdb, log, productRepo, orderRepo, nil), gdb
}

// uniqueSlug keeps fixtures from colliding on the shared test database.
func uniqueSlug(prefix string) string {
	return prefix + "-" + uuid.NewString()[:8]
}

func cleanupProduct(t *testing.T, gdb *gorm.DB, id uuid.UUID) {
	t.Helper()
	t.Cleanup(func() {
		gdb.Where("product_id = ?", id).Delete(&types.OrderItem{})
		gdb.Where("id = ?", id).Delete(&types.Product{})
	})
}

func cleanupUser(t *testing.T, gdb *gorm.DB, id uuid.UUID) {
	t.Helper()
	t.Cleanup(func() {
		gdb.Where("user_id = ?", id).Delete(&types.Order{})
		gdb.Where("id = ?", id).Delete(&types.User{})
	})
}

func TestCheckoutSuccess(t *testing.T) {
	ctx := context.Background()
	svc, gdb := newCheckoutService(t)

	u := testutil.SeedUser(t, ctx, gdb, uniqueSlug("stilgar")+"@arrakis.dev")
	cleanupUser(t, gdb, u.ID)
	p := testutil.SeedProduct(t, ctx, gdb, uniqueSlug("canteen"), 1000, 5)
	cleanupProduct(t, gdb, p.ID)

	result, err := svc.Checkout(ctx, testutil.Identity(u), []types.CartLine{
		{ProductID: p.ID.String(), Quantity: 5},
	})
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}
	if result.TotalCents != 5000 {
		t.Fatalf("expected total 5000, got %d", result.TotalCents)
	}
	if got := testutil.StockOf(t, ctx, gdb, p.ID); got != 0 {
		t.Fatalf("expected stock 0 after checkout, got %d", got)
	}

	orderRepo := order.NewOrderRepo(gdb, testutil.Logger(t))
	placed, err := orderRepo.GetByID(ctx, nil, result.OrderID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if placed == nil {
		t.Fatal("expected order to exist")
	}
	if placed.Status != types.OrderStatusConfirmed {
		t.Fatalf("expected status %q, got %q", types.OrderStatusConfirmed, placed.Status)
	}
	if placed.UserID != u.ID || placed.Email != u.Email {
		t.Fatalf("order owner mismatch: %+v", placed)
	}
	if len(placed.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(placed.Items))
	}
	if placed.Items[0].Quantity != 5 || placed.Items[0].UnitPriceCents != 1000 {
		t.Fatalf("unexpected item: %+v", placed.Items[0])
	}
}

func TestCheckoutInsufficientStock(t *testing.T) {
	ctx := context.Background()
	svc, gdb := newCheckoutService(t)

	u := testutil.SeedUser(t, ctx, gdb, uniqueSlug("jessica")+"@arrakis.dev")
	cleanupUser(t, gdb, u.ID)
	p := testutil.SeedProduct(t, ctx, gdb, uniqueSlug("cloak"), 2000, 5)
	cleanupProduct(t, gdb, p.ID)

	_, err := svc.Checkout(ctx, testutil.Identity(u), []types.CartLine{
		{ProductID: p.ID.String(), Quantity: 6},
	})
	var insufficient *InsufficientStockError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientStockError, got %v", err)
	}
	if insufficient.ProductID != p.ID {
		t.Fatalf("expected product %s in error, got %s", p.ID, insufficient.ProductID)
	}
	if got := testutil.StockOf(t, ctx, gdb, p.ID); got != 5 {
		t.Fatalf("stock changed on failed checkout: %d", got)
	}
}

func TestCheckoutMissingProducts(t *testing.T) {
	ctx := context.Background()
	svc, gdb := newCheckoutService(t)

	u := testutil.SeedUser(t, ctx, gdb, uniqueSlug("duncan")+"@arrakis.dev")
	cleanupUser(t, gdb, u.ID)
	p := testutil.SeedProduct(t, ctx, gdb, uniqueSlug("blade"), 3000, 4)
	cleanupProduct(t, gdb, p.ID)

	ghost := uuid.NewString()
	_, err := svc.Checkout(ctx, testutil.Identity(u), []types.CartLine{
		{ProductID: p.ID.String(), Quantity: 2},
		{ProductID: ghost, Quantity: 1},
		{ProductID: "not-even-an-id", Quantity: 1},
	})
	var missing *MissingProductsError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingProductsError, got %v", err)
	}
	if len(missing.IDs) != 2 {
		t.Fatalf("expected 2 missing ids, got %v", missing.IDs)
	}
	if !strings.Contains(err.Error(), ghost) || !strings.Contains(err.Error(), "not-even-an-id") {
		t.Fatalf("missing ids not reported: %v", err)
	}

	// No writes may have happened.
	if got := testutil.StockOf(t, ctx, gdb, p.ID); got != 4 {
		t.Fatalf("stock changed on failed checkout: %d", got)
	}
	var count int64
	if err := gdb.Model(&types.Order{}).Where("user_id = ?", u.ID).Count(&count).Error; err != nil {
		t.Fatalf("count orders: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no orders, found %d", count)
	}
}

func TestCheckoutAcceptsUppercaseProductID(t *testing.T) {
	ctx := context.Background()
	svc, gdb := newCheckoutService(t)

	u := testutil.SeedUser(t, ctx, gdb, uniqueSlug("ramallo")+"@arrakis.dev")
	cleanupUser(t, gdb, u.ID)
	p := testutil.SeedProduct(t, ctx, gdb, uniqueSlug("sietchkit"), 1500, 5)
	cleanupProduct(t, gdb, p.ID)

	result, err := svc.Checkout(ctx, testutil.Identity(u), []types.CartLine{
		{ProductID: strings.ToUpper(p.ID.String()), Quantity: 2},
	})
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}
	if result.TotalCents != 3000 {
		t.Fatalf("expected total 3000, got %d", result.TotalCents)
	}
	if got := testutil.StockOf(t, ctx, gdb, p.ID); got != 3 {
		t.Fatalf("expected stock 3, got %d", got)
	}
}

func TestCheckoutMergesDuplicateLines(t *testing.T) {
	ctx := context.Background()
	svc, gdb := newCheckoutService(t)

	u := testutil.SeedUser(t, ctx, gdb, uniqueSlug("farok")+"@arrakis.dev")
	cleanupUser(t, gdb, u.ID)
	p := testutil.SeedProduct(t, ctx, gdb, uniqueSlug("fremkit"), 1000, 5)
	cleanupProduct(t, gdb, p.ID)

	// Two spellings of the same product id must collapse into one
	// line: a single decrement of the summed quantity.
	cart := []types.CartLine{
		{ProductID: p.ID.String(), Quantity: 3},
		{ProductID: strings.ToUpper(p.ID.String()), Quantity: 2},
	}
	result, err := svc.Checkout(ctx, testutil.Identity(u), cart)
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}
	if result.TotalCents != 5000 {
		t.Fatalf("expected total 5000, got %d", result.TotalCents)
	}
	if got := testutil.StockOf(t, ctx, gdb, p.ID); got != 0 {
		t.Fatalf("expected stock 0 after merged checkout, got %d", got)
	}

	orderRepo := order.NewOrderRepo(gdb, testutil.Logger(t))
	placed, err := orderRepo.GetByID(ctx, nil, result.OrderID)
	if err != nil || placed == nil {
		t.Fatalf("GetByID: %v, %v", placed, err)
	}
	if len(placed.Items) != 1 {
		t.Fatalf("expected 1 merged item, got %d", len(placed.Items))
	}
	if placed.Items[0].Quantity != 5 {
		t.Fatalf("expected merged quantity 5, got %d", placed.Items[0].Quantity)
	}
}

func TestCheckoutMergedLinesRespectStock(t *testing.T) {
	ctx := context.Background()
	svc, gdb := newCheckoutService(t)

	u := testutil.SeedUser(t, ctx, gdb, uniqueSlug("tharthar")+"@arrakis.dev")
	cleanupUser(t, gdb, u.ID)
	p := testutil.SeedProduct(t, ctx, gdb, uniqueSlug("sandkit"), 1000, 4)
	cleanupProduct(t, gdb, p.ID)

	// Each line fits on its own; the merged quantity does not.
	_, err := svc.Checkout(ctx, testutil.Identity(u), []types.CartLine{
		{ProductID: p.ID.String(), Quantity: 3},
		{ProductID: strings.ToUpper(p.ID.String()), Quantity: 2},
	})
	var insufficient *InsufficientStockError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientStockError, got %v", err)
	}
	if got := testutil.StockOf(t, ctx, gdb, p.ID); got != 4 {
		t.Fatalf("stock changed on failed checkout: %d", got)
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	ctx := context.Background()
	svc, gdb := newCheckoutService(t)

	u := testutil.SeedUser(t, ctx, gdb, uniqueSlug("gurney")+"@arrakis.dev")
	cleanupUser(t, gdb, u.ID)

	if _, err := svc.Checkout(ctx, testutil.Identity(u), nil); !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestCheckoutAtomicAcrossLines(t *testing.T) {
	ctx := context.Background()
	svc, gdb := newCheckoutService(t)

	u := testutil.SeedUser(t, ctx, gdb, uniqueSlug("thufir")+"@arrakis.dev")
	cleanupUser(t, gdb, u.ID)
	plenty := testutil.SeedProduct(t, ctx, gdb, uniqueSlug("spice"), 500, 50)
	cleanupProduct(t, gdb, plenty.ID)
	scarce := testutil.SeedProduct(t, ctx, gdb, uniqueSlug("crysknife"), 90000, 1)
	cleanupProduct(t, gdb, scarce.ID)

	_, err := svc.Checkout(ctx, testutil.Identity(u), []types.CartLine{
		{ProductID: plenty.ID.String(), Quantity: 10},
		{ProductID: scarce.ID.String(), Quantity: 2},
	})
	var insufficient *InsufficientStockError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientStockError, got %v", err)
	}

	// The first line must not have been committed.
	if got := testutil.StockOf(t, ctx, gdb, plenty.ID); got != 50 {
		t.Fatalf("expected stock 50, got %d", got)
	}
	if got := testutil.StockOf(t, ctx, gdb, scarce.ID); got != 1 {
		t.Fatalf("expected stock 1, got %d", got)
	}
}

func TestCheckoutCapturesUnitPrice(t *testing.T) {
	ctx := context.Background()
	svc, gdb := newCheckoutService(t)

	u := testutil.SeedUser(t, ctx, gdb, uniqueSlug("irulan")+"@arrakis.dev")
	cleanupUser(t, gdb, u.ID)
	p := testutil.SeedProduct(t, ctx, gdb, uniqueSlug("tome"), 2500, 10)
	cleanupProduct(t, gdb, p.ID)

	result, err := svc.Checkout(ctx, testutil.Identity(u), []types.CartLine{
		{ProductID: p.ID.String(), Quantity: 2},
	})
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}

	// A price change after checkout must not rewrite the order.
	if err := gdb.Model(&types.Product{}).
		Where("id = ?", p.ID).
		UpdateColumn("price_cents", 9999).Error; err != nil {
		t.Fatalf("update price: %v", err)
	}

	orderRepo := order.NewOrderRepo(gdb, testutil.Logger(t))
	placed, err := orderRepo.GetByID(ctx, nil, result.OrderID)
	if err != nil || placed == nil {
		t.Fatalf("GetByID: %v, %v", placed, err)
	}
	if placed.TotalCents != 5000 {
		t.Fatalf("expected captured total 5000, got %d", placed.TotalCents)
	}
	if placed.Items[0].UnitPriceCents != 2500 {
		t.Fatalf("expected captured unit price 2500, got %d", placed.Items[0].UnitPriceCents)
	}
}

func TestCheckoutSequentialContention(t *testing.T) {
	ctx := context.Background()
	svc, gdb := newCheckoutService(t)

	u := testutil.SeedUser(t, ctx, gdb, uniqueSlug("leto")+"@arrakis.dev")
	cleanupUser(t, gdb, u.ID)
	p := testutil.SeedProduct(t, ctx, gdb, uniqueSlug("stillsuit"), 4000, 5)
	cleanupProduct(t, gdb, p.ID)

	cart := []types.CartLine{{ProductID: p.ID.String(), Quantity: 3}}
	if _, err := svc.Checkout(ctx, testutil.Identity(u), cart); err != nil {
		t.Fatalf("first checkout: %v", err)
	}

	_, err := svc.Checkout(ctx, testutil.Identity(u), cart)
	var insufficient *InsufficientStockError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientStockError on second checkout, got %v", err)
	}
	if got := testutil.StockOf(t, ctx, gdb, p.ID); got != 2 {
		t.Fatalf("expected stock 2, got %d", got)
	}
}

func TestCheckoutConcurrentContention(t *testing.T) {
	testutil.RequirePostgres(t)

	ctx := context.Background()
	svc, gdb := newCheckoutService(t)

	u := testutil.SeedUser(t, ctx, gdb, uniqueSlug("paul")+"@arrakis.dev")
	cleanupUser(t, gdb, u.ID)
	p := testutil.SeedProduct(t, ctx, gdb, uniqueSlug("thumper"), 1500, 5)
	cleanupProduct(t, gdb, p.ID)

	cart := []types.CartLine{{ProductID: p.ID.String(), Quantity: 3}}

	results := make([]error, 2)
	var g errgroup.Group
	for i := range results {
		i := i
		g.Go(func() error {
			_, err := svc.Checkout(ctx, testutil.Identity(u), cart)
			results[i] = err
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("wait: %v", err)
	}

	var succeeded, rejected int
	for _, err := range results {
		if err == nil {
			succeeded++
			continue
		}
		var insufficient *InsufficientStockError
		if !errors.As(err, &insufficient) {
			t.Fatalf("unexpected checkout error: %v", err)
		}
		rejected++
	}
	if succeeded != 1 || rejected != 1 {
		t.Fatalf("expected exactly one winner, got %d success / %d rejected", succeeded, rejected)
	}
	if got := testutil.StockOf(t, ctx, gdb, p.ID); got != 2 {
		t.Fatalf("expected stock 2, got %d", got)
	}
}
