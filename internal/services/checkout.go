package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	redisclient "github.com/fedaykin-adel/sietch-shop/internal/clients/redis"
	"github.com/fedaykin-adel/sietch-shop/internal/data/repos/catalog"
	"github.com/fedaykin-adel/sietch-shop/internal/data/repos/order"
	types "github.com/fedaykin-adel/sietch-shop/internal/domain"
	"github.com/fedaykin-adel/sietch-shop/internal/platform/logger"
)

type CheckoutService interface {
	Checkout(ctx context.Context, identity types.Identity, lines []types.CartLine) (*types.CheckoutResult, error)
}

type checkoutService struct {
	db          *gorm.DB
	log         *logger.Logger
	productRepo catalog.ProductRepo
	orderRepo   order.OrderRepo
	cache       redisclient.ProductCache
}

func NewCheckoutService(
	db *gorm.DB,
	log *logger.Logger,
	productRepo catalog.ProductRepo,
	orderRepo order.OrderRepo,
	cache redisclient.ProductCache,
) CheckoutService {
	serviceLog := log.With("service", "CheckoutService")
	return &checkoutService{
		db:          db,
		log:         serviceLog,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		cache:       cache,
	}
}

// checkoutLine joins a cart line with its product as read at
// validation time. The captured unit price is fixed for the life of
// the call; a concurrent price change does not affect it.
type checkoutLine struct {
	product  *types.Product
	quantity int
}

// Checkout converts a normalized cart into a committed order. All
// validation (unknown ids, obviously short stock) happens before the
// mutating transaction opens. Inside the transaction, every stock
// mutation goes through the conditional decrement; a rejected
// decrement aborts the whole transaction, so stock and the order
// table either both change or neither does.
func (cs *checkoutService) Checkout(ctx context.Context, identity types.Identity, lines []types.CartLine) (*types.CheckoutResult, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	refs, missing := parseCartLines(lines)

	ids := make([]uuid.UUID, len(refs))
	for i, ref := range refs {
		ids[i] = ref.id
	}
	products, err := cs.productRepo.GetByIDs(ctx, nil, ids)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	productByID := make(map[uuid.UUID]*types.Product, len(products))
	for _, p := range products {
		productByID[p.ID] = p
	}
	for _, ref := range refs {
		if _, ok := productByID[ref.id]; !ok {
			missing = append(missing, ref.raw)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingProductsError{IDs: missing}
	}

	enriched := make([]checkoutLine, 0, len(refs))
	var totalCents int64
	for _, ref := range refs {
		p := productByID[ref.id]
		// Fast-path rejection; the decrement inside the transaction
		// is the authoritative guard under concurrency.
		if p.Stock < ref.quantity {
			return nil, &InsufficientStockError{ProductID: p.ID, ProductName: p.Name}
		}
		enriched = append(enriched, checkoutLine{product: p, quantity: ref.quantity})
		totalCents += p.PriceCents * int64(ref.quantity)
	}

	created := &types.Order{
		ID:         uuid.New(),
		Email:      identity.Email,
		UserID:     identity.SubjectID,
		Status:     types.OrderStatusConfirmed,
		TotalCents: totalCents,
	}
	for _, line := range enriched {
		created.Items = append(created.Items, types.OrderItem{
			ID:             uuid.New(),
			OrderID:        created.ID,
			ProductID:      line.product.ID,
			Quantity:       line.quantity,
			UnitPriceCents: line.product.PriceCents,
		})
	}

	err = cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, line := range enriched {
			ok, derr := cs.productRepo.DecrementStock(ctx, tx, line.product.ID, line.quantity)
			if derr != nil {
				return fmt.Errorf("decrement stock for %s: %w", line.product.ID, derr)
			}
			if !ok {
				return &InsufficientStockError{ProductID: line.product.ID, ProductName: line.product.Name}
			}
		}
		if _, cerr := cs.orderRepo.Create(ctx, tx, created); cerr != nil {
			return fmt.Errorf("create order: %w", cerr)
		}
		return nil
	})
	if err != nil {
		var insufficient *InsufficientStockError
		if errors.As(err, &insufficient) {
			return nil, insufficient
		}
		cs.log.Error("Checkout transaction failed", "user_id", identity.SubjectID, "error", err)
		return nil, fmt.Errorf("checkout transaction: %w", err)
	}

	if cs.cache != nil {
		// Stock changed, the cached listing is stale.
		cs.cache.Invalidate(ctx)
	}
	cs.log.Info("Checkout committed",
		"order_id", created.ID,
		"user_id", identity.SubjectID,
		"items", len(created.Items),
		"total_cents", created.TotalCents,
	)
	return &types.CheckoutResult{OrderID: created.ID, TotalCents: created.TotalCents}, nil
}

// cartRef is a cart line resolved to its parsed product id. The raw
// client spelling is kept for missing-product reporting.
type cartRef struct {
	id       uuid.UUID
	raw      string
	quantity int
}

// parseCartLines parses cart product ids and merges lines that
// resolve to the same UUID, so uppercase, braced or urn spellings of
// one product still become a single decrement. Ids that fail
// uuid.Parse cannot reference any row and are reported missing.
// Returned refs keep cart order.
func parseCartLines(lines []types.CartLine) ([]cartRef, []string) {
	index := make(map[uuid.UUID]int, len(lines))
	refs := make([]cartRef, 0, len(lines))
	var missing []string
	for _, line := range lines {
		id, err := uuid.Parse(line.ProductID)
		if err != nil {
			missing = append(missing, line.ProductID)
			continue
		}
		if at, seen := index[id]; seen {
			refs[at].quantity += line.Quantity
			continue
		}
		index[id] = len(refs)
		refs = append(refs, cartRef{id: id, raw: line.ProductID, quantity: line.Quantity})
	}
	return refs, missing
}
