package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	types "github.com/fedaykin-adel/sietch-shop/internal/domain"
	"github.com/fedaykin-adel/sietch-shop/internal/platform/envutil"
	"github.com/fedaykin-adel/sietch-shop/internal/platform/logger"
)

const catalogKey = "catalog:products"

// ProductCache is a best-effort read cache for the product listing.
// Failures are logged and treated as misses; the database stays the
// source of truth.
type ProductCache interface {
	GetProducts(ctx context.Context) ([]*types.Product, bool)
	SetProducts(ctx context.Context, products []*types.Product)
	Invalidate(ctx context.Context)
	Close() error
}

type productCache struct {
	log *logger.Logger
	rdb *goredis.Client
	ttl time.Duration
}

func NewProductCache(log *logger.Logger) (ProductCache, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}

	addr := strings.TrimSpace(envutil.String("REDIS_ADDR", ""))
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}
	ttl := time.Duration(envutil.Int("REDIS_CATALOG_TTL", 60)) * time.Second

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &productCache{
		log: log.With("service", "ProductCache"),
		rdb: rdb,
		ttl: ttl,
	}, nil
}

func (c *productCache) GetProducts(ctx context.Context) ([]*types.Product, bool) {
	raw, err := c.rdb.Get(ctx, catalogKey).Bytes()
	if err != nil {
		if err != goredis.Nil {
			c.log.Warn("Catalog cache read failed", "error", err)
		}
		return nil, false
	}
	var products []*types.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		c.log.Warn("Catalog cache payload invalid, dropping", "error", err)
		c.Invalidate(ctx)
		return nil, false
	}
	return products, true
}

func (c *productCache) SetProducts(ctx context.Context, products []*types.Product) {
	raw, err := json.Marshal(products)
	if err != nil {
		c.log.Warn("Catalog cache marshal failed", "error", err)
		return
	}
	if err := c.rdb.Set(ctx, catalogKey, raw, c.ttl).Err(); err != nil {
		c.log.Warn("Catalog cache write failed", "error", err)
	}
}

func (c *productCache) Invalidate(ctx context.Context) {
	if err := c.rdb.Del(ctx, catalogKey).Err(); err != nil {
		c.log.Warn("Catalog cache invalidation failed", "error", err)
	}
}

func (c *productCache) Close() error {
	return c.rdb.Close()
}
