package services

import (
	"context"
	"fmt"

	redisclient "github.com/fedaykin-adel/sietch-shop/internal/clients/redis"
	"github.com/fedaykin-adel/sietch-shop/internal/data/repos/catalog"
	types "github.com/fedaykin-adel/sietch-shop/internal/domain"
	"github.com/fedaykin-adel/sietch-shop/internal/platform/logger"
)

type CatalogService interface {
	ListProducts(ctx context.Context) ([]*types.Product, error)
	GetProductBySlug(ctx context.Context, slug string) (*types.Product, error)
}

type catalogService struct {
	log         *logger.Logger
	productRepo catalog.ProductRepo
	cache       redisclient.ProductCache
}

func NewCatalogService(log *logger.Logger, productRepo catalog.ProductRepo, cache redisclient.ProductCache) CatalogService {
	serviceLog := log.With("service", "CatalogService")
	return &catalogService{
		log:         serviceLog,
		productRepo: productRepo,
		cache:       cache,
	}
}

func (s *catalogService) ListProducts(ctx context.Context) ([]*types.Product, error) {
	if s.cache != nil {
		if products, ok := s.cache.GetProducts(ctx); ok {
			return products, nil
		}
	}

	products, err := s.productRepo.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	if s.cache != nil {
		s.cache.SetProducts(ctx, products)
	}
	return products, nil
}

func (s *catalogService) GetProductBySlug(ctx context.Context, slug string) (*types.Product, error) {
	product, err := s.productRepo.GetBySlug(ctx, nil, slug)
	if err != nil {
		return nil, fmt.Errorf("load product: %w", err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}
