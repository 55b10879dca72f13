package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/fedaykin-adel/sietch-shop/internal/data/repos/order"
	types "github.com/fedaykin-adel/sietch-shop/internal/domain"
	"github.com/fedaykin-adel/sietch-shop/internal/platform/logger"
)

type OrderService interface {
	GetOrder(ctx context.Context, orderID uuid.UUID) (*types.Order, error)
}

type orderService struct {
	log       *logger.Logger
	orderRepo order.OrderRepo
}

func NewOrderService(log *logger.Logger, orderRepo order.OrderRepo) OrderService {
	serviceLog := log.With("service", "OrderService")
	return &orderService{log: serviceLog, orderRepo: orderRepo}
}

func (s *orderService) GetOrder(ctx context.Context, orderID uuid.UUID) (*types.Order, error) {
	found, err := s.orderRepo.GetByID(ctx, nil, orderID)
	if err != nil {
		return nil, fmt.Errorf("load order: %w", err)
	}
	if found == nil {
		return nil, ErrOrderNotFound
	}
	return found, nil
}
