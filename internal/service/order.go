package service

import (
	"context"
	"fmt"
	"time"

	"croche-storefront/internal/model"
	"croche-storefront/internal/repository"

	"github.com/rs/zerolog"
)

type OrderService interface {
	PlaceOrder(ctx context.Context, userID, productID uint) (*model.Pedido, error)
	ListOrders(ctx context.Context) ([]*model.Pedido, error)
	Approve(ctx context.Context, pedidoID uint) (*model.Pedido, error)
	Reject(ctx context.Context, pedidoID uint) (*model.Pedido, error)
}

type orderServiceImpl struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	logger zerolog.Logger,
) OrderService {
	return &orderServiceImpl{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// PlaceOrder creates one pending order per call. Repeat orders for the same
// user and product are allowed and produce separate rows.
func (s *orderServiceImpl) PlaceOrder(ctx context.Context, userID, productID uint) (*model.Pedido, error) {
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		return nil, err
	}

	pedido := &model.Pedido{
		UserID:    userID,
		ProductID: productID,
		Status:    model.StatusPending,
		Data:      time.Now().UTC(),
	}
	if err := s.orderRepo.Create(ctx, pedido); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.logger.Info().
		Uint("pedido_id", pedido.ID).
		Uint("user_id", userID).
		Uint("product_id", productID).
		Msg("order placed")

	return pedido, nil
}

func (s *orderServiceImpl) ListOrders(ctx context.Context) ([]*model.Pedido, error) {
	return s.orderRepo.FindAllNewestFirst(ctx)
}

func (s *orderServiceImpl) Approve(ctx context.Context, pedidoID uint) (*model.Pedido, error) {
	return s.decide(ctx, pedidoID, model.StatusApproved)
}

func (s *orderServiceImpl) Reject(ctx context.Context, pedidoID uint) (*model.Pedido, error) {
	return s.decide(ctx, pedidoID, model.StatusRejected)
}

func (s *orderServiceImpl) decide(ctx context.Context, pedidoID uint, status string) (*model.Pedido, error) {
	pedido, err := s.orderRepo.Decide(ctx, pedidoID, status)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Uint("pedido_id", pedidoID).Str("status", status).Msg("order decided")

	return pedido, nil
}
