package handler

import (
	"context"

	"croche-storefront/internal/model"
	"croche-storefront/internal/session"
)

type stubCatalogService struct {
	listProductsFn func(ctx context.Context) ([]*model.Product, error)
	addProductFn   func(ctx context.Context, name, description, price, imageURL string) (*model.Product, error)
}

func (s *stubCatalogService) ListProducts(ctx context.Context) ([]*model.Product, error) {
	return s.listProductsFn(ctx)
}

func (s *stubCatalogService) AddProduct(ctx context.Context, name, description, price, imageURL string) (*model.Product, error) {
	return s.addProductFn(ctx, name, description, price, imageURL)
}

type stubOrderService struct {
	placeOrderFn func(ctx context.Context, userID, productID uint) (*model.Pedido, error)
	listOrdersFn func(ctx context.Context) ([]*model.Pedido, error)
	approveFn    func(ctx context.Context, pedidoID uint) (*model.Pedido, error)
	rejectFn     func(ctx context.Context, pedidoID uint) (*model.Pedido, error)
}

func (s *stubOrderService) PlaceOrder(ctx context.Context, userID, productID uint) (*model.Pedido, error) {
	return s.placeOrderFn(ctx, userID, productID)
}

func (s *stubOrderService) ListOrders(ctx context.Context) ([]*model.Pedido, error) {
	return s.listOrdersFn(ctx)
}

func (s *stubOrderService) Approve(ctx context.Context, pedidoID uint) (*model.Pedido, error) {
	return s.approveFn(ctx, pedidoID)
}

func (s *stubOrderService) Reject(ctx context.Context, pedidoID uint) (*model.Pedido, error) {
	return s.rejectFn(ctx, pedidoID)
}

type stubAuthService struct {
	loginURLFn      func(state string) string
	completeLoginFn func(ctx context.Context, code string) (*session.User, error)
}

func (s *stubAuthService) LoginURL(state string) string {
	return s.loginURLFn(state)
}

func (s *stubAuthService) CompleteLogin(ctx context.Context, code string) (*session.User, error) {
	return s.completeLoginFn(ctx, code)
}
