package service

import (
	"context"

	"croche-storefront/internal/client"
	"croche-storefront/internal/model"
)

type stubUserRepo struct {
	findByEmailFn    func(ctx context.Context, email string) (*model.User, error)
	createIfAbsentFn func(ctx context.Context, user *model.User) (*model.User, error)
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.findByEmailFn(ctx, email)
}

func (s *stubUserRepo) CreateIfAbsent(ctx context.Context, user *model.User) (*model.User, error) {
	return s.createIfAbsentFn(ctx, user)
}

type stubProductRepo struct {
	createFn   func(ctx context.Context, product *model.Product) error
	findByIDFn func(ctx context.Context, productID uint) (*model.Product, error)
	findAllFn  func(ctx context.Context) ([]*model.Product, error)
}

func (s *stubProductRepo) Create(ctx context.Context, product *model.Product) error {
	return s.createFn(ctx, product)
}

func (s *stubProductRepo) FindByID(ctx context.Context, productID uint) (*model.Product, error) {
	return s.findByIDFn(ctx, productID)
}

func (s *stubProductRepo) FindAll(ctx context.Context) ([]*model.Product, error) {
	return s.findAllFn(ctx)
}

type stubOrderRepo struct {
	createFn             func(ctx context.Context, pedido *model.Pedido) error
	findByIDFn           func(ctx context.Context, pedidoID uint) (*model.Pedido, error)
	findAllNewestFirstFn func(ctx context.Context) ([]*model.Pedido, error)
	decideFn             func(ctx context.Context, pedidoID uint, status string) (*model.Pedido, error)
}

func (s *stubOrderRepo) Create(ctx context.Context, pedido *model.Pedido) error {
	return s.createFn(ctx, pedido)
}

func (s *stubOrderRepo) FindByID(ctx context.Context, pedidoID uint) (*model.Pedido, error) {
	return s.findByIDFn(ctx, pedidoID)
}

func (s *stubOrderRepo) FindAllNewestFirst(ctx context.Context) ([]*model.Pedido, error) {
	return s.findAllNewestFirstFn(ctx)
}

func (s *stubOrderRepo) Decide(ctx context.Context, pedidoID uint, status string) (*model.Pedido, error) {
	return s.decideFn(ctx, pedidoID, status)
}

type stubGoogleClient struct {
	authCodeURLFn   func(state, redirectURI string) string
	exchangeCodeFn  func(ctx context.Context, code, redirectURI string) (string, error)
	fetchUserInfoFn func(ctx context.Context, accessToken string) (*client.UserInfo, error)
}

func (s *stubGoogleClient) AuthCodeURL(state, redirectURI string) string {
	return s.authCodeURLFn(state, redirectURI)
}

func (s *stubGoogleClient) ExchangeCode(ctx context.Context, code, redirectURI string) (string, error) {
	return s.exchangeCodeFn(ctx, code, redirectURI)
}

func (s *stubGoogleClient) FetchUserInfo(ctx context.Context, accessToken string) (*client.UserInfo, error) {
	return s.fetchUserInfoFn(ctx, accessToken)
}
