package service

import (
	"context"
	"fmt"

	"croche-storefront/internal/model"
	"croche-storefront/internal/repository"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type CatalogService interface {
	ListProducts(ctx context.Context) ([]*model.Product, error)
	AddProduct(ctx context.Context, name, description, price, imageURL string) (*model.Product, error)
}

type catalogServiceImpl struct {
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

func NewCatalogService(
	productRepo repository.ProductRepository,
	logger zerolog.Logger,
) CatalogService {
	return &catalogServiceImpl{
		productRepo: productRepo,
		logger:      logger,
	}
}

func (s *catalogServiceImpl) ListProducts(ctx context.Context) ([]*model.Product, error) {
	return s.productRepo.FindAll(ctx)
}

func (s *catalogServiceImpl) AddProduct(ctx context.Context, name, description, price, imageURL string) (*model.Product, error) {
	parsed, err := decimal.NewFromString(price)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", model.ErrInvalidPrice, price)
	}
	if parsed.IsNegative() {
		return nil, fmt.Errorf("%w: %q", model.ErrInvalidPrice, price)
	}

	product := &model.Product{
		Name:        name,
		Description: description,
		Price:       parsed,
		ImageURL:    imageURL,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	s.logger.Info().Uint("product_id", product.ID).Str("name", product.Name).Msg("product created")

	return product, nil
}
