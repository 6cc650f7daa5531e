package repository

import (
	"context"
	"errors"

	"croche-storefront/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderRepository interface {
	Create(ctx context.Context, pedido *model.Pedido) error
	FindByID(ctx context.Context, pedidoID uint) (*model.Pedido, error)
	FindAllNewestFirst(ctx context.Context) ([]*model.Pedido, error)
	Decide(ctx context.Context, pedidoID uint, status string) (*model.Pedido, error)
}

type orderRepoImpl struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepoImpl{
		db: db,
	}
}

func (r *orderRepoImpl) Create(ctx context.Context, pedido *model.Pedido) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(pedido).Error
}

func (r *orderRepoImpl) FindByID(ctx context.Context, pedidoID uint) (*model.Pedido, error) {
	var pedido model.Pedido
	err := r.db.WithContext(ctx).
		Where("id = ?", pedidoID).
		First(&pedido).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, model.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	return &pedido, nil
}

func (r *orderRepoImpl) FindAllNewestFirst(ctx context.Context) ([]*model.Pedido, error) {
	var pedidos []*model.Pedido
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Product").
		Order("data DESC").
		Find(&pedidos).
		Error

	if err != nil {
		return nil, err
	}

	return pedidos, nil
}

// Decide moves a pending order to the given status. Orders that were already
// decided stay untouched.
func (r *orderRepoImpl) Decide(ctx context.Context, pedidoID uint, status string) (*model.Pedido, error) {
	var pedido model.Pedido
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("id = ?", pedidoID).First(&pedido).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.ErrOrderNotFound
		}
		if err != nil {
			return err
		}

		if pedido.Status != model.StatusPending {
			return model.ErrOrderAlreadyDecided
		}

		return tx.Model(&pedido).Update("status", status).Error
	})

	if err != nil {
		return nil, err
	}

	return &pedido, nil
}
