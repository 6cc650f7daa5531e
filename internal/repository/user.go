package repository

import (
	"context"
	"errors"

	"croche-storefront/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	CreateIfAbsent(ctx context.Context, user *model.User) (*model.User, error)
}

type userRepoImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepoImpl{
		db: db,
	}
}

func (r *userRepoImpl) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, model.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// CreateIfAbsent inserts the user unless a row with the same email already
// exists, then returns whichever row ended up in the store. Concurrent first
// logins of the same email therefore converge on a single row.
func (r *userRepoImpl) CreateIfAbsent(ctx context.Context, user *model.User) (*model.User, error) {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoNothing: true,
	}).Create(user).Error
	if err != nil {
		return nil, err
	}

	return r.FindByEmail(ctx, user.Email)
}
