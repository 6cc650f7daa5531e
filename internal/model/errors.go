package model

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrProductNotFound     = errors.New("product not found")
	ErrOrderNotFound       = errors.New("order not found")
	ErrOrderAlreadyDecided = errors.New("order already decided")
	ErrInvalidPrice        = errors.New("invalid price")
	ErrProvider            = errors.New("identity provider error")
)
