package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	GoogleID string `gorm:"size:200" json:"-"` // provider subject id
	Name     string `gorm:"size:200" json:"name"`
	Email    string `gorm:"size:200;uniqueIndex;not null" json:"email"`
	Role     string `gorm:"size:32;not null" json:"role"`
}

type Product struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"size:150;not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	ImageURL    string          `gorm:"size:300" json:"image_url"`
}

// Pedido is a customer's request to buy one product, pending until the
// admin approves or rejects it.
type Pedido struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	ProductID uint      `gorm:"index;not null" json:"product_id"`
	Status    string    `gorm:"size:32;index;not null" json:"status"` // PENDING, APPROVED, REJECTED
	Data      time.Time `json:"data"`                                 // set once at creation

	User    User    `gorm:"foreignKey:UserID" json:"user"`
	Product Product `gorm:"foreignKey:ProductID" json:"product"`
}
