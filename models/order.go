package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
	OrderStatusRefunded   = "refunded"
)

// OrderStatuses lists the accepted statuses in canonical order.
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
	OrderStatusRefunded,
}

func IsValidOrderStatus(status string) bool {
	for _, s := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

type Order struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`

	CustomerID uuid.UUID `gorm:"type:uuid;index;not null"`
	ProductID  uuid.UUID `gorm:"type:uuid;index;not null"`

	Quantity    int       `gorm:"not null"`
	OrderDate   time.Time `gorm:"index;not null"`
	Status      string    `gorm:"size:20;index;default:'pending'"`
	TotalAmount float64   `gorm:"type:decimal(12,2);not null"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Customer Customer `gorm:"foreignKey:CustomerID"`
	Product  Product  `gorm:"foreignKey:ProductID"`
}
