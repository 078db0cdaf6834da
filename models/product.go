package models

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`

	Name        string `gorm:"size:200;not null"`
	SKU         string `gorm:"size:50;uniqueIndex;not null"`
	Description string
	Price       float64  `gorm:"type:decimal(10,2);not null"`
	StockQuantity int    `gorm:"default:0;not null"`
	Weight      *float64 `gorm:"type:decimal(8,3)"` // kg, optional

	CreatedAt time.Time

	Orders []Order `gorm:"foreignKey:ProductID"`
}
