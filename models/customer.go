package models

import (
	"time"

	"github.com/google/uuid"
)

type Customer struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`

	Name    string `gorm:"size:100;not null"`
	Email   string `gorm:"uniqueIndex;not null"`
	Phone   string `gorm:"size:15"`
	Address string

	CreatedAt time.Time

	Orders []Order `gorm:"foreignKey:CustomerID"`
}
