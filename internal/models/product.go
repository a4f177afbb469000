package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product - finished goods catalog entry. CurrentStock increases only via
// production and decreases only via sales (or a corrective update).
type Product struct {
	ID             uint             `gorm:"primaryKey" json:"id"`
	Name           string           `gorm:"size:100;not null" json:"name"`
	NameAr         string           `gorm:"size:100;not null" json:"name_ar"`
	Size           ProductSize      `gorm:"size:20;not null" json:"size"`
	SellingPrice   *decimal.Decimal `gorm:"type:decimal(20,4)" json:"selling_price"`
	ProductionCost *decimal.Decimal `gorm:"type:decimal(20,4)" json:"production_cost"`
	CurrentStock   float64          `gorm:"not null;default:0" json:"current_stock"`
	MinThreshold   float64          `gorm:"not null;default:0" json:"min_threshold"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}
