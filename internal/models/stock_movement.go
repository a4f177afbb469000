package models

import "time"

type MovementType string

const (
	MovementIn  MovementType = "in"
	MovementOut MovementType = "out"
)

// Reference types for stock movements.
const (
	MovementRefProduction = "production"
	MovementRefSale       = "sale"
	MovementRefReceipt    = "receipt"
	MovementRefCorrection = "correction"
)

// StockMovement - write-mostly audit trail. Exactly one of MaterialID or
// ProductID is set per row.
type StockMovement struct {
	ID            uint         `gorm:"primaryKey" json:"id"`
	MaterialID    *uint        `gorm:"index" json:"material_id"`
	Material      *RawMaterial `json:"-"`
	ProductID     *uint        `gorm:"index" json:"product_id"`
	Product       *Product     `json:"-"`
	MovementType  MovementType `gorm:"size:10;not null" json:"movement_type"`
	Quantity      float64      `gorm:"not null" json:"quantity"` // always positive; direction is MovementType
	ReferenceType string       `gorm:"size:30;index" json:"reference_type"`
	ReferenceID   *uint        `gorm:"index" json:"reference_id"`
	Notes         string       `gorm:"size:255" json:"notes"`
	CreatedAt     time.Time    `json:"created_at"`
}
