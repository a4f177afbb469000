package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductionRecord - one production run. Created together with its
// ProductionMaterial children in a single transaction, never mutated after.
type ProductionRecord struct {
	ID             uint                 `gorm:"primaryKey" json:"id"`
	ProductID      uint                 `gorm:"index;not null" json:"product_id"`
	Product        Product              `json:"-"`
	Quantity       float64              `gorm:"not null" json:"quantity"`
	ProductionDate time.Time            `gorm:"index;not null" json:"production_date"`
	TotalCost      *decimal.Decimal     `gorm:"type:decimal(20,4)" json:"total_cost"`
	Notes          string               `gorm:"size:500" json:"notes"`
	Materials      []ProductionMaterial `gorm:"foreignKey:ProductionRecordID;constraint:OnDelete:CASCADE" json:"materials"`
	CreatedAt      time.Time            `json:"created_at"`
}

// ProductionMaterial - immutable snapshot of what a run consumed and at what
// per-unit cost, kept for historical costing.
type ProductionMaterial struct {
	ID                 uint            `gorm:"primaryKey" json:"id"`
	ProductionRecordID uint            `gorm:"index;not null" json:"production_record_id"`
	MaterialID         uint            `gorm:"index;not null" json:"material_id"`
	Material           RawMaterial     `json:"-"`
	QuantityUsed       float64         `gorm:"not null" json:"quantity_used"`
	CostAtTime         decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"cost_at_time"`
}
