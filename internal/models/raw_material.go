package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RawMaterial - purchased input stock (honey, herbs, jars, labels...)
// CurrentStock only changes through receive, production consumption or a
// corrective update; the storage-level guard keeps it from going negative.
type RawMaterial struct {
	ID           uint             `gorm:"primaryKey" json:"id"`
	Name         string           `gorm:"size:100;not null" json:"name"`
	NameAr       string           `gorm:"size:100;not null" json:"name_ar"`
	Unit         MaterialUnit     `gorm:"size:20;not null" json:"unit"`
	CurrentStock float64          `gorm:"not null;default:0" json:"current_stock"`
	MinThreshold float64          `gorm:"not null;default:0" json:"min_threshold"`
	CostPerUnit  *decimal.Decimal `gorm:"type:decimal(20,4)" json:"cost_per_unit"`
	SupplierID   *uint            `gorm:"index" json:"supplier_id"`
	Supplier     *Supplier        `json:"-"`
	SupplierName string           `gorm:"size:100" json:"supplier_name"` // free-text fallback when the supplier is not registered
	LastReceived *time.Time       `json:"last_received"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}
