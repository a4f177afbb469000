package models

import "time"

// BOMEntry - one recipe line: how much of a raw material goes into a single
// unit of a product. A product with no BOM entries cannot be produced.
type BOMEntry struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	ProductID       uint        `gorm:"index;not null;uniqueIndex:idx_bom_product_material" json:"product_id"`
	Product         Product     `json:"-"`
	MaterialID      uint        `gorm:"not null;uniqueIndex:idx_bom_product_material" json:"material_id"`
	Material        RawMaterial `json:"-"`
	QuantityPerUnit float64     `gorm:"not null" json:"quantity_per_unit"` // fractional is fine (0.5 kg per jar)
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}
