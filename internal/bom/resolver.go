package bom

import (
	"errors"
	"fmt"

	"honeyworks-backend/internal/apperr"
	"honeyworks-backend/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Requirement - one resolved recipe line for a requested production quantity.
type Requirement struct {
	MaterialID       uint                `json:"material_id"`
	MaterialName     string              `json:"material_name"`
	MaterialNameAr   string              `json:"material_name_ar"`
	Unit             models.MaterialUnit `json:"unit"`
	QuantityPerUnit  float64             `json:"quantity_per_unit"`
	QuantityRequired float64             `json:"quantity_required"`
	Available        float64             `json:"available"`
	Sufficient       bool                `json:"sufficient"`
	CostPerUnit      decimal.Decimal     `json:"cost_per_unit"`
}

// Resolution - the full requirement list for producing Quantity units of a
// product. AllSufficient is true only when the recipe is non-empty and every
// line is covered by current stock.
type Resolution struct {
	ProductID     uint          `json:"product_id"`
	Quantity      float64       `json:"quantity"`
	Requirements  []Requirement `json:"requirements"`
	AllSufficient bool          `json:"all_sufficient"`
}

// HasRecipe distinguishes "no recipe configured" from "insufficient stock".
func (r Resolution) HasRecipe() bool {
	return len(r.Requirements) > 0
}

// Resolve computes requirements from already loaded BOM entries (Material
// preloaded). Pure function of its inputs: resolving twice without an
// intervening stock change yields identical results.
func Resolve(productID uint, entries []models.BOMEntry, quantity float64) Resolution {
	res := Resolution{
		ProductID:    productID,
		Quantity:     quantity,
		Requirements: make([]Requirement, 0, len(entries)),
	}

	allSufficient := len(entries) > 0
	for _, e := range entries {
		required := e.QuantityPerUnit * quantity
		available := e.Material.CurrentStock
		sufficient := available >= required

		cost := decimal.Zero
		if e.Material.CostPerUnit != nil {
			cost = *e.Material.CostPerUnit
		}

		res.Requirements = append(res.Requirements, Requirement{
			MaterialID:       e.MaterialID,
			MaterialName:     e.Material.Name,
			MaterialNameAr:   e.Material.NameAr,
			Unit:             e.Material.Unit,
			QuantityPerUnit:  e.QuantityPerUnit,
			QuantityRequired: required,
			Available:        available,
			Sufficient:       sufficient,
			CostPerUnit:      cost,
		})
		if !sufficient {
			allSufficient = false
		}
	}

	res.AllSufficient = allSufficient
	return res
}

type Resolver struct {
	db *gorm.DB
}

func NewResolver(db *gorm.DB) *Resolver {
	return &Resolver{db: db}
}

// ResolveRequirements loads the product's recipe with a fresh stock snapshot
// per material and resolves it against the requested quantity.
func (r *Resolver) ResolveRequirements(productID uint, quantity float64) (Resolution, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Resolution{}, fmt.Errorf("product %d: %w", productID, apperr.ErrNotFound)
		}
		return Resolution{}, fmt.Errorf("load product: %w: %v", apperr.ErrStore, err)
	}

	var entries []models.BOMEntry
	if err := r.db.Preload("Material").
		Where("product_id = ?", productID).
		Find(&entries).Error; err != nil {
		return Resolution{}, fmt.Errorf("load bom entries: %w: %v", apperr.ErrStore, err)
	}

	return Resolve(productID, entries, quantity), nil
}
