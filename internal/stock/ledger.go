package stock

import (
	"fmt"
	"math"
	"time"

	"honeyworks-backend/internal/apperr"
	"honeyworks-backend/internal/models"

	"gorm.io/gorm"
)

// Ledger holds the stock adjustment primitives. Every adjustment is a single
// conditional UPDATE with a non-negativity guard, so two racing callers can
// never drive a stock level below zero: the loser's update matches no rows
// and the call fails with ErrInsufficientStock instead.
//
// Pass a transaction handle to make adjustments part of a larger operation.
type Ledger struct {
	db *gorm.DB
}

func NewLedger(db *gorm.DB) *Ledger {
	return &Ledger{db: db}
}

// Adjustment describes one stock delta plus the audit-trail fields for the
// resulting stock movement row. Delta is negative for consumption.
type Adjustment struct {
	Delta         float64
	ReferenceType string
	ReferenceID   *uint
	Notes         string
}

// AdjustMaterialStock applies a delta to a raw material's current stock and
// records a stock movement. Fails with ErrNotFound when the material does not
// exist and ErrInsufficientStock when the delta would take the stock negative.
func (l *Ledger) AdjustMaterialStock(materialID uint, adj Adjustment) error {
	res := l.db.Model(&models.RawMaterial{}).
		Where("id = ? AND current_stock + ? >= 0", materialID, adj.Delta).
		Updates(map[string]interface{}{
			"current_stock": gorm.Expr("current_stock + ?", adj.Delta),
			"updated_at":    time.Now(),
		})
	if res.Error != nil {
		return fmt.Errorf("adjust material stock: %w: %v", apperr.ErrStore, res.Error)
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := l.db.Model(&models.RawMaterial{}).Where("id = ?", materialID).Count(&count).Error; err != nil {
			return fmt.Errorf("adjust material stock: %w: %v", apperr.ErrStore, err)
		}
		if count == 0 {
			return fmt.Errorf("material %d: %w", materialID, apperr.ErrNotFound)
		}
		return fmt.Errorf("material %d: %w", materialID, apperr.ErrInsufficientStock)
	}

	return l.writeMovement(models.StockMovement{
		MaterialID:    &materialID,
		MovementType:  movementType(adj.Delta),
		Quantity:      math.Abs(adj.Delta),
		ReferenceType: adj.ReferenceType,
		ReferenceID:   adj.ReferenceID,
		Notes:         adj.Notes,
	})
}

// AdjustProductStock is the finished-goods counterpart of AdjustMaterialStock.
func (l *Ledger) AdjustProductStock(productID uint, adj Adjustment) error {
	res := l.db.Model(&models.Product{}).
		Where("id = ? AND current_stock + ? >= 0", productID, adj.Delta).
		Updates(map[string]interface{}{
			"current_stock": gorm.Expr("current_stock + ?", adj.Delta),
			"updated_at":    time.Now(),
		})
	if res.Error != nil {
		return fmt.Errorf("adjust product stock: %w: %v", apperr.ErrStore, res.Error)
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := l.db.Model(&models.Product{}).Where("id = ?", productID).Count(&count).Error; err != nil {
			return fmt.Errorf("adjust product stock: %w: %v", apperr.ErrStore, err)
		}
		if count == 0 {
			return fmt.Errorf("product %d: %w", productID, apperr.ErrNotFound)
		}
		return fmt.Errorf("product %d: %w", productID, apperr.ErrInsufficientStock)
	}

	return l.writeMovement(models.StockMovement{
		ProductID:     &productID,
		MovementType:  movementType(adj.Delta),
		Quantity:      math.Abs(adj.Delta),
		ReferenceType: adj.ReferenceType,
		ReferenceID:   adj.ReferenceID,
		Notes:         adj.Notes,
	})
}

func (l *Ledger) writeMovement(m models.StockMovement) error {
	if m.Quantity == 0 {
		return nil
	}
	if err := l.db.Create(&m).Error; err != nil {
		return fmt.Errorf("write stock movement: %w: %v", apperr.ErrStore, err)
	}
	return nil
}

func movementType(delta float64) models.MovementType {
	if delta < 0 {
		return models.MovementOut
	}
	return models.MovementIn
}
