package materials

import (
	"errors"
	"fmt"
	"time"

	"honeyworks-backend/internal/apperr"
	"honeyworks-backend/internal/database"
	"honeyworks-backend/internal/i18n"
	"honeyworks-backend/internal/models"
	"honeyworks-backend/internal/stock"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ReceiveMaterialRequest struct {
	Quantity    float64          `json:"quantity"`
	CostPerUnit *decimal.Decimal `json:"cost_per_unit"` // also updates the material's cost
	Notes       string           `json:"notes"`
}

// ReceiveMaterial books a material receipt: stock increment, last_received
// stamp and, when the material has a supplier and a known cost, a purchase
// entry in the supplier ledger. Runs in one transaction.
func ReceiveMaterial(db *gorm.DB, materialID uint, req ReceiveMaterialRequest) (*models.RawMaterial, error) {
	if req.Quantity <= 0 {
		return nil, fmt.Errorf("receive quantity must be positive: %w", apperr.ErrValidation)
	}

	var material models.RawMaterial
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&material, "id = ?", materialID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("material %d: %w", materialID, apperr.ErrNotFound)
			}
			return fmt.Errorf("load material: %w: %v", apperr.ErrStore, err)
		}

		if err := stock.NewLedger(tx).AdjustMaterialStock(materialID, stock.Adjustment{
			Delta:         req.Quantity,
			ReferenceType: models.MovementRefReceipt,
			Notes:         req.Notes,
		}); err != nil {
			return err
		}

		now := time.Now()
		updates := map[string]interface{}{"last_received": now}
		if req.CostPerUnit != nil {
			updates["cost_per_unit"] = *req.CostPerUnit
		}
		if err := tx.Model(&models.RawMaterial{}).Where("id = ?", materialID).Updates(updates).Error; err != nil {
			return fmt.Errorf("stamp receipt: %w: %v", apperr.ErrStore, err)
		}

		cost := material.CostPerUnit
		if req.CostPerUnit != nil {
			cost = req.CostPerUnit
		}
		if material.SupplierID != nil && cost != nil && cost.IsPositive() {
			entry := models.SupplierTransaction{
				SupplierID:  *material.SupplierID,
				Type:        models.SupplierTxPurchase,
				Amount:      cost.Mul(decimal.NewFromFloat(req.Quantity)),
				Description: fmt.Sprintf("Received %g %s of %s", req.Quantity, material.Unit, material.Name),
				ReferenceID: &material.ID,
			}
			if err := tx.Create(&entry).Error; err != nil {
				return fmt.Errorf("post supplier transaction: %w: %v", apperr.ErrStore, err)
			}
		}

		return tx.First(&material, "id = ?", materialID).Error
	})
	if err != nil {
		return nil, err
	}
	return &material, nil
}

// POST /api/materials/:id/receive
func ReceiveMaterialHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusNotFound, i18n.M(c, "error.not_found"))
		}

		var body ReceiveMaterialRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, i18n.M(c, "error.invalid_body"))
		}

		material, err := ReceiveMaterial(database.DB, uint(id), body)
		if err != nil {
			return err
		}
		return c.JSON(material)
	}
}
