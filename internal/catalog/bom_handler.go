package catalog

import (
	"honeyworks-backend/internal/database"
	"honeyworks-backend/internal/i18n"
	"honeyworks-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type BOMLineRequest struct {
	MaterialID      uint    `json:"material_id"`
	QuantityPerUnit float64 `json:"quantity_per_unit"`
}

type SetBOMRequest struct {
	Entries []BOMLineRequest `json:"entries"`
}

// GET /api/products/:id/bom
func GetBOMHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusNotFound, i18n.M(c, "error.not_found"))
		}

		var entries []models.BOMEntry
		if err := database.DB.Preload("Material").
			Where("product_id = ?", id).
			Find(&entries).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, i18n.M(c, "error.store"))
		}
		return c.JSON(entries)
	}
}

// PUT /api/admin/products/:id/bom - replaces the whole recipe in one
// transaction so a half-written recipe never becomes visible.
func SetBOMHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusNotFound, i18n.M(c, "error.not_found"))
		}

		var product models.Product
		if err := database.DB.First(&product, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, i18n.M(c, "error.not_found"))
		}

		var body SetBOMRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, i18n.M(c, "error.invalid_body"))
		}

		seen := make(map[uint]bool, len(body.Entries))
		for _, line := range body.Entries {
			if line.MaterialID == 0 || line.QuantityPerUnit < 0 || seen[line.MaterialID] {
				return fiber.NewError(fiber.StatusBadRequest, i18n.M(c, "error.validation"))
			}
			seen[line.MaterialID] = true

			var count int64
			database.DB.Model(&models.RawMaterial{}).Where("id = ?", line.MaterialID).Count(&count)
			if count == 0 {
				return fiber.NewError(fiber.StatusBadRequest, i18n.M(c, "error.not_found"))
			}
		}

		err = database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("product_id = ?", id).Delete(&models.BOMEntry{}).Error; err != nil {
				return err
			}
			for _, line := range body.Entries {
				entry := models.BOMEntry{
					ProductID:       uint(id),
					MaterialID:      line.MaterialID,
					QuantityPerUnit: line.QuantityPerUnit,
				}
				if err := tx.Create(&entry).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, i18n.M(c, "error.store"))
		}

		var entries []models.BOMEntry
		if err := database.DB.Preload("Material").
			Where("product_id = ?", id).
			Find(&entries).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, i18n.M(c, "error.store"))
		}
		return c.JSON(entries)
	}
}
