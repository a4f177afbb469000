package alerts

import (
	"honeyworks-backend/internal/database"
	"honeyworks-backend/internal/i18n"
	"honeyworks-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GET /api/alerts/low-stock - everything at or below its minimum threshold,
// for the alerts panel.
func LowStockHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var materials []models.RawMaterial
		if err := database.DB.
			Where("current_stock <= min_threshold").
			Order("name asc").
			Find(&materials).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, i18n.M(c, "error.store"))
		}

		var products []models.Product
		if err := database.DB.
			Where("current_stock <= min_threshold").
			Order("name asc").
			Find(&products).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, i18n.M(c, "error.store"))
		}

		return c.JSON(fiber.Map{
			"materials": materials,
			"products":  products,
		})
	}
}
