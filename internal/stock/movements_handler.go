package stock

import (
	"honeyworks-backend/internal/database"
	"honeyworks-backend/internal/i18n"
	"honeyworks-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GET /api/stock-movements?material_id=&product_id=&limit=
// The audit trail behind every stock change; write-mostly, read here only.
func ListMovementsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := database.DB.Order("created_at desc, id desc")

		if id := c.QueryInt("material_id"); id > 0 {
			q = q.Where("material_id = ?", id)
		}
		if id := c.QueryInt("product_id"); id > 0 {
			q = q.Where("product_id = ?", id)
		}
		limit := c.QueryInt("limit", 200)
		if limit > 0 {
			q = q.Limit(limit)
		}

		var movements []models.StockMovement
		if err := q.Find(&movements).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, i18n.M(c, "error.store"))
		}
		return c.JSON(movements)
	}
}
