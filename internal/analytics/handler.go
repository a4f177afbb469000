package analytics

import (
	"honeyworks-backend/internal/database"
	"honeyworks-backend/internal/i18n"

	"github.com/gofiber/fiber/v2"
)

// GET /api/customers/:id/analytics
func CustomerAnalyticsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusNotFound, i18n.M(c, "error.not_found"))
		}

		result, err := NewService(database.DB).ForCustomer(uint(id))
		if err != nil {
			return err
		}
		return c.JSON(result)
	}
}
