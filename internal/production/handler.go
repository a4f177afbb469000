package production

import (
	"time"

	"honeyworks-backend/internal/bom"
	"honeyworks-backend/internal/database"
	"honeyworks-backend/internal/i18n"

	"github.com/gofiber/fiber/v2"
)

type RecordProductionRequest struct {
	ProductID      uint    `json:"product_id"`
	Quantity       float64 `json:"quantity"`
	ProductionDate string  `json:"production_date"` // "2025-12-09", optional
	Notes          string  `json:"notes"`
}

// POST /api/production
func RecordProductionHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body RecordProductionRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, i18n.M(c, "error.invalid_body"))
		}

		if body.ProductID == 0 || body.Quantity <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, i18n.M(c, "error.positive_quantity_required"))
		}

		var productionDate *time.Time
		if body.ProductionDate != "" {
			d, err := time.Parse("2006-01-02", body.ProductionDate)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, i18n.M(c, "error.invalid_date"))
			}
			productionDate = &d
		}

		record, err := NewService(database.DB).Record(RecordInput{
			ProductID:      body.ProductID,
			Quantity:       body.Quantity,
			ProductionDate: productionDate,
			Notes:          body.Notes,
		})
		if err != nil {
			return err
		}

		return c.Status(fiber.StatusCreated).JSON(record)
	}
}

// GET /api/production?limit=50
func ListProductionHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit := c.QueryInt("limit", 100)

		records, err := NewService(database.DB).List(limit)
		if err != nil {
			return err
		}
		return c.JSON(records)
	}
}

// GET /api/production/requirements?product_id=1&quantity=40
// Used by the production dialog to preview the materials-required table
// before a run is recorded.
func ResolveRequirementsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		productID := uint(c.QueryInt("product_id"))
		quantity := c.QueryFloat("quantity", 1)

		if productID == 0 || quantity <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, i18n.M(c, "error.positive_quantity_required"))
		}

		resolution, err := bom.NewResolver(database.DB).ResolveRequirements(productID, quantity)
		if err != nil {
			return err
		}
		return c.JSON(resolution)
	}
}
