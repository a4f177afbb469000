package materials

import (
	"strings"

	"honeyworks-backend/internal/database"
	"honeyworks-backend/internal/i18n"
	"honeyworks-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type CreateMaterialRequest struct {
	Name         string           `json:"name"`
	NameAr       string           `json:"name_ar"`
	Unit         string           `json:"unit"`
	CurrentStock float64          `json:"current_stock"`
	MinThreshold float64          `json:"min_threshold"`
	CostPerUnit  *decimal.Decimal `json:"cost_per_unit"`
	SupplierID   *uint            `json:"supplier_id"`
	SupplierName string           `json:"supplier_name"`
}

type UpdateMaterialRequest struct {
	Name         *string          `json:"name"`
	NameAr       *string          `json:"name_ar"`
	Unit         *string          `json:"unit"`
	MinThreshold *float64         `json:"min_threshold"`
	CostPerUnit  *decimal.Decimal `json:"cost_per_unit"`
	SupplierID   *uint            `json:"supplier_id"`
	SupplierName *string          `json:"supplier_name"`
}

type MaterialResponse struct {
	models.RawMaterial
	LowStock bool `json:"low_stock"`
}

// GET /api/materials
func ListMaterialsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var mats []models.RawMaterial
		if err := database.DB.Order("name asc").Find(&mats).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, i18n.M(c, "error.store"))
		}

		res := make([]MaterialResponse, 0, len(mats))
		for _, m := range mats {
			res = append(res, MaterialResponse{
				RawMaterial: m,
				LowStock:    m.CurrentStock <= m.MinThreshold,
			})
		}
		return c.JSON(res)
	}
}

// POST /api/admin/materials
func CreateMaterialHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateMaterialRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, i18n.M(c, "error.invalid_body"))
		}

		body.Name = strings.TrimSpace(body.Name)
		body.NameAr = strings.TrimSpace(body.NameAr)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, i18n.M(c, "error.validation"))
		}

		unit := models.MaterialUnit(body.Unit)
		if !unit.Valid() {
			return fiber.NewError(fiber.StatusBadRequest, i18n.M(c, "error.invalid_unit"))
		}
		if body.CurrentStock < 0 || body.MinThreshold < 0 {
			return fiber.NewError(fiber.StatusBadRequest, i18n.M(c, "error.validation"))
		}

		m := models.RawMaterial{
			Name:         body.Name,
			NameAr:       body.NameAr,
			Unit:         unit,
			CurrentStock: body.CurrentStock,
			MinThreshold: body.MinThreshold,
			CostPerUnit:  body.CostPerUnit,
			SupplierID:   body.SupplierID,
			SupplierName: strings.TrimSpace(body.SupplierName),
		}
		if err := database.DB.Create(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, i18n.M(c, "error.store"))
		}

		return c.Status(fiber.StatusCreated).JSON(m)
	}
}

// PUT /api/materials/:id
func UpdateMaterialHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var m models.RawMaterial
		if err := database.DB.First(&m, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, i18n.M(c, "error.not_found"))
		}

		var body UpdateMaterialRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, i18n.M(c, "error.invalid_body"))
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, i18n.M(c, "error.validation"))
			}
			m.Name = name
		}
		if body.NameAr != nil {
			m.NameAr = strings.TrimSpace(*body.NameAr)
		}
		if body.Unit != nil {
			unit := models.MaterialUnit(*body.Unit)
			if !unit.Valid() {
				return fiber.NewError(fiber.StatusBadRequest, i18n.M(c, "error.invalid_unit"))
			}
			m.Unit = unit
		}
		if body.MinThreshold != nil {
			if *body.MinThreshold < 0 {
				return fiber.NewError(fiber.StatusBadRequest, i18n.M(c, "error.validation"))
			}
			m.MinThreshold = *body.MinThreshold
		}
		if body.CostPerUnit != nil {
			m.CostPerUnit = body.CostPerUnit
		}
		if body.SupplierID != nil {
			m.SupplierID = body.SupplierID
		}
		if body.SupplierName != nil {
			m.SupplierName = strings.TrimSpace(*body.SupplierName)
		}

		if err := database.DB.Save(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, i18n.M(c, "error.store"))
		}
		return c.JSON(m)
	}
}

// DELETE /api/admin/materials/:id
func DeleteMaterialHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		if err := database.DB.Delete(&models.RawMaterial{}, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, i18n.M(c, "error.store"))
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
