package catalog

import (
	"strings"

	"honeyworks-backend/internal/database"
	"honeyworks-backend/internal/i18n"
	"honeyworks-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type CreateProductRequest struct {
	Name           string           `json:"name"`
	NameAr         string           `json:"name_ar"`
	Size           string           `json:"size"`
	SellingPrice   *decimal.Decimal `json:"selling_price"`
	ProductionCost *decimal.Decimal `json:"production_cost"`
	CurrentStock   float64          `json:"current_stock"`
	MinThreshold   float64          `json:"min_threshold"`
}

type UpdateProductRequest struct {
	Name           *string          `json:"name"`
	NameAr         *string          `json:"name_ar"`
	Size           *string          `json:"size"`
	SellingPrice   *decimal.Decimal `json:"selling_price"`
	ProductionCost *decimal.Decimal `json:"production_cost"`
	MinThreshold   *float64         `json:"min_threshold"`
}

type ProductResponse struct {
	models.Product
	LowStock bool `json:"low_stock"`
}

// GET /api/products
func ListProductsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var products []models.Product
		if err := database.DB.Order("name asc").Find(&products).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, i18n.M(c, "error.store"))
		}

		res := make([]ProductResponse, 0, len(products))
		for _, p := range products {
			res = append(res, ProductResponse{
				Product:  p,
				LowStock: p.CurrentStock <= p.MinThreshold,
			})
		}
		return c.JSON(res)
	}
}

// POST /api/admin/products
func CreateProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, i18n.M(c, "error.invalid_body"))
		}

		body.Name = strings.TrimSpace(body.Name)
		body.NameAr = strings.TrimSpace(body.NameAr)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, i18n.M(c, "error.validation"))
		}

		size := models.ProductSize(body.Size)
		if !size.Valid() {
			return fiber.NewError(fiber.StatusBadRequest, i18n.M(c, "error.invalid_size"))
		}
		if body.CurrentStock < 0 || body.MinThreshold < 0 {
			return fiber.NewError(fiber.StatusBadRequest, i18n.M(c, "error.validation"))
		}

		p := models.Product{
			Name:           body.Name,
			NameAr:         body.NameAr,
			Size:           size,
			SellingPrice:   body.SellingPrice,
			ProductionCost: body.ProductionCost,
			CurrentStock:   body.CurrentStock,
			MinThreshold:   body.MinThreshold,
		}
		if err := database.DB.Create(&p).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, i18n.M(c, "error.store"))
		}

		return c.Status(fiber.StatusCreated).JSON(p)
	}
}

// PUT /api/admin/products/:id
func UpdateProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var p models.Product
		if err := database.DB.First(&p, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, i18n.M(c, "error.not_found"))
		}

		var body UpdateProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, i18n.M(c, "error.invalid_body"))
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, i18n.M(c, "error.validation"))
			}
			p.Name = name
		}
		if body.NameAr != nil {
			p.NameAr = strings.TrimSpace(*body.NameAr)
		}
		if body.Size != nil {
			size := models.ProductSize(*body.Size)
			if !size.Valid() {
				return fiber.NewError(fiber.StatusBadRequest, i18n.M(c, "error.invalid_size"))
			}
			p.Size = size
		}
		if body.SellingPrice != nil {
			p.SellingPrice = body.SellingPrice
		}
		if body.ProductionCost != nil {
			p.ProductionCost = body.ProductionCost
		}
		if body.MinThreshold != nil {
			if *body.MinThreshold < 0 {
				return fiber.NewError(fiber.StatusBadRequest, i18n.M(c, "error.validation"))
			}
			p.MinThreshold = *body.MinThreshold
		}

		if err := database.DB.Save(&p).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, i18n.M(c, "error.store"))
		}
		return c.JSON(p)
	}
}

// DELETE /api/admin/products/:id
func DeleteProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		if err := database.DB.Delete(&models.Product{}, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, i18n.M(c, "error.store"))
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
