package admin

import (
	"strings"

	"honeyworks-backend/internal/database"
	"honeyworks-backend/internal/i18n"
	"honeyworks-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type SupplierRequest struct {
	Name   string `json:"name"`
	NameAr string `json:"name_ar"`
	Phone  string `json:"phone"`
	Notes  string `json:"notes"`
}

// GET /api/suppliers
func ListSuppliersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var suppliers []models.Supplier
		if err := database.DB.Order("name asc").Find(&suppliers).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, i18n.M(c, "error.store"))
		}
		return c.JSON(suppliers)
	}
}

// POST /api/suppliers
func CreateSupplierHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body SupplierRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, i18n.M(c, "error.invalid_body"))
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, i18n.M(c, "error.validation"))
		}

		supplier := models.Supplier{
			Name:   body.Name,
			NameAr: strings.TrimSpace(body.NameAr),
			Phone:  strings.TrimSpace(body.Phone),
			Notes:  body.Notes,
		}
		if err := database.DB.Create(&supplier).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, i18n.M(c, "error.store"))
		}
		return c.Status(fiber.StatusCreated).JSON(supplier)
	}
}

// PUT /api/suppliers/:id
func UpdateSupplierHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var supplier models.Supplier
		if err := database.DB.First(&supplier, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, i18n.M(c, "error.not_found"))
		}

		var body SupplierRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, i18n.M(c, "error.invalid_body"))
		}

		if name := strings.TrimSpace(body.Name); name != "" {
			supplier.Name = name
		}
		supplier.NameAr = strings.TrimSpace(body.NameAr)
		supplier.Phone = strings.TrimSpace(body.Phone)
		supplier.Notes = body.Notes

		if err := database.DB.Save(&supplier).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, i18n.M(c, "error.store"))
		}
		return c.JSON(supplier)
	}
}

// DELETE /api/admin/suppliers/:id
func DeleteSupplierHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		if err := database.DB.Delete(&models.Supplier{}, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, i18n.M(c, "error.store"))
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// GET /api/suppliers/:id/transactions
func ListSupplierTransactionsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusNotFound, i18n.M(c, "error.not_found"))
		}

		var entries []models.SupplierTransaction
		if err := database.DB.
			Where("supplier_id = ?", id).
			Order("created_at desc").
			Find(&entries).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, i18n.M(c, "error.store"))
		}

		balance := decimal.Zero
		for _, e := range entries {
			if e.Type == models.SupplierTxPayment {
				balance = balance.Sub(e.Amount)
			} else {
				balance = balance.Add(e.Amount)
			}
		}

		return c.JSON(fiber.Map{
			"transactions": entries,
			"balance":      balance,
		})
	}
}

type SupplierPaymentRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// POST /api/suppliers/:id/payments
func CreateSupplierPaymentHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusNotFound, i18n.M(c, "error.not_found"))
		}

		var supplier models.Supplier
		if err := database.DB.First(&supplier, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, i18n.M(c, "error.not_found"))
		}

		var body SupplierPaymentRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, i18n.M(c, "error.invalid_body"))
		}
		if !body.Amount.IsPositive() {
			return fiber.NewError(fiber.StatusBadRequest, i18n.M(c, "error.positive_price_required"))
		}

		entry := models.SupplierTransaction{
			SupplierID:  uint(id),
			Type:        models.SupplierTxPayment,
			Amount:      body.Amount,
			Description: body.Description,
		}
		if err := database.DB.Create(&entry).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, i18n.M(c, "error.store"))
		}
		return c.Status(fiber.StatusCreated).JSON(entry)
	}
}
