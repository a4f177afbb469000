package admin

import (
	"strings"

	"honeyworks-backend/internal/database"
	"honeyworks-backend/internal/i18n"
	"honeyworks-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type CustomerRequest struct {
	Name   string `json:"name"`
	NameAr string `json:"name_ar"`
	Phone  string `json:"phone"`
	Notes  string `json:"notes"`
}

// GET /api/customers
func ListCustomersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var customers []models.Customer
		if err := database.DB.Order("name asc").Find(&customers).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, i18n.M(c, "error.store"))
		}
		return c.JSON(customers)
	}
}

// POST /api/customers
func CreateCustomerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CustomerRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, i18n.M(c, "error.invalid_body"))
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, i18n.M(c, "error.customer_name_required"))
		}

		customer := models.Customer{
			Name:   body.Name,
			NameAr: strings.TrimSpace(body.NameAr),
			Phone:  strings.TrimSpace(body.Phone),
			Notes:  body.Notes,
		}
		if err := database.DB.Create(&customer).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, i18n.M(c, "error.store"))
		}
		return c.Status(fiber.StatusCreated).JSON(customer)
	}
}

// PUT /api/customers/:id
func UpdateCustomerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var customer models.Customer
		if err := database.DB.First(&customer, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, i18n.M(c, "error.not_found"))
		}

		var body CustomerRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, i18n.M(c, "error.invalid_body"))
		}

		if name := strings.TrimSpace(body.Name); name != "" {
			customer.Name = name
		}
		customer.NameAr = strings.TrimSpace(body.NameAr)
		customer.Phone = strings.TrimSpace(body.Phone)
		customer.Notes = body.Notes

		if err := database.DB.Save(&customer).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, i18n.M(c, "error.store"))
		}
		return c.JSON(customer)
	}
}

// DELETE /api/admin/customers/:id
func DeleteCustomerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		if err := database.DB.Delete(&models.Customer{}, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, i18n.M(c, "error.store"))
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// GET /api/customers/:id/transactions - the customer's ledger, newest first,
// plus the outstanding balance (sale entries minus payments).
func ListCustomerTransactionsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusNotFound, i18n.M(c, "error.not_found"))
		}

		var entries []models.CustomerTransaction
		if err := database.DB.
			Where("customer_id = ?", id).
			Order("created_at desc").
			Find(&entries).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, i18n.M(c, "error.store"))
		}

		balance := decimal.Zero
		for _, e := range entries {
			if e.Type == models.CustomerTxPayment {
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

type CustomerPaymentRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// POST /api/customers/:id/payments - settles (part of) an outstanding balance
// with a new append-only ledger entry.
func CreateCustomerPaymentHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusNotFound, i18n.M(c, "error.not_found"))
		}

		var customer models.Customer
		if err := database.DB.First(&customer, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, i18n.M(c, "error.not_found"))
		}

		var body CustomerPaymentRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, i18n.M(c, "error.invalid_body"))
		}
		if !body.Amount.IsPositive() {
			return fiber.NewError(fiber.StatusBadRequest, i18n.M(c, "error.positive_price_required"))
		}

		entry := models.CustomerTransaction{
			CustomerID:  uint(id),
			Type:        models.CustomerTxPayment,
			Amount:      body.Amount,
			Description: body.Description,
		}
		if err := database.DB.Create(&entry).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, i18n.M(c, "error.store"))
		}
		return c.Status(fiber.StatusCreated).JSON(entry)
	}
}
