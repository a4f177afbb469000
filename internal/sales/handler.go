package sales

import (
	"time"

	"honeyworks-backend/internal/database"
	"honeyworks-backend/internal/i18n"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type RecordSaleRequest struct {
	ProductID     uint             `json:"product_id"`
	Quantity      float64          `json:"quantity"`
	CustomerName  string           `json:"customer_name"`
	CustomerID    *uint            `json:"customer_id"`
	SalePrice     decimal.Decimal  `json:"sale_price"`
	AmountPaid    *decimal.Decimal `json:"amount_paid"`
	PaymentMethod string           `json:"payment_method"`
	SaleDate      string           `json:"sale_date"` // "2025-12-09", optional
	Notes         string           `json:"notes"`
}

// POST /api/sales
func RecordSaleHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body RecordSaleRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, i18n.M(c, "error.invalid_body"))
		}

		var saleDate *time.Time
		if body.SaleDate != "" {
			d, err := time.Parse("2006-01-02", body.SaleDate)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, i18n.M(c, "error.invalid_date"))
			}
			saleDate = &d
		}

		result, err := NewService(database.DB).Record(RecordInput{
			ProductID:     body.ProductID,
			Quantity:      body.Quantity,
			CustomerName:  body.CustomerName,
			CustomerID:    body.CustomerID,
			SalePrice:     body.SalePrice,
			AmountPaid:    body.AmountPaid,
			PaymentMethod: body.PaymentMethod,
			SaleDate:      saleDate,
			Notes:         body.Notes,
		})
		if err != nil {
			return err
		}

		response := fiber.Map{
			"sale":           result.Sale,
			"balance_due":    result.BalanceDue,
			"balance_posted": result.BalancePosted,
		}
		if !result.BalancePosted {
			response["warning"] = i18n.M(c, "warning.balance_not_posted")
		}
		return c.Status(fiber.StatusCreated).JSON(response)
	}
}

// GET /api/sales?from=2025-01-01&to=2025-01-31&limit=100
func ListSalesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		from, to, err := parseDateRange(c)
		if err != nil {
			return err
		}
		limit := c.QueryInt("limit", 200)

		records, err := NewService(database.DB).List(from, to, limit)
		if err != nil {
			return err
		}
		return c.JSON(records)
	}
}

func parseDateRange(c *fiber.Ctx) (*time.Time, *time.Time, error) {
	var from, to *time.Time
	if s := c.Query("from"); s != "" {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			return nil, nil, fiber.NewError(fiber.StatusBadRequest, i18n.M(c, "error.invalid_date"))
		}
		from = &d
	}
	if s := c.Query("to"); s != "" {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			return nil, nil, fiber.NewError(fiber.StatusBadRequest, i18n.M(c, "error.invalid_date"))
		}
		// inclusive end of day
		d = d.Add(24*time.Hour - time.Second)
		to = &d
	}
	return from, to, nil
}
