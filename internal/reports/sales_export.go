package reports

import (
	"fmt"
	"time"

	"honeyworks-backend/internal/database"
	"honeyworks-backend/internal/i18n"
	"honeyworks-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

// GET /api/reports/sales/export?from=2025-01-01&to=2025-01-31
// Produces an XLSX workbook of the sales in the range.
func ExportSalesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := database.DB.Preload("Product").Order("sale_date asc")
		if s := c.Query("from"); s != "" {
			d, err := time.Parse("2006-01-02", s)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, i18n.M(c, "error.invalid_date"))
			}
			q = q.Where("sale_date >= ?", d)
		}
		if s := c.Query("to"); s != "" {
			d, err := time.Parse("2006-01-02", s)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, i18n.M(c, "error.invalid_date"))
			}
			q = q.Where("sale_date <= ?", d.Add(24*time.Hour-time.Second))
		}

		var sales []models.SaleRecord
		if err := q.Find(&sales).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, i18n.M(c, "error.store"))
		}

		f := excelize.NewFile()
		defer f.Close()

		sheet := "Sales"
		f.SetSheetName("Sheet1", sheet)

		headers := []string{"Date", "Product", "Size", "Quantity", "Customer", "Unit Price", "Total", "Paid", "Status", "Method", "Notes"}
		for i, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			f.SetCellValue(sheet, cell, h)
		}

		for row, sale := range sales {
			values := []interface{}{
				sale.SaleDate.Format("2006-01-02"),
				sale.Product.Name,
				string(sale.Product.Size),
				sale.Quantity,
				sale.CustomerName,
				sale.SalePrice.InexactFloat64(),
				sale.TotalAmount.InexactFloat64(),
				sale.AmountPaid.InexactFloat64(),
				string(sale.PaymentStatus),
				sale.PaymentMethod,
				sale.Notes,
			}
			for col, v := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
				f.SetCellValue(sheet, cell, v)
			}
		}

		buf, err := f.WriteToBuffer()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, i18n.M(c, "error.store"))
		}

		filename := fmt.Sprintf("sales-%s.xlsx", time.Now().Format("2006-01-02"))
		c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		return c.Send(buf.Bytes())
	}
}
