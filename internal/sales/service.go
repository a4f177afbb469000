package sales

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"honeyworks-backend/internal/apperr"
	"honeyworks-backend/internal/logger"
	"honeyworks-backend/internal/models"
	"honeyworks-backend/internal/stock"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

type RecordInput struct {
	ProductID     uint
	Quantity      float64
	CustomerName  string
	CustomerID    *uint
	SalePrice     decimal.Decimal  // per unit
	AmountPaid    *decimal.Decimal // defaults to the full total
	PaymentMethod string           // defaults to cash
	SaleDate      *time.Time       // defaults to now
	Notes         string
}

// RecordResult carries the created sale plus the outcome of the secondary
// ledger posting. BalancePosted is false only when a due balance existed and
// the posting failed - the sale itself has already committed by then.
type RecordResult struct {
	Sale          *models.SaleRecord
	BalanceDue    decimal.Decimal
	BalancePosted bool
}

// ComputePayment derives total, actually paid amount and payment status from
// the sale parameters. Kept pure so the arithmetic is testable on its own.
func ComputePayment(quantity float64, salePrice decimal.Decimal, amountPaid *decimal.Decimal) (total, paid decimal.Decimal, status models.PaymentStatus) {
	total = salePrice.Mul(decimal.NewFromFloat(quantity))
	paid = total
	if amountPaid != nil {
		paid = *amountPaid
	}
	status = models.PaymentStatusPartial
	if paid.GreaterThanOrEqual(total) {
		status = models.PaymentStatusPaid
	}
	return total, paid, status
}

// Record executes one sale: validate, insert the sale record and decrement
// product stock in one transaction, then post any unpaid remainder to the
// customer ledger. Ledger posting failure does not fail the sale.
func (s *Service) Record(in RecordInput) (*RecordResult, error) {
	in.CustomerName = strings.TrimSpace(in.CustomerName)
	if in.CustomerName == "" {
		return nil, fmt.Errorf("customer name is required: %w", apperr.ErrValidation)
	}
	if in.Quantity <= 0 {
		return nil, fmt.Errorf("sale quantity must be positive: %w", apperr.ErrValidation)
	}
	if !in.SalePrice.IsPositive() {
		return nil, fmt.Errorf("sale price must be positive: %w", apperr.ErrValidation)
	}

	var product models.Product
	if err := s.db.First(&product, "id = ?", in.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %d: %w", in.ProductID, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("load product: %w: %v", apperr.ErrStore, err)
	}
	if product.CurrentStock < in.Quantity {
		return nil, fmt.Errorf("product %d: %w", in.ProductID, apperr.ErrInsufficientStock)
	}

	total, paid, status := ComputePayment(in.Quantity, in.SalePrice, in.AmountPaid)

	paymentMethod := strings.TrimSpace(in.PaymentMethod)
	if paymentMethod == "" {
		paymentMethod = models.PaymentMethodCash
	}
	saleDate := time.Now()
	if in.SaleDate != nil {
		saleDate = *in.SaleDate
	}

	sale := &models.SaleRecord{
		ProductID:     in.ProductID,
		Quantity:      in.Quantity,
		CustomerName:  in.CustomerName,
		CustomerID:    in.CustomerID,
		SalePrice:     in.SalePrice,
		TotalAmount:   total,
		AmountPaid:    paid,
		PaymentStatus: status,
		PaymentMethod: paymentMethod,
		SaleDate:      saleDate,
		Notes:         in.Notes,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(sale).Error; err != nil {
			return fmt.Errorf("insert sale record: %w: %v", apperr.ErrStore, err)
		}
		return stock.NewLedger(tx).AdjustProductStock(in.ProductID, stock.Adjustment{
			Delta:         -in.Quantity,
			ReferenceType: models.MovementRefSale,
			ReferenceID:   &sale.ID,
		})
	})
	if err != nil {
		return nil, err
	}

	result := &RecordResult{Sale: sale, BalanceDue: decimal.Zero, BalancePosted: true}

	// Unpaid remainder goes to the customer ledger. The sale has committed,
	// so a failure here is reported as a warning, never as a sale failure.
	if in.CustomerID != nil && paid.LessThan(total) {
		due := total.Sub(paid)
		result.BalanceDue = due
		ledgerEntry := models.CustomerTransaction{
			CustomerID:  *in.CustomerID,
			Type:        models.CustomerTxSale,
			Amount:      due,
			Description: fmt.Sprintf("Sale - %s (%g x %s)", in.CustomerName, in.Quantity, in.SalePrice.StringFixed(2)),
			ReferenceID: &sale.ID,
		}
		if err := s.db.Create(&ledgerEntry).Error; err != nil {
			logger.LogError("sales", "Record", map[string]interface{}{"sale_id": sale.ID}, fmt.Errorf("%w: %v", apperr.ErrLedgerPostingFailed, err))
			result.BalancePosted = false
		}
	}

	return result, nil
}

// List returns sales history, newest first, optionally filtered by date range.
func (s *Service) List(from, to *time.Time, limit int) ([]models.SaleRecord, error) {
	q := s.db.Order("sale_date DESC, id DESC")
	if from != nil {
		q = q.Where("sale_date >= ?", *from)
	}
	if to != nil {
		q = q.Where("sale_date <= ?", *to)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	var records []models.SaleRecord
	if err := q.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list sale records: %w: %v", apperr.ErrStore, err)
	}
	return records, nil
}
