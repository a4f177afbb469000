package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusPartial PaymentStatus = "partial"
)

const PaymentMethodCash = "cash"

// SaleRecord - one sale. Created atomically with the product stock decrement,
// never mutated afterwards.
type SaleRecord struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	ProductID     uint            `gorm:"index;not null" json:"product_id"`
	Product       Product         `json:"-"`
	Quantity      float64         `gorm:"not null" json:"quantity"`
	CustomerName  string          `gorm:"size:100;not null" json:"customer_name"`
	CustomerID    *uint           `gorm:"index" json:"customer_id"`
	Customer      *Customer       `json:"-"`
	SalePrice     decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"sale_price"` // per unit
	TotalAmount   decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"total_amount"`
	AmountPaid    decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"amount_paid"`
	PaymentStatus PaymentStatus   `gorm:"size:20;not null" json:"payment_status"`
	PaymentMethod string          `gorm:"size:30;not null;default:cash" json:"payment_method"`
	SaleDate      time.Time       `gorm:"index;not null" json:"sale_date"`
	Notes         string          `gorm:"size:500" json:"notes"`
	CreatedAt     time.Time       `json:"created_at"`
}
