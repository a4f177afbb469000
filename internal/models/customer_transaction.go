package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type CustomerTransactionType string

const (
	CustomerTxSale    CustomerTransactionType = "sale"    // unpaid balance from a sale
	CustomerTxPayment CustomerTransactionType = "payment" // balance settled
)

// CustomerTransaction - append-only money-owed ledger between the business and
// a customer. Posted as a side effect of a partially paid sale, never mutated.
type CustomerTransaction struct {
	ID          uint                    `gorm:"primaryKey" json:"id"`
	CustomerID  uint                    `gorm:"index;not null" json:"customer_id"`
	Customer    Customer                `json:"-"`
	Type        CustomerTransactionType `gorm:"size:20;not null" json:"type"`
	Amount      decimal.Decimal         `gorm:"type:decimal(20,4);not null" json:"amount"`
	Description string                  `gorm:"size:500" json:"description"`
	ReferenceID *uint                   `gorm:"index" json:"reference_id"` // SaleRecord ID for sale entries
	CreatedAt   time.Time               `json:"created_at"`
}
