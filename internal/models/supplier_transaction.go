package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type SupplierTransactionType string

const (
	SupplierTxPurchase SupplierTransactionType = "purchase" // cost of a material receipt
	SupplierTxPayment  SupplierTransactionType = "payment"
)

// SupplierTransaction - append-only ledger of money owed to a supplier,
// posted when materials are received with a known cost.
type SupplierTransaction struct {
	ID          uint                    `gorm:"primaryKey" json:"id"`
	SupplierID  uint                    `gorm:"index;not null" json:"supplier_id"`
	Supplier    Supplier                `json:"-"`
	Type        SupplierTransactionType `gorm:"size:20;not null" json:"type"`
	Amount      decimal.Decimal         `gorm:"type:decimal(20,4);not null" json:"amount"`
	Description string                  `gorm:"size:500" json:"description"`
	ReferenceID *uint                   `gorm:"index" json:"reference_id"`
	CreatedAt   time.Time               `json:"created_at"`
}
