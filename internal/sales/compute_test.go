package sales

import (
	"testing"

	"honeyworks-backend/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComputePaymentDefaultsToFullPayment(t *testing.T) {
	total, paid, status := ComputePayment(5, dec("20.00"), nil)

	assert.True(t, total.Equal(dec("100.00")))
	assert.True(t, paid.Equal(dec("100.00")))
	assert.Equal(t, models.PaymentStatusPaid, status)
}

func TestComputePaymentPartial(t *testing.T) {
	amountPaid := dec("50.00")
	total, paid, status := ComputePayment(5, dec("20.00"), &amountPaid)

	assert.True(t, total.Equal(dec("100.00")))
	assert.True(t, paid.Equal(dec("50.00")))
	assert.Equal(t, models.PaymentStatusPartial, status)
	assert.True(t, total.Sub(paid).Equal(dec("50.00")))
}

func TestComputePaymentExactAmountIsPaid(t *testing.T) {
	amountPaid := dec("100.00")
	_, _, status := ComputePayment(5, dec("20.00"), &amountPaid)

	assert.Equal(t, models.PaymentStatusPaid, status)
}

func TestComputePaymentOverpaymentIsPaid(t *testing.T) {
	amountPaid := dec("120.00")
	total, paid, status := ComputePayment(5, dec("20.00"), &amountPaid)

	assert.True(t, total.Equal(dec("100.00")))
	assert.True(t, paid.Equal(dec("120.00")))
	assert.Equal(t, models.PaymentStatusPaid, status)
}

func TestComputePaymentFractionalQuantity(t *testing.T) {
	total, _, _ := ComputePayment(2.5, dec("8.40"), nil)

	assert.True(t, total.Equal(dec("21.00")))
}
