package kernel

import (
	"fmt"

	"restaurant/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a value object representing a monetary amount with fixed-point
// precision (two decimal places). It backs menu item prices, cart line prices,
// and order totals.
//
// Money is immutable: arithmetic methods return new values. Negative amounts
// are rejected at construction, since nothing in the ordering domain carries a
// negative price.
//
// Example usage:
//
//	price, err := kernel.NewMoneyFromString("10.00")
//	if err != nil {
//	    // handle error
//	}
//	linePrice := price.MulQuantity(2) // 20.00
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney returns the zero amount. An empty cart totals to exactly this.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// NewMoney creates Money from a decimal amount, rounding to two decimal
// places. Returns an error for negative amounts.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}
	return Money{amount: amount.Round(2)}, nil
}

// NewMoneyFromString parses a decimal string such as "10.00" into Money.
func NewMoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount is invalid", err)
	}
	return NewMoney(amount)
}

// Decimal returns the underlying decimal amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String returns the amount formatted with two decimal places, e.g. "25.00".
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// MulQuantity returns the amount multiplied by an integer quantity.
// Used to derive a line price from a unit price snapshot.
func (m Money) MulQuantity(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual compares two amounts for numeric equality.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}
