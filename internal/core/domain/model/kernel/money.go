package kernel

import (
	"fmt"
	"math"

	"agrimarket/internal/pkg/errs"
)

// paisePerRupee is the subunit factor for INR.
const paisePerRupee = 100

// Money is a value object for monetary amounts. Amounts are held as integer
// paise so that line subtotals and cart totals never accumulate floating-point
// drift; rupee floats exist only at serialization boundaries.
//
// The zero value is a valid amount of zero. Money is immutable: arithmetic
// methods return new values.
//
// Example usage:
//
//	price, _ := kernel.NewMoneyFromRupees(249.50)
//	line := price.Mul(3)
//	fmt.Println(line.String()) // "748.50"
type Money struct {
	paise int64
}

// NewMoney creates a Money from an amount in paise.
// Negative amounts are rejected: nothing in the storefront deals in
// negative prices or totals.
func NewMoney(paise int64) (Money, error) {
	if paise < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%d paise is negative", paise),
		)
	}
	return Money{paise: paise}, nil
}

// NewMoneyFromRupees creates a Money from a rupee amount, rounding to the
// nearest paisa. Used at DTO boundaries where the upstream API serializes
// amounts as decimal numbers.
func NewMoneyFromRupees(rupees float64) (Money, error) {
	if math.IsNaN(rupees) || math.IsInf(rupees, 0) {
		return Money{}, errs.NewValueIsInvalidError("amount")
	}
	return NewMoney(int64(math.Round(rupees * paisePerRupee)))
}

// Paise returns the amount in paise.
func (m Money) Paise() int64 {
	return m.paise
}

// Rupees returns the amount as a decimal rupee value for serialization.
func (m Money) Rupees() float64 {
	return float64(m.paise) / paisePerRupee
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{paise: m.paise + other.paise}
}

// Mul returns the amount multiplied by a non-negative quantity.
func (m Money) Mul(quantity int) Money {
	if quantity < 0 {
		quantity = 0
	}
	return Money{paise: m.paise * int64(quantity)}
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.paise == 0
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.paise == other.paise
}

// String formats the amount as rupees with two decimal places.
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.paise/paisePerRupee, m.paise%paisePerRupee)
}
