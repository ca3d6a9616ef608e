// Package money holds Rupiah amounts with two fractional digits.
package money

import (
	"errors"

	"github.com/shopspring/decimal"
)

const scale = 2

var (
	ErrNegativeAmount = errors.New("amount cannot be negative")
	ErrInvalidAmount  = errors.New("invalid amount")
)

type Money struct {
	amount decimal.Decimal
}

func New(d decimal.Decimal) (Money, error) {
	if d.IsNegative() {
		return Money{}, ErrNegativeAmount
	}
	return Money{amount: d.Round(scale)}, nil
}

func Parse(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	return New(d)
}

func FromInt(rupiah int64) Money {
	return Money{amount: decimal.NewFromInt(rupiah)}
}

func Zero() Money {
	return Money{amount: decimal.Zero}
}

func (m Money) Mul(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Rupiah is the whole-rupiah part, used for display.
func (m Money) Rupiah() int64 {
	return m.amount.Round(0).IntPart()
}

func (m Money) String() string {
	return m.amount.StringFixed(scale)
}

func Sum(values ...Money) Money {
	total := Zero()
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}
