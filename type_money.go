package inventory

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string          // display currency, may be empty
}

// M creates Money from any supported numeric value.
func M[T float64 | int | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// ParseMoney parses a decimal amount such as "59.99".
func ParseMoney(s, currency string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return Money{value: d, cur: currency}, nil
}

// String returns the string representation of the money value.
// Without a currency it is a plain number with two decimals.
func (m Money) String() string {
	if m.cur == "" {
		return m.value.StringFixed(2)
	}
	// to get a never nil currency I need to call the Money constructor
	cur := *money.New(0, m.cur).Currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}

// Text is the exact persisted form, without currency and without padding.
func (m Money) Text() string { return m.value.String() }

func (m Money) Currency() string              { return m.cur }
func (m Money) Decimal() decimal.Decimal      { return m.value }
func (m Money) Equal(n Money) bool            { return m.value.Equal(n.value) }
func (m Money) IsNegative() bool              { return m.value.IsNegative() }
func (m Money) Mul(q Quantity) Money          { return Money{value: m.value.Mul(q.decimal()), cur: m.cur} }
func (m Money) WithCurrency(cur string) Money { return Money{value: m.value, cur: cur} }
