package cardbox

import (
	"database/sql/driver"
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency used to display amounts when none is configured.
const DefaultCurrency = "USD"

// Money represents an exact monetary amount, in major units.
//
// Amounts are never rounded by arithmetic; rounding only happens when formatting.
type Money struct {
	value decimal.Decimal
}

// M is a convenient factory for Money.
func M[T float64 | int | int64 | decimal.Decimal](value T) Money {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return Money{value: v}
	case float64:
		return Money{value: decimal.NewFromFloat(v)}
	case int:
		return Money{value: decimal.NewFromInt(int64(v))}
	case int64:
		return Money{value: decimal.NewFromInt(v)}
	default:
		panic("unsupported type")
	}
}

// ParseMoney parses a decimal amount like "12.50". Surrounding spaces and a leading '$' are ignored.
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	if s == "" {
		return Money{}, fmt.Errorf("empty amount")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Money{value: d}, nil
}

func (m Money) Decimal() decimal.Decimal        { return m.value }
func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) }
func (m Money) Cmp(n Money) int                 { return m.value.Cmp(n.value) }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }
func (m Money) Neg() Money                      { return Money{value: m.value.Neg()} }
func (m Money) Add(n Money) Money               { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money               { return Money{value: m.value.Sub(n.value)} }

// Mul multiplies a unit price by a quantity.
func (m Money) Mul(q int) Money { return Money{value: m.value.Mul(decimal.NewFromInt(int64(q)))} }

// Div divides a total by a quantity, it is used to recover unit prices.
func (m Money) Div(q int) Money { return Money{value: m.value.Div(decimal.NewFromInt(int64(q)))} }

// String returns the exact decimal representation, e.g. "3900" or "12.5".
func (m Money) String() string { return m.value.String() }

// Deprecated: AsFloat should no longer be used, the purpose is to keep the calculation exact.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

// Format returns the amount formatted for display in the given currency, e.g. "$3,900.00".
func (m Money) Format(currency string) string {
	cur := currencyOf(currency)
	dec := m.value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// SignedFormat is like Format but always shows the sign of non zero amounts.
// 0 is represented as a "-"
func (m Money) SignedFormat(currency string) string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.Format(currency)
	}
	return m.Format(currency)
}

// currencyOf returns the currency definition for code, never nil.
func currencyOf(code string) money.Currency {
	if code == "" {
		code = DefaultCurrency
	}
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, code).Currency()
}

// ValidateCurrency checks that code is a currency known to the formatter.
func ValidateCurrency(code string) error {
	if money.GetCurrency(code) == nil {
		return fmt.Errorf("unknown currency %q", code)
	}
	return nil
}

// Value stores money as exact decimal TEXT.
func (m Money) Value() (driver.Value, error) { return m.value.String(), nil }

// Scan reads money stored by Value, or a legacy REAL column.
func (m *Money) Scan(src any) error { return m.value.Scan(src) }

var _ driver.Valuer = Money{}
