// Package money implements fixed-point Kuwaiti Dinar amounts. One dinar is
// 1000 fils, so every amount renders with exactly three fractional digits.
// Arithmetic stays in integer fils; decimals appear only at the boundaries.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/khaldoun-digital/baytkum-backend/pkg/i18n"
)

// Fils is a monetary amount in thousandths of a dinar.
type Fils int64

const filsPerDinar = 1000

var thousand = decimal.NewFromInt(filsPerDinar)

// FromDecimalString parses a decimal amount ("12.500") into fils. Amounts
// with more than three fractional digits are rejected rather than rounded,
// so persisted totals can never drift from what was displayed.
func FromDecimalString(value string) (Fils, error) {
	dec, err := decimal.NewFromString(value)
	if err != nil {
		return 0, fmt.Errorf("money: parse %q: %w", value, err)
	}
	if dec.Exponent() < -3 {
		return 0, fmt.Errorf("money: %q has more than three fractional digits", value)
	}
	return Fils(dec.Mul(thousand).IntPart()), nil
}

// ParsePrice parses a unit price, rejecting negative values.
func ParsePrice(value string) (Fils, error) {
	fils, err := FromDecimalString(value)
	if err != nil {
		return 0, err
	}
	if fils < 0 {
		return 0, fmt.Errorf("money: price %q must not be negative", value)
	}
	return fils, nil
}

// Mul scales the amount by a quantity.
func (f Fils) Mul(qty int) Fils {
	return f * Fils(qty)
}

// Decimal returns the amount as an exact three-decimal value.
func (f Fils) Decimal() decimal.Decimal {
	return decimal.New(int64(f), -3)
}

// String renders the amount with exactly three fractional digits using
// Latin digits ("12.500"). This is the canonical wire format.
func (f Fils) String() string {
	return f.Decimal().StringFixed(3)
}

// Localize renders the amount for display in the given language. Arabic
// output uses Arabic-Indic digits and the locale's decimal separator.
func (f Fils) Localize(lang i18n.Lang) string {
	printer := message.NewPrinter(lang.Tag())
	value := float64(f) / filsPerDinar
	return printer.Sprint(number.Decimal(value, number.Scale(3)))
}

// MarshalJSON encodes the amount as its canonical decimal string.
func (f Fils) MarshalJSON() ([]byte, error) {
	return []byte(`"` + f.String() + `"`), nil
}

// UnmarshalJSON accepts either a decimal string or a bare number.
func (f *Fils) UnmarshalJSON(data []byte) error {
	raw := string(data)
	if len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"' {
		raw = raw[1 : len(raw)-1]
	}
	parsed, err := FromDecimalString(raw)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
