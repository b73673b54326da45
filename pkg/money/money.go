// Package money wraps shopspring/decimal so that no monetary value ever passes
// through a binary floating-point representation.
//
// Values are immutable: every arithmetic method returns a new Money.
// The canonical textual form (StorageString) always carries two fractional
// digits and is what gets persisted and serialised to JSON.
package money

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

const (
	// StoragePlaces is the number of fractional digits kept in storage and on the wire.
	StoragePlaces int32 = 2

	// DivisionPrecision is the number of fractional digits kept by Div before rounding.
	DivisionPrecision int32 = 20
)

// Money is an exact decimal monetary amount.
type Money struct {
	value decimal.Decimal
}

// Zero returns the additive identity.
func Zero() Money {
	return Money{value: decimal.Zero}
}

// Parse creates a Money from a decimal literal such as "1234.56".
func Parse(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid monetary value %q: %w", s, err)
	}
	return Money{value: d}, nil
}

// MustParse is like Parse but panics on malformed input. Intended for constants and tests.
func MustParse(s string) Money {
	m, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return m
}

// FromInt creates a Money from an integer amount of whole units.
// The integer goes through its base-10 string form, never a float.
func FromInt(n int64) Money {
	return MustParse(strconv.FormatInt(n, 10))
}

// FromDecimal wraps an existing decimal (e.g. one scanned from a NUMERIC column).
func FromDecimal(d decimal.Decimal) Money {
	return Money{value: d}
}

// Decimal exposes the underlying value for storage adapters.
func (m Money) Decimal() decimal.Decimal {
	return m.value
}

func (m Money) Add(other Money) Money {
	return Money{value: m.value.Add(other.value)}
}

func (m Money) Sub(other Money) Money {
	return Money{value: m.value.Sub(other.value)}
}

// Mul multiplies by an integer factor.
func (m Money) Mul(factor int64) Money {
	return Money{value: m.value.Mul(decimal.NewFromInt(factor))}
}

// Div divides by an integer divisor, rounding half-up at DivisionPrecision
// fractional digits. Panics if divisor is zero.
func (m Money) Div(divisor int64) Money {
	return Money{value: m.value.DivRound(decimal.NewFromInt(divisor), DivisionPrecision)}
}

// MulDecimal multiplies by an arbitrary decimal factor such as a rate.
func (m Money) MulDecimal(factor decimal.Decimal) Money {
	return Money{value: m.value.Mul(factor)}
}

// DivDecimal divides by an arbitrary decimal divisor with the same rounding
// as Div. Panics if divisor is zero.
func (m Money) DivDecimal(divisor decimal.Decimal) Money {
	return Money{value: m.value.DivRound(divisor, DivisionPrecision)}
}

// StorageString returns the fixed two-decimal representation, e.g. "0.30".
func (m Money) StorageString() string {
	return m.value.StringFixed(StoragePlaces)
}

// DisplayString renders the amount with the given number of fractional digits,
// rounding half-up like StorageString.
func (m Money) DisplayString(decimals int32) string {
	return m.value.StringFixed(decimals)
}

// String implements fmt.Stringer using the storage form.
func (m Money) String() string {
	return m.StorageString()
}

func (m Money) Cmp(other Money) int {
	return m.value.Cmp(other.value)
}

func (m Money) Equal(other Money) bool {
	return m.value.Equal(other.value)
}

func (m Money) GreaterThan(other Money) bool {
	return m.value.GreaterThan(other.value)
}

func (m Money) GreaterThanOrEqual(other Money) bool {
	return m.value.GreaterThanOrEqual(other.value)
}

func (m Money) LessThan(other Money) bool {
	return m.value.LessThan(other.value)
}

func (m Money) LessThanOrEqual(other Money) bool {
	return m.value.LessThanOrEqual(other.value)
}

func (m Money) IsZero() bool {
	return m.value.IsZero()
}

func (m Money) IsPositive() bool {
	return m.value.IsPositive()
}

func (m Money) IsNegative() bool {
	return m.value.IsNegative()
}

// Round returns the amount rounded half-up to the storage precision.
func (m Money) Round() Money {
	return Money{value: m.value.Round(StoragePlaces)}
}

// MonthlyDepreciation computes the linear monthly quota for an asset.
// usefulLifeMonths must be positive; that is the caller's responsibility.
func MonthlyDepreciation(purchaseValue Money, usefulLifeMonths int) Money {
	return purchaseValue.Div(int64(usefulLifeMonths))
}

// MarshalJSON encodes the storage string as a JSON string.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.StorageString())
}

// UnmarshalJSON accepts a JSON string ("12.50"). Bare JSON numbers are accepted
// too, but they are parsed from their literal text, not through float64.
func (m *Money) UnmarshalJSON(data []byte) error {
	var s string
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
	} else {
		s = string(data)
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Value implements driver.Valuer so Money can be passed straight to a NUMERIC column.
func (m Money) Value() (driver.Value, error) {
	return m.StorageString(), nil
}
