// Package money provides a fixed-point amount type with exactly two
// fractional digits. Amounts are stored and computed as integer cents so
// binary floating point never touches monetary values; decimal conversion
// happens only at the JSON boundary.
package money

import (
	"database/sql/driver"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// Amount is a monetary value in cents.
type Amount int64

// FromString parses a decimal string like "150.00" into cents.
// More than two fractional digits is an error.
func FromString(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	cents := d.Shift(2)
	if !cents.IsInteger() {
		return 0, fmt.Errorf("amount %q has more than two decimal places", s)
	}
	if !cents.BigInt().IsInt64() {
		return 0, fmt.Errorf("amount %q out of range", s)
	}
	return Amount(cents.IntPart()), nil
}

// String formats the amount with two decimal places, e.g. "150.00".
func (a Amount) String() string {
	return decimal.New(int64(a), -2).StringFixed(2)
}

// MarshalJSON encodes the amount as a JSON number with two decimals.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalJSON accepts a JSON number or numeric string.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	if s == "null" || s == "" {
		*a = 0
		return nil
	}
	parsed, err := FromString(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Value implements driver.Valuer so amounts persist as BIGINT cents.
func (a Amount) Value() (driver.Value, error) {
	return int64(a), nil
}

// Scan implements sql.Scanner.
func (a *Amount) Scan(src interface{}) error {
	switch v := src.(type) {
	case int64:
		*a = Amount(v)
		return nil
	case []byte:
		cents, err := strconv.ParseInt(string(v), 10, 64)
		if err != nil {
			return fmt.Errorf("cannot scan %q into money.Amount: %w", v, err)
		}
		*a = Amount(cents)
		return nil
	case string:
		cents, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("cannot scan %q into money.Amount: %w", v, err)
		}
		*a = Amount(cents)
		return nil
	case nil:
		*a = 0
		return nil
	default:
		return fmt.Errorf("cannot scan %T into money.Amount", src)
	}
}
