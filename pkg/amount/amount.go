package amount

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// Amount is a fixed-point monetary value. The underlying int64 holds
// multiples of 0.0001, so the representable range is roughly ±9.22e14
// in decimal units.
type Amount int64

const (
	// Precision is the number of implied fractional digits.
	Precision = 4

	// WholeUnit is the integer magnitude of 1.0.
	WholeUnit Amount = 10000
)

// ErrOverflow is returned when an arithmetic result falls outside the
// representable int64 range. Callers must treat it as fatal.
var ErrOverflow = errors.New("amount overflow")

var amountPattern = regexp.MustCompile(`^(-?)(\d+)\.?(\d{0,4})$`)

// Parse decodes a decimal string into an Amount. The integer part is
// required, the fractional part may carry at most four digits; anything
// longer is rejected rather than truncated. An empty string decodes to
// zero because dispute, resolve and chargeback rows carry no amount.
func Parse(s string) (Amount, error) {
	if s == "" {
		return 0, nil
	}

	m := amountPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("invalid amount format: %q", s)
	}

	whole, err := strconv.ParseInt(m[2], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, ErrOverflow)
	}
	if whole > math.MaxInt64/int64(WholeUnit) {
		return 0, fmt.Errorf("invalid amount %q: %w", s, ErrOverflow)
	}

	value := whole * int64(WholeUnit)
	if frac := m[3]; frac != "" {
		for len(frac) < Precision {
			frac += "0"
		}
		f, err := strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid amount %q: %w", s, ErrOverflow)
		}
		if value > math.MaxInt64-f {
			return 0, fmt.Errorf("invalid amount %q: %w", s, ErrOverflow)
		}
		value += f
	}

	if m[1] == "-" {
		value = -value
	}
	return Amount(value), nil
}

// Add returns a+b, or ErrOverflow when the mathematical result is not
// representable.
func (a Amount) Add(b Amount) (Amount, error) {
	if b > 0 && a > math.MaxInt64-b {
		return 0, ErrOverflow
	}
	if b < 0 && a < math.MinInt64-b {
		return 0, ErrOverflow
	}
	return a + b, nil
}

// Sub returns a-b, or ErrOverflow when the mathematical result is not
// representable.
func (a Amount) Sub(b Amount) (Amount, error) {
	if b < 0 && a > math.MaxInt64+b {
		return 0, ErrOverflow
	}
	if b > 0 && a < math.MinInt64+b {
		return 0, ErrOverflow
	}
	return a - b, nil
}

// MarshalJSON renders the amount as a decimal string.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.String() + `"`), nil
}

// UnmarshalJSON accepts the same decimal strings Parse does.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("invalid amount: %s", data)
	}
	v, err := Parse(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// String renders the amount with exactly four fractional digits,
// e.g. -50000 -> "-5.0000".
func (a Amount) String() string {
	sign := ""
	v := int64(a)
	if v < 0 {
		sign = "-"
		// MinInt64 cannot be negated; split off the last digit first.
		if v == math.MinInt64 {
			whole := -(v / int64(WholeUnit))
			frac := -(v % int64(WholeUnit))
			return fmt.Sprintf("-%d.%04d", whole, frac)
		}
		v = -v
	}
	return fmt.Sprintf("%s%d.%04d", sign, v/int64(WholeUnit), v%int64(WholeUnit))
}
