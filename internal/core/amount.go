package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is an exact decimal currency magnitude. The direction of the
// money flow lives on the transaction type, so an Amount is never
// negative. Arithmetic goes through shopspring/decimal so that sums keep
// full input precision; rounding happens only at display time.
type Amount struct {
	decimal.Decimal
}

// ParseAmount parses a user-entered amount string. It accepts both dot
// and comma decimal separators and rejects anything that is not a finite
// non-negative number.
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Amount{}, ErrInvalidAmount
	}
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, ErrInvalidAmount
	}
	if d.IsNegative() {
		return Amount{}, ErrInvalidAmount
	}
	return Amount{d}, nil
}

// NewAmount builds an Amount from a decimal value, e.g. NewAmount(100, 0)
// for 100 or NewAmount(1250, -2) for 12.50.
func NewAmount(value int64, exp int32) Amount {
	return Amount{decimal.New(value, exp)}
}

// Add returns the exact sum of the two amounts.
func (a Amount) Add(b Amount) Amount {
	return Amount{a.Decimal.Add(b.Decimal)}
}

// Sub returns a - b. The result may be negative; balances use this.
func (a Amount) Sub(b Amount) Amount {
	return Amount{a.Decimal.Sub(b.Decimal)}
}

// Display renders the amount with two fraction digits for presentation.
func (a Amount) Display() string {
	return a.Decimal.StringFixed(2)
}

// MarshalJSON writes the amount as a plain JSON number, matching the
// store's wire format.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.String()), nil
}

// UnmarshalJSON accepts both a JSON number and a quoted decimal string.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return ErrInvalidAmount
	}
	a.Decimal = d
	return nil
}
