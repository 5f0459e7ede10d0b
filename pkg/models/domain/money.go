package domain

import (
	"strconv"

	"github.com/shopspring/decimal"
)

const (
	// SubunitsPerUnit is the number of cents in a dollar.
	SubunitsPerUnit = 100
	subunitExponent = -2
)

// Money is an amount in currency subunits (cents).
type Money int64

// Units converts the amount to whole currency units without rounding.
func (m Money) Units() decimal.Decimal {
	return decimal.New(int64(m), subunitExponent)
}

func (m Money) String() string {
	return strconv.FormatInt(int64(m), 10)
}
