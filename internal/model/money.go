package model

import (
	"github.com/shopspring/decimal"
)

// Cents returns d as an integer count of currency minor units. All amount
// equality checks go through this to avoid floating-point drift.
func Cents(d decimal.Decimal) int64 {
	return d.Shift(2).Round(0).IntPart()
}

// Round2 rounds a monetary value to 2 decimal places. Applied to every
// money value before it leaves a package boundary.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
