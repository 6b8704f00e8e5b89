package customs

import (
	"github.com/shopspring/decimal"
)

// Weight is a fixed-point weight in hundredths of a kilogram.
type Weight int64

var half = decimal.New(5, -1)

// WeightFromKilograms converts a unit weight the way product weights are
// formatted for customs: two decimals, halves rounded up.
func WeightFromKilograms(kg decimal.Decimal) Weight {
	return Weight(kg.Round(2).Shift(2).IntPart())
}

// TotalFromKilograms converts a shipment total weight: the scaled value is
// rounded to an integer with halves rounded toward zero.
func TotalFromKilograms(kg decimal.Decimal) Weight {
	return Weight(RoundHalfDown(kg.Shift(2), 0).IntPart())
}

// Kilograms renders w as a two-decimal kilogram value.
func (w Weight) Kilograms() decimal.Decimal {
	return decimal.New(int64(w), -2)
}

// RoundHalfDown rounds d to places decimals; halves go toward zero.
func RoundHalfDown(d decimal.Decimal, places int32) decimal.Decimal {
	shifted := d.Shift(places)
	truncated := shifted.Truncate(0)
	if shifted.Sub(truncated).Abs().GreaterThan(half) {
		truncated = truncated.Add(decimal.NewFromInt(int64(shifted.Sign())))
	}
	return truncated.Shift(-places)
}

// divHalfDown divides a by b (b > 0) rounding to the nearest integer,
// halves toward zero.
func divHalfDown(a, b int64) int64 {
	q, r := a/b, a%b
	if r < 0 {
		r = -r
	}
	if 2*r > b {
		if a < 0 {
			return q - 1
		}
		return q + 1
	}
	return q
}
