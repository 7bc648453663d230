// Package money holds the percentage arithmetic for the stats endpoints.
// Rates go through decimal so the rounding matches what the dashboards show,
// with no float drift at the last digit.
package money

import "github.com/shopspring/decimal"

// ReturnRate computes returns/total as a percentage rounded to one decimal
// place. A zero total yields 0, never an error or NaN.
func ReturnRate(total, returns float64) float64 {
	if total == 0 {
		return 0
	}
	rate := decimal.NewFromFloat(returns).
		Div(decimal.NewFromFloat(total)).
		Mul(decimal.NewFromInt(100))
	f, _ := rate.Round(1).Float64()
	return f
}

// AverageReturn is the investor-facing variant: a whole-number percentage,
// 0 when nothing has been invested.
func AverageReturn(total, returns float64) int {
	if total == 0 {
		return 0
	}
	rate := decimal.NewFromFloat(returns).
		Div(decimal.NewFromFloat(total)).
		Mul(decimal.NewFromInt(100))
	return int(rate.Round(0).IntPart())
}
