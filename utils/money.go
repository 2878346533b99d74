package utils

import "math"

// Round2 rounds x to 2 decimal places (banking-style simple round).
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// Round1 rounds x to 1 decimal place; used for percentage display values.
func Round1(x float64) float64 {
	return math.Round(x*10) / 10
}
