package usecase

import "math"

// computeFare applies an organization discount to the base fare and
// rounds half-up to two decimals. A rate of 0 leaves the base fare
// untouched.
func computeFare(baseFare, discountRate float64) (discount, finalFare float64) {
	discount = round2(baseFare * discountRate)
	finalFare = round2(baseFare * (1 - discountRate))
	return discount, finalFare
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
