package internal

import "math"

// Percentage is a helper function, to calculate percentage. A zero total
// counts as fully complete and overshoot clamps at width, so the result
// is always within [0, width].
func Percentage(total, current, width uint) float64 {
	if total == 0 || current >= total {
		return float64(width)
	}
	return float64(uint64(width)*uint64(current)) / float64(total)
}

// PercentageRound same as Percentage but with math.Round.
func PercentageRound(total, current, width uint) uint {
	return uint(math.Round(Percentage(total, current, width)))
}
