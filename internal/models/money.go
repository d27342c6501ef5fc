package models

import "math"

// Round2 rounds a monetary amount to 2 decimal places, half away from
// zero. Every monetary combination (sum, percentage, subtraction) is
// passed through this so floating-point drift cannot accumulate across
// repeated operations.
func Round2(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// MinorUnits converts a major-unit amount to the payment provider's
// integer minor units (e.g. dollars to cents). Called exactly once, at
// the provider boundary, after all 2-decimal rounding is complete.
func MinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
