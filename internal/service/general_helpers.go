package service

import "math"

// RoundingPrecision is the factor used to round monetary values to two
// decimal places in API responses.
const RoundingPrecision = 100

// round rounds a float64 value to two decimal places.
// Used throughout the service layer so API responses carry consistent
// monetary precision; the engine itself computes unrounded.
func round(value float64) float64 {
	return math.Round(value*RoundingPrecision) / RoundingPrecision
}
