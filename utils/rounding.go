package utils

import "math"

// RoundToOneDecimal rounds v to one decimal place, halves away from zero
func RoundToOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}

// RoundPtrToOneDecimal rounds *v, keeping nil as nil
func RoundPtrToOneDecimal(v *float64) *float64 {
	if v == nil {
		return nil
	}
	r := RoundToOneDecimal(*v)
	return &r
}
