package utils

import "math"

// Round rounds a number to 2 decimal places
func Round(num float64) float64 {
	return math.Round(num*100) / 100
}
