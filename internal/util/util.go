// Package util holds small helpers shared by the service and handler layers.
package util

import "math"

// Contains reports whether val is present in slice.
func Contains[T comparable](slice []T, val T) bool {
	for _, item := range slice {
		if item == val {
			return true
		}
	}
	return false
}

// Round rounds to two decimals, the precision of the leave accrual counters.
func Round(f float64) float64 {
	return math.Round(f*100) / 100
}
