// Package services provides the pricing, billing and availability
// calculations for media assets, campaigns and plans.
package services

import "math"

// Round2 rounds a monetary amount to 2 decimal places, half away from zero.
// Every derived monetary field goes through this exactly once at the point
// of computation so that sums of rounded parts match displayed totals.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}
