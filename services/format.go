package services

import (
	"fmt"
	"math"
	"strings"
)

// FormatINR formats an amount into Indian Rupee notation: after the
// rightmost 3 digits, digits group in pairs (₹1,23,45,678.90), always with
// 2 decimal places.
func FormatINR(amount float64) string {
	negative := false
	if amount < 0 {
		negative = true
		amount = -amount
	}

	raw := fmt.Sprintf("%.2f", amount)
	parts := strings.SplitN(raw, ".", 2)

	result := "₹" + applyIndianGrouping(parts[0]) + "." + parts[1]
	if negative {
		result = "-" + result
	}
	return result
}

// applyIndianGrouping inserts commas using the Indian numbering system:
// the rightmost 3 digits form the first group, then pairs.
func applyIndianGrouping(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	result := s[n-3:]
	remaining := s[:n-3]
	for len(remaining) > 2 {
		result = remaining[len(remaining)-2:] + "," + result
		remaining = remaining[:len(remaining)-2]
	}
	if len(remaining) > 0 {
		result = remaining + "," + result
	}
	return result
}

// FormatSqft renders an area without trailing zeros: whole values plain,
// fractional values with 2 decimals.
func FormatSqft(sqft float64) string {
	if sqft == math.Trunc(sqft) {
		return fmt.Sprintf("%.0f", sqft)
	}
	return fmt.Sprintf("%.2f", sqft)
}

// FormatPercent renders a rate like "18%" or "2.5%".
func FormatPercent(pct float64) string {
	if pct == math.Trunc(pct) {
		return fmt.Sprintf("%.0f%%", pct)
	}
	return fmt.Sprintf("%.1f%%", pct)
}
