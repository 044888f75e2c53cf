package exporter

import (
	"fmt"
	"strconv"
)

// FormatPercent formats a percentage for CSV output with exactly 1
// decimal place, so a 40% share appears as 40.0.
func FormatPercent(f float64) string {
	return strconv.FormatFloat(f, 'f', 1, 64)
}

// FormatRate formats a rate value for CSV output with exactly 2 decimal places
func FormatRate(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

// FormatInt formats an integer count for CSV output
func FormatInt(i int) string {
	return fmt.Sprintf("%d", i)
}

// FormatYear formats a calendar year for CSV output
func FormatYear(y int) string {
	return strconv.Itoa(y)
}
