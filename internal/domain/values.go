package domain

import "math"

// CoalesceStr returns the first non-empty value, e.g. a tile's designer
// before the configured default, or a resource title before its id.
func CoalesceStr(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// IsFinite reports whether f is neither NaN nor an infinity. Quantities,
// costs and percentages must be finite before they reach decimal arithmetic.
func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
