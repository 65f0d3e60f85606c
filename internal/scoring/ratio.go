package scoring

// safeRatio returns num/den, or 0 when the denominator is 0. Every ratio in
// the metric formulas goes through this helper so a degenerate ratio can
// never produce NaN or an error.
func safeRatio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

// clamp bounds v to [lo, hi]
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
