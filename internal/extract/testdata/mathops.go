package mathops

// Scale multiplies every value by factor.
//
// Args:
//	values: input values
//	factor: multiplier
//
// Returns:
//	[]float64: the scaled values
func Scale(values []float64, factor float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = v * factor
	}
	return out
}

// Clamp restricts v to the inclusive range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
