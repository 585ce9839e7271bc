package betareg

import "math"

// Logit maps a value strictly inside (0,1) onto the real line.
func Logit(x float64) float64 {
	return math.Log(x / (1.0 - x))
}

// Logistic is the inverse of Logit and maps any real value back into (0,1).
// The computation splits on sign so that large magnitude inputs saturate to
// 0 or 1 instead of overflowing the exponential.
func Logistic(z float64) float64 {
	if z >= 0 {
		return 1.0 / (1.0 + math.Exp(-z))
	}
	ez := math.Exp(z)
	return ez / (1.0 + ez)
}
