// Package fourier generates sine/cosine basis columns for encoding cyclical
// structure, e.g. hour of day or day of year, as linear regression features.
package fourier

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

var (
	ErrNonPositivePeriod = errors.New("period must be greater than zero")
	ErrNegativeOrder     = errors.New("order must not be negative")
)

// Features returns the fourier basis expansion of the input positions as a
// matrix with len(t) rows and 2*order columns. For each harmonic k from 1 to
// order the matrix carries a sin(2*pi*k*t/period) column followed by its
// cos counterpart, harmonics in ascending order. An order of 0 returns a nil
// matrix representing zero columns.
func Features(t []float64, order int, period float64) (*mat.Dense, error) {
	if period <= 0 {
		return nil, ErrNonPositivePeriod
	}
	if order < 0 {
		return nil, ErrNegativeOrder
	}
	if order == 0 {
		return nil, nil
	}

	n := len(t)
	x := mat.NewDense(n, 2*order, nil)
	for k := 1; k <= order; k++ {
		sinFeat, cosFeat := Component(t, k, period)
		x.SetCol(2*(k-1), sinFeat)
		x.SetCol(2*(k-1)+1, cosFeat)
	}
	return x, nil
}

// Component computes the sin and cos series of a single harmonic at the given
// period over the input positions.
func Component(t []float64, order int, period float64) ([]float64, []float64) {
	omega := 2.0 * math.Pi * float64(order) / period
	sinFeat := make([]float64, len(t))
	cosFeat := make([]float64, len(t))
	for i, tPnt := range t {
		rad := omega * tPnt
		sinFeat[i] = math.Sin(rad)
		cosFeat[i] = math.Cos(rad)
	}
	return sinFeat, cosFeat
}
