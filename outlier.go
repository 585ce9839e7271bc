package gridcast

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// DetectOutliers returns the indexes of values falling outside the tukey
// fences drawn around the lower and upper percentiles of the input. A tukey
// factor of 0 flags everything outside the percentile range itself.
func DetectOutliers(y []float64, lowerPerc, upperPerc, tukeyFactor float64) []int {
	lowerPerc = math.Max(lowerPerc, 0.0)
	upperPerc = math.Min(upperPerc, 1.0)
	tukeyFactor = math.Max(tukeyFactor, 0.0)

	yCopy := make([]float64, len(y))
	copy(yCopy, y)
	sort.Float64s(yCopy)
	lowerIdx := int(math.Floor(float64(len(yCopy)) * lowerPerc))
	upperIdx := int(math.Ceil(float64(len(yCopy)) * upperPerc))
	if upperIdx >= len(yCopy) {
		upperIdx = len(yCopy) - 1
	}

	lower := yCopy[lowerIdx]
	upper := yCopy[upperIdx]
	innerRange := upper - lower
	lower -= innerRange * tukeyFactor
	upper += innerRange * tukeyFactor

	var outlierIdx []int
	for i := 0; i < len(y); i++ {
		if y[i] >= upper || y[i] <= lower {
			outlierIdx = append(outlierIdx, i)
		}
	}
	return outlierIdx
}

// excludeRows returns a design matrix and target with the given row indexes
// removed. The inputs are left untouched.
func excludeRows(x mat.Matrix, y []float64, idxs []int) (mat.Matrix, []float64) {
	if len(idxs) == 0 {
		return x, y
	}

	drop := make(map[int]struct{}, len(idxs))
	for _, idx := range idxs {
		drop[idx] = struct{}{}
	}

	m, n := x.Dims()
	keptY := make([]float64, 0, m-len(drop))
	kept := mat.NewDense(m-len(drop), n, nil)
	var row int
	for i := 0; i < m; i++ {
		if _, exists := drop[i]; exists {
			continue
		}
		for j := 0; j < n; j++ {
			kept.Set(row, j, x.At(i, j))
		}
		keptY = append(keptY, y[i])
		row++
	}
	return kept, keptY
}
