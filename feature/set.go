package feature

import (
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Data pairs a feature label with its column of observations.
type Data struct {
	F    Feature
	Data []float64
}

// Set represents a mapping to each feature data keyed by the string
// representation of the feature.
type Set map[string]Data

// Labels returns the sorted slice of all tracked features in the Set
func (s Set) Labels() *Labels {
	if s == nil {
		return nil
	}

	labels := make([]Feature, 0, len(s))
	for _, feat := range s {
		labels = append(labels, feat.F)
	}
	sort.Slice(
		labels,
		func(i, j int) bool {
			return labels[i].String() < labels[j].String()
		},
	)
	return NewLabels(labels)
}

// Matrix returns the design matrix representation of the Set with m rows
// representing the number of observations and n columns representing the
// number of features ordered by label. An intercept column of ones is
// prepended when requested.
func (s Set) Matrix(intercept bool) *mat.Dense {
	if s == nil {
		return nil
	}

	featureLabels := s.Labels()
	if featureLabels.Len() == 0 {
		return nil
	}

	var m int
	// use first feature to get length
	for _, flabel := range featureLabels.Labels() {
		m = len(s[flabel.String()].Data)
		break
	}
	n := featureLabels.Len()
	if intercept {
		n += 1
	}

	obs := make([]float64, m*n)

	featNum := 0
	if intercept {
		for i := 0; i < m; i++ {
			idx := n * i
			obs[idx] = 1.0
		}
		featNum += 1
	}

	for _, label := range featureLabels.Labels() {
		feature := s[label.String()]
		for i := 0; i < len(feature.Data); i++ {
			idx := n*i + featNum
			obs[idx] = feature.Data[i]
		}
		featNum += 1
	}
	return mat.NewDense(m, n, obs)
}
