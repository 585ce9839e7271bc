package feature

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func testSet() Set {
	set := make(Set)
	for _, fd := range []Data{
		{NewCovariate("temperature"), []float64{0.2, 0.3, 0.4}},
		{NewSeasonality("hod", FourierCompSin, 1, 24.0), []float64{0.0, 1.0, 0.0}},
		{NewSeasonality("hod", FourierCompCos, 1, 24.0), []float64{1.0, 0.0, -1.0}},
	} {
		set[fd.F.String()] = fd
	}
	return set
}

func TestSetLabels(t *testing.T) {
	set := testSet()

	labels := set.Labels()
	require.Equal(t, 3, labels.Len())

	// labels come out sorted by string representation
	var got []string
	for _, f := range labels.Labels() {
		got = append(got, f.String())
	}
	assert.Equal(t, []string{"cov_temperature", "seas_hod_01_cos", "seas_hod_01_sin"}, got)

	idx, ok := labels.Index(NewCovariate("temperature"))
	require.True(t, ok)
	assert.Equal(t, 0, idx)

	_, ok = labels.Index(NewCovariate("bogus"))
	assert.False(t, ok)

	var nilSet Set
	assert.Nil(t, nilSet.Labels())
}

func TestSetMatrix(t *testing.T) {
	set := testSet()

	x := set.Matrix(false)
	require.NotNil(t, x)
	m, n := x.Dims()
	assert.Equal(t, 3, m)
	assert.Equal(t, 3, n)

	// columns follow sorted label order
	assert.Equal(t, []float64{0.2, 0.3, 0.4}, mat.Col(nil, 0, x))
	assert.Equal(t, []float64{1.0, 0.0, -1.0}, mat.Col(nil, 1, x))
	assert.Equal(t, []float64{0.0, 1.0, 0.0}, mat.Col(nil, 2, x))
}

func TestSetMatrixIntercept(t *testing.T) {
	set := testSet()

	x := set.Matrix(true)
	require.NotNil(t, x)
	m, n := x.Dims()
	assert.Equal(t, 3, m)
	assert.Equal(t, 4, n)

	assert.Equal(t, []float64{1.0, 1.0, 1.0}, mat.Col(nil, 0, x))
	assert.Equal(t, []float64{0.2, 0.3, 0.4}, mat.Col(nil, 1, x))
}

func TestSetMatrixEmpty(t *testing.T) {
	var nilSet Set
	assert.Nil(t, nilSet.Matrix(true))

	assert.Nil(t, make(Set).Matrix(true))
}
