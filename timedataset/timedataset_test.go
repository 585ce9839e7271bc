package timedataset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testNow() time.Time {
	return time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
}

func TestNew(t *testing.T) {
	n := 4
	tm := GenerateT(n, time.Hour, testNow)
	w := Weather{
		Temperature: make([]float64, n),
		CloudCover:  make([]float64, n),
		WindSpeed:   make([]float64, n),
	}

	testData := map[string]struct {
		t     []time.Time
		w     Weather
		solar []float64
		wind  []float64
		err   error
	}{
		"valid": {tm, w, make([]float64, n), make([]float64, n), nil},
		"empty": {nil, w, nil, nil, ErrNoObservations},
		"short temperature": {
			tm,
			Weather{Temperature: make([]float64, n-1), CloudCover: make([]float64, n), WindSpeed: make([]float64, n)},
			make([]float64, n), make([]float64, n),
			ErrMismatchedDataLen,
		},
		"short solar": {tm, w, make([]float64, n-1), make([]float64, n), ErrMismatchedDataLen},
		"short wind":  {tm, w, make([]float64, n), make([]float64, n+2), ErrMismatchedDataLen},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			ds, err := New(td.t, td.w, td.solar, td.wind)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, ds)
			assert.Len(t, ds.T, n)
		})
	}
}

func TestCopy(t *testing.T) {
	ds := Simulate(2, 11, testNow)
	cp := ds.Copy()

	require.Equal(t, ds, cp)

	cp.SolarCF[0] = -1
	cp.Weather.Temperature[0] = -273
	assert.NotEqual(t, ds.SolarCF[0], cp.SolarCF[0])
	assert.NotEqual(t, ds.Weather.Temperature[0], cp.Weather.Temperature[0])
}

func TestGenerateT(t *testing.T) {
	tm := GenerateT(48, time.Hour, testNow)
	require.Len(t, tm, 48)
	for i := 1; i < len(tm); i++ {
		assert.Equal(t, time.Hour, tm[i].Sub(tm[i-1]))
	}
}

func TestSimulate(t *testing.T) {
	ds := Simulate(30, 42, testNow)
	require.Len(t, ds.T, 30*24)

	for i := range ds.T {
		assert.Greater(t, ds.SolarCF[i], 0.0, "solar row %d", i)
		assert.Less(t, ds.SolarCF[i], 1.0, "solar row %d", i)
		assert.Greater(t, ds.WindCF[i], 0.0, "wind row %d", i)
		assert.Less(t, ds.WindCF[i], 1.0, "wind row %d", i)
		assert.GreaterOrEqual(t, ds.Weather.CloudCover[i], 0.0, "cloud row %d", i)
		assert.LessOrEqual(t, ds.Weather.CloudCover[i], 1.0, "cloud row %d", i)
		assert.Greater(t, ds.Weather.WindSpeed[i], 0.0, "wind speed row %d", i)
	}

	// same seed reproduces the dataset
	assert.Equal(t, ds, Simulate(30, 42, testNow))

	// different seed perturbs the noise
	other := Simulate(30, 43, testNow)
	assert.NotEqual(t, ds.SolarCF, other.SolarCF)
}

func TestSimulateWeather(t *testing.T) {
	tm := GenerateT(24, time.Hour, testNow)
	w := SimulateWeather(tm, 7)
	require.NoError(t, w.Valid(24))
	for i := range tm {
		assert.GreaterOrEqual(t, w.CloudCover[i], 0.0)
		assert.LessOrEqual(t, w.CloudCover[i], 1.0)
	}
	assert.Equal(t, w, SimulateWeather(tm, 7))
}
