package gridcast

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/gridcast/gridcast/timedataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testNow() time.Time {
	return time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
}

func fitTestSystem(t *testing.T) (*System, *timedataset.TimeDataset) {
	t.Helper()

	td := timedataset.Simulate(30, 42, testNow)

	opt := NewDefaultOptions()
	opt.HourlyOrder = 3

	sys, err := New(opt)
	require.NoError(t, err)
	require.NoError(t, sys.Fit(td))
	return sys, td
}

func forecastHorizon(td *timedataset.TimeDataset, n int) ([]time.Time, timedataset.Weather) {
	horizon := make([]time.Time, 0, n)
	start := td.T[len(td.T)-1].Add(time.Hour)
	for i := 0; i < n; i++ {
		horizon = append(horizon, start.Add(time.Duration(i)*time.Hour))
	}
	return horizon, timedataset.SimulateWeather(horizon, 7)
}

func TestSystemFitForecast(t *testing.T) {
	sys, td := fitTestSystem(t)

	horizon, weather := forecastHorizon(td, 24)
	res, err := sys.Forecast(horizon, weather)
	require.NoError(t, err)

	require.Len(t, res.T, 24)
	require.Len(t, res.Solar.Point, 24)
	require.Len(t, res.Wind.Point, 24)

	for i := range res.T {
		for name, fc := range map[string]SourceForecast{"solar": res.Solar, "wind": res.Wind} {
			assert.GreaterOrEqual(t, fc.Point[i], 0.0, "%s row %d", name, i)
			assert.LessOrEqual(t, fc.Point[i], 1.0, "%s row %d", name, i)
			assert.LessOrEqual(t, fc.Lower[i], fc.Upper[i], "%s row %d", name, i)
		}
	}
}

func TestSystemFitDefaultOptions(t *testing.T) {
	td := timedataset.Simulate(30, 42, testNow)

	sys, err := New(nil)
	require.NoError(t, err)
	require.NoError(t, sys.Fit(td))

	res, err := sys.Forecast(td.T, td.Weather)
	require.NoError(t, err)
	require.Len(t, res.Solar.Point, len(td.T))
	require.Len(t, res.Wind.Point, len(td.T))
}

func TestSystemFitScores(t *testing.T) {
	sys, _ := fitTestSystem(t)

	scores := sys.Scores()

	// the simulated series have a strong diurnal cycle the model should find
	assert.Greater(t, scores.Solar.R2, 0.5, "solar r2")
	assert.Greater(t, scores.Wind.R2, 0.3, "wind r2")

	// the 80% band should cover most of the training observations
	assert.Greater(t, scores.Solar.Coverage, 0.6, "solar coverage")
	assert.Less(t, scores.Solar.Coverage, 1.0, "solar coverage")
	assert.Greater(t, scores.Wind.Coverage, 0.6, "wind coverage")
}

func TestSystemUntrained(t *testing.T) {
	sys, err := New(nil)
	require.NoError(t, err)

	td := timedataset.Simulate(2, 1, testNow)

	_, err = sys.Forecast(td.T, td.Weather)
	assert.ErrorIs(t, err, ErrUntrainedSystem)

	_, err = sys.Model()
	assert.ErrorIs(t, err, ErrUntrainedSystem)

	_, err = sys.Coefficients(SourceSolar)
	assert.ErrorIs(t, err, ErrUntrainedSystem)
}

func TestSystemFitEmptyDataset(t *testing.T) {
	sys, err := New(nil)
	require.NoError(t, err)

	assert.ErrorIs(t, sys.Fit(nil), ErrEmptyTimeDataset)
	assert.ErrorIs(t, sys.Fit(&timedataset.TimeDataset{}), ErrEmptyTimeDataset)
}

func TestSystemModelRoundTrip(t *testing.T) {
	sys, td := fitTestSystem(t)

	model, err := sys.Model()
	require.NoError(t, err)

	bytes, err := json.Marshal(model)
	require.NoError(t, err)

	var decoded Model
	require.NoError(t, json.Unmarshal(bytes, &decoded))

	restored, err := NewFromModel(decoded)
	require.NoError(t, err)

	horizon, weather := forecastHorizon(td, 24)
	exp, err := sys.Forecast(horizon, weather)
	require.NoError(t, err)
	got, err := restored.Forecast(horizon, weather)
	require.NoError(t, err)

	assert.Equal(t, exp, got)
}

func TestSystemCoefficients(t *testing.T) {
	sys, _ := fitTestSystem(t)

	coef, err := sys.Coefficients(SourceSolar)
	require.NoError(t, err)

	// intercept + 2*(3 hourly + 1 annual) harmonics + 3 weather covariates
	assert.Len(t, coef, 1+2*(3+1)+3)
	assert.Contains(t, coef, "intercept")
	assert.Contains(t, coef, "seas_hod_01_sin")
	assert.Contains(t, coef, "seas_hod_03_cos")
	assert.Contains(t, coef, "seas_doy_01_sin")
	assert.Contains(t, coef, "cov_temperature")
	assert.Contains(t, coef, "cov_cloud_cover")
	assert.Contains(t, coef, "cov_wind_speed")

	_, err = sys.Coefficients(Source("hydro"))
	assert.Error(t, err)
}

func TestSystemCoefficientsAfterRestore(t *testing.T) {
	sys, _ := fitTestSystem(t)

	model, err := sys.Model()
	require.NoError(t, err)
	restored, err := NewFromModel(model)
	require.NoError(t, err)

	for _, source := range []Source{SourceSolar, SourceWind} {
		exp, err := sys.Coefficients(source)
		require.NoError(t, err)
		got, err := restored.Coefficients(source)
		require.NoError(t, err)
		assert.Equal(t, exp, got, string(source))
	}
}

func TestNewFromModelNoOptions(t *testing.T) {
	_, err := NewFromModel(Model{})
	assert.ErrorIs(t, err, ErrNoOptionsInModel)
}
