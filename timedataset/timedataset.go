// Package timedataset holds the hourly training and forecast inputs for the
// capacity factor models: observation times, weather covariates, and the
// observed solar and wind capacity factors.
package timedataset

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNoObservations    = errors.New("dataset has no observations")
	ErrMismatchedDataLen = errors.New("input data has different length than time")
)

// Weather carries the exogenous covariates measured or forecast for each
// observation time.
type Weather struct {
	Temperature []float64 `json:"temperature"`
	CloudCover  []float64 `json:"cloud_cover"`
	WindSpeed   []float64 `json:"wind_speed"`
}

// Valid checks that every covariate series matches the expected number of
// observations.
func (w Weather) Valid(n int) error {
	if len(w.Temperature) != n {
		return fmt.Errorf("temperature has length %d expecting %d, %w", len(w.Temperature), n, ErrMismatchedDataLen)
	}
	if len(w.CloudCover) != n {
		return fmt.Errorf("cloud cover has length %d expecting %d, %w", len(w.CloudCover), n, ErrMismatchedDataLen)
	}
	if len(w.WindSpeed) != n {
		return fmt.Errorf("wind speed has length %d expecting %d, %w", len(w.WindSpeed), n, ErrMismatchedDataLen)
	}
	return nil
}

// TimeDataset represents a set of observation times with their weather
// covariates and observed capacity factors used to train the forecast models.
type TimeDataset struct {
	T       []time.Time
	Weather Weather
	SolarCF []float64
	WindCF  []float64
}

// New creates a training dataset after validating all series lengths against
// the observation times.
func New(t []time.Time, w Weather, solarCF, windCF []float64) (*TimeDataset, error) {
	if len(t) == 0 {
		return nil, ErrNoObservations
	}
	if err := w.Valid(len(t)); err != nil {
		return nil, err
	}
	if len(solarCF) != len(t) {
		return nil, fmt.Errorf("solar capacity factor has length %d expecting %d, %w", len(solarCF), len(t), ErrMismatchedDataLen)
	}
	if len(windCF) != len(t) {
		return nil, fmt.Errorf("wind capacity factor has length %d expecting %d, %w", len(windCF), len(t), ErrMismatchedDataLen)
	}
	return &TimeDataset{
		T:       t,
		Weather: w,
		SolarCF: solarCF,
		WindCF:  windCF,
	}, nil
}

// Copy duplicates the dataset so callers can hold onto training data without
// sharing slices with the originator.
func (td *TimeDataset) Copy() *TimeDataset {
	if td == nil {
		return nil
	}
	out := &TimeDataset{
		T:       make([]time.Time, len(td.T)),
		SolarCF: make([]float64, len(td.SolarCF)),
		WindCF:  make([]float64, len(td.WindCF)),
		Weather: Weather{
			Temperature: make([]float64, len(td.Weather.Temperature)),
			CloudCover:  make([]float64, len(td.Weather.CloudCover)),
			WindSpeed:   make([]float64, len(td.Weather.WindSpeed)),
		},
	}
	copy(out.T, td.T)
	copy(out.SolarCF, td.SolarCF)
	copy(out.WindCF, td.WindCF)
	copy(out.Weather.Temperature, td.Weather.Temperature)
	copy(out.Weather.CloudCover, td.Weather.CloudCover)
	copy(out.Weather.WindSpeed, td.Weather.WindSpeed)
	return out
}

// GenerateT produces n observation times at the given interval ending near
// the time reported by nowFunc.
func GenerateT(n int, interval time.Duration, nowFunc func() time.Time) []time.Time {
	t := make([]time.Time, 0, n)
	ct := time.Unix(nowFunc().Unix()/3600*3600, 0).Add(-time.Duration(n) * interval).UTC()
	for i := 0; i < n; i++ {
		t = append(t, ct.Add(interval*time.Duration(i)))
	}
	return t
}
