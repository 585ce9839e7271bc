package gridcast

import (
	"errors"
	"fmt"
	"math"

	"github.com/gridcast/gridcast/timedataset"
	"gonum.org/v1/gonum/stat"
)

var ErrResLenMismatch = errors.New("predicted and actual have different lengths")

// Scores tracks the fit quality of a single source model including how well
// the forecast band covers the observed capacity factors.
type Scores struct {
	MSE          float64 `json:"mean_squared_error"`
	MAPE         float64 `json:"mean_average_percent_error"`
	R2           float64 `json:"r_squared"`
	Coverage     float64 `json:"interval_coverage"`
	PinballLower float64 `json:"pinball_lower"`
	PinballUpper float64 `json:"pinball_upper"`
}

// SystemScores groups fit scores per generation source.
type SystemScores struct {
	Solar Scores `json:"solar"`
	Wind  Scores `json:"wind"`
}

// NewSystemScores evaluates a training fit against the observed capacity
// factors of the dataset.
func NewSystemScores(res *Results, td *timedataset.TimeDataset) (*SystemScores, error) {
	solar, err := NewScores(res.Solar, td.SolarCF, res.LowerQuantile, res.UpperQuantile)
	if err != nil {
		return nil, fmt.Errorf("unable to score solar fit, %w", err)
	}
	wind, err := NewScores(res.Wind, td.WindCF, res.LowerQuantile, res.UpperQuantile)
	if err != nil {
		return nil, fmt.Errorf("unable to score wind fit, %w", err)
	}
	return &SystemScores{
		Solar: *solar,
		Wind:  *wind,
	}, nil
}

// NewScores calculates fit scores of a forecast band against actuals.
func NewScores(fc SourceForecast, actual []float64, qLower, qUpper float64) (*Scores, error) {
	mse, err := MSE(fc.Point, actual)
	if err != nil {
		return nil, fmt.Errorf("unable to compute mean squared error, %w", err)
	}
	mape, err := MAPE(fc.Point, actual)
	if err != nil {
		return nil, fmt.Errorf("unable to compute mean average percent error, %w", err)
	}
	rs, err := RSquared(fc.Point, actual)
	if err != nil {
		return nil, fmt.Errorf("unable to compute r-squared, %w", err)
	}
	coverage, err := IntervalCoverage(fc.Lower, fc.Upper, actual)
	if err != nil {
		return nil, fmt.Errorf("unable to compute interval coverage, %w", err)
	}
	pbLower, err := PinballLoss(fc.Lower, actual, qLower)
	if err != nil {
		return nil, fmt.Errorf("unable to compute lower pinball loss, %w", err)
	}
	pbUpper, err := PinballLoss(fc.Upper, actual, qUpper)
	if err != nil {
		return nil, fmt.Errorf("unable to compute upper pinball loss, %w", err)
	}

	return &Scores{
		MSE:          mse,
		MAPE:         mape,
		R2:           rs,
		Coverage:     coverage,
		PinballLower: pbLower,
		PinballUpper: pbUpper,
	}, nil
}

// MSE computes the mean squared error. A score of 0 means a perfect match
// with no errors.
func MSE(predicted, actual []float64) (float64, error) {
	if len(predicted) != len(actual) {
		return 0, fmt.Errorf("expected %d, but got %d, %w", len(actual), len(predicted), ErrResLenMismatch)
	}

	mse := 0.0
	for i := 0; i < len(actual); i++ {
		if math.IsNaN(actual[i]) || math.IsNaN(predicted[i]) {
			continue
		}
		mse += math.Pow(actual[i]-predicted[i], 2.0)
	}
	mse /= float64(len(actual))
	return mse, nil
}

// MAPE calculates the mean average percent error. A score of 0 means a
// perfect match with no errors.
func MAPE(predicted, actual []float64) (float64, error) {
	if len(predicted) != len(actual) {
		return 0, fmt.Errorf("expected %d, but got %d, %w", len(actual), len(predicted), ErrResLenMismatch)
	}

	mape := 0.0
	for i := 0; i < len(actual); i++ {
		if math.IsNaN(actual[i]) || math.IsNaN(predicted[i]) || actual[i] == 0 {
			continue
		}
		mape += math.Abs((actual[i] - predicted[i]) / actual[i])
	}
	mape /= float64(len(actual))
	return mape, nil
}

// RSquared computes the r squared value between the predicted and actual
// where 1.0 means perfect fit and 0 represents no relationship
func RSquared(predicted, actual []float64) (float64, error) {
	if len(predicted) != len(actual) {
		return 0, fmt.Errorf("expected %d, but got %d, %w", len(actual), len(predicted), ErrResLenMismatch)
	}

	predictCopy := make([]float64, 0, len(predicted))
	actualCopy := make([]float64, 0, len(actual))
	for i := 0; i < len(predicted); i++ {
		if math.IsNaN(actual[i]) || math.IsNaN(predicted[i]) {
			continue
		}
		predictCopy = append(predictCopy, predicted[i])
		actualCopy = append(actualCopy, actual[i])
	}
	r2 := stat.RSquaredFrom(predictCopy, actualCopy, nil)
	if math.IsNaN(r2) {
		return 1.0, nil
	}
	return r2, nil
}

// IntervalCoverage returns the fraction of actual values falling inside the
// [lower, upper] band. For a well calibrated 80% band this should land near
// 0.8.
func IntervalCoverage(lower, upper, actual []float64) (float64, error) {
	if len(lower) != len(actual) || len(upper) != len(actual) {
		return 0, fmt.Errorf("expected %d, but got %d and %d, %w", len(actual), len(lower), len(upper), ErrResLenMismatch)
	}
	if len(actual) == 0 {
		return 0, nil
	}

	var covered int
	for i := range actual {
		if actual[i] >= lower[i] && actual[i] <= upper[i] {
			covered++
		}
	}
	return float64(covered) / float64(len(actual)), nil
}

// PinballLoss computes the mean quantile loss of a predicted quantile series
// at level q. Lower is better; the loss is asymmetric, penalizing actuals
// falling on the wrong side of the predicted quantile in proportion to q.
func PinballLoss(predicted, actual []float64, q float64) (float64, error) {
	if len(predicted) != len(actual) {
		return 0, fmt.Errorf("expected %d, but got %d, %w", len(actual), len(predicted), ErrResLenMismatch)
	}
	if len(actual) == 0 {
		return 0, nil
	}

	var loss float64
	for i := range actual {
		diff := actual[i] - predicted[i]
		if diff >= 0 {
			loss += q * diff
		} else {
			loss += (q - 1.0) * diff
		}
	}
	return loss / float64(len(actual)), nil
}
