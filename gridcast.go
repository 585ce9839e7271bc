// Package gridcast produces probabilistic renewable capacity factor
// forecasts for a solar and a wind fleet. Each source is modeled with a beta
// regression over fourier encoded time features and weather covariates,
// giving point forecasts along with arbitrary quantile bands for grid
// management decisions.
package gridcast

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gridcast/gridcast/betareg"
	"github.com/gridcast/gridcast/feature"
	"github.com/gridcast/gridcast/timedataset"
	"gonum.org/v1/gonum/mat"
)

var (
	ErrEmptyTimeDataset = errors.New("no timedataset or uninitialized")
	ErrUntrainedSystem  = errors.New("system has not been trained yet")
	ErrNoOptionsInModel = errors.New("no options set in model")
)

// System wires the solar and wind capacity factor models behind a single
// training and forecasting surface.
type System struct {
	opt *Options

	solar *betareg.Regression
	wind  *betareg.Regression

	fLabels      *feature.Labels
	trainEndTime time.Time
	fitScores    *SystemScores
	trained      bool
}

// New creates a new forecasting system with the given options. If none are
// provided a default is used.
func New(opt *Options) (*System, error) {
	if opt == nil {
		opt = NewDefaultOptions()
	}

	solar, err := betareg.New(opt.Regression)
	if err != nil {
		return nil, fmt.Errorf("unable to initialize solar regression, %w", err)
	}
	wind, err := betareg.New(opt.Regression)
	if err != nil {
		return nil, fmt.Errorf("unable to initialize wind regression, %w", err)
	}

	return &System{
		opt:   opt,
		solar: solar,
		wind:  wind,
	}, nil
}

// NewFromModel creates a system from a previously trained model snapshot.
// The instance can forecast immediately and does not need to be trained
// again.
func NewFromModel(model Model) (*System, error) {
	if model.Options == nil {
		return nil, ErrNoOptionsInModel
	}

	solar, err := betareg.NewFromModel(model.Solar)
	if err != nil {
		return nil, fmt.Errorf("unable to load solar model, %w", err)
	}
	wind, err := betareg.NewFromModel(model.Wind)
	if err != nil {
		return nil, fmt.Errorf("unable to load wind model, %w", err)
	}

	return &System{
		opt:          model.Options,
		solar:        solar,
		wind:         wind,
		fLabels:      modelLabels(model.Options),
		trainEndTime: model.TrainEndTime,
		fitScores:    model.Scores,
		trained:      true,
	}, nil
}

// Fit trains both capacity factor models on the input dataset. The two fits
// only share the read-only design matrix so they run concurrently.
func (s *System) Fit(td *timedataset.TimeDataset) error {
	if td == nil || len(td.T) == 0 {
		return ErrEmptyTimeDataset
	}

	x, labels, err := designMatrix(td.T, td.Weather, s.opt)
	if err != nil {
		return fmt.Errorf("unable to build design matrix, %w", err)
	}

	var wg sync.WaitGroup
	var solarErr, windErr error
	wg.Add(2)
	go func() {
		defer wg.Done()
		solarErr = s.fitSource(s.solar, x, td.SolarCF)
	}()
	go func() {
		defer wg.Done()
		windErr = s.fitSource(s.wind, x, td.WindCF)
	}()
	wg.Wait()

	if solarErr != nil {
		return fmt.Errorf("unable to fit solar capacity model, %w", solarErr)
	}
	if windErr != nil {
		return fmt.Errorf("unable to fit wind capacity model, %w", windErr)
	}

	s.fLabels = labels
	s.trainEndTime = td.T[len(td.T)-1]
	s.trained = true

	res, err := s.Forecast(td.T, td.Weather)
	if err != nil {
		return fmt.Errorf("unable to score training fit, %w", err)
	}
	scores, err := NewSystemScores(res, td)
	if err != nil {
		return fmt.Errorf("unable to compute fit scores, %w", err)
	}
	s.fitScores = scores

	return nil
}

// fitSource trains a single source model, iteratively excluding residual
// outliers when configured. Each pass refits on the surviving observations
// until no further outliers are detected or the pass budget runs out.
func (s *System) fitSource(reg *betareg.Regression, x mat.Matrix, y []float64) error {
	numPasses := 0
	if s.opt.Outlier != nil {
		numPasses = s.opt.Outlier.NumPasses
	}

	obs := append([]float64(nil), y...)
	for i := 0; i <= numPasses; i++ {
		if err := reg.Fit(x, obs); err != nil {
			return err
		}
		if s.opt.Outlier == nil {
			break
		}

		predicted, err := reg.Predict(x)
		if err != nil {
			return err
		}
		residual := make([]float64, len(obs))
		for j := range obs {
			residual[j] = obs[j] - predicted[j]
		}

		outlierIdxs := DetectOutliers(
			residual,
			s.opt.Outlier.LowerPercentile,
			s.opt.Outlier.UpperPercentile,
			s.opt.Outlier.TukeyFactor,
		)
		// degenerate residual spreads can flag every observation
		if len(outlierIdxs) == 0 || len(outlierIdxs) == len(obs) {
			break
		}
		x, obs = excludeRows(x, obs, outlierIdxs)
	}
	return nil
}

// Forecast generates the point forecast along with the configured quantile
// band for each source over the requested times using the supplied weather
// forecast.
func (s *System) Forecast(t []time.Time, w timedataset.Weather) (*Results, error) {
	if !s.trained {
		return nil, ErrUntrainedSystem
	}

	x, _, err := designMatrix(t, w, s.opt)
	if err != nil {
		return nil, fmt.Errorf("unable to build design matrix, %w", err)
	}

	res := &Results{
		T:             append([]time.Time(nil), t...),
		LowerQuantile: s.opt.LowerQuantile,
		UpperQuantile: s.opt.UpperQuantile,
	}

	for _, src := range []struct {
		reg *betareg.Regression
		out *SourceForecast
	}{
		{s.solar, &res.Solar},
		{s.wind, &res.Wind},
	} {
		point, err := src.reg.Predict(x)
		if err != nil {
			return nil, err
		}
		lower, err := src.reg.PredictQuantile(x, s.opt.LowerQuantile)
		if err != nil {
			return nil, err
		}
		upper, err := src.reg.PredictQuantile(x, s.opt.UpperQuantile)
		if err != nil {
			return nil, err
		}
		src.out.Point = point
		src.out.Lower = lower
		src.out.Upper = upper
	}

	return res, nil
}

// Model returns the serializable snapshot of the trained system.
func (s *System) Model() (Model, error) {
	if !s.trained {
		return Model{}, ErrUntrainedSystem
	}

	solar, err := s.solar.Model()
	if err != nil {
		return Model{}, err
	}
	wind, err := s.wind.Model()
	if err != nil {
		return Model{}, err
	}

	return Model{
		TrainEndTime: s.trainEndTime,
		Options:      s.opt,
		Solar:        solar,
		Wind:         wind,
		Scores:       s.fitScores,
	}, nil
}

// Coefficients maps the fitted coefficients of a source model keyed by the
// string representation of each feature label. The intercept is keyed as
// "intercept".
func (s *System) Coefficients(source Source) (map[string]float64, error) {
	if !s.trained || s.fLabels == nil {
		return nil, ErrUntrainedSystem
	}

	var coef []float64
	switch source {
	case SourceSolar:
		coef = s.solar.Coef()
	case SourceWind:
		coef = s.wind.Coef()
	default:
		return nil, fmt.Errorf("unknown source %q", source)
	}

	labels := s.fLabels.Labels()
	if len(coef) != len(labels)+1 {
		return nil, fmt.Errorf("have %d coefficients for %d labels plus intercept, %w", len(coef), len(labels), betareg.ErrFeatureLenMismatch)
	}

	out := make(map[string]float64, len(coef))
	out["intercept"] = coef[0]
	for i, label := range labels {
		out[label.String()] = coef[i+1]
	}
	return out, nil
}

// Scores returns the training fit scores per source.
func (s *System) Scores() SystemScores {
	if s.fitScores == nil {
		return SystemScores{}
	}
	return *s.fitScores
}

// Source identifies one of the modeled generation fleets.
type Source string

const (
	SourceSolar Source = "solar"
	SourceWind  Source = "wind"
)
