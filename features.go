package gridcast

import (
	"errors"
	"math"
	"time"

	"github.com/gridcast/gridcast/feature"
	"github.com/gridcast/gridcast/fourier"
	"github.com/gridcast/gridcast/timedataset"
	"gonum.org/v1/gonum/mat"
)

var ErrNoTimes = errors.New("no observation times")

const (
	hourPeriod = 24.0
	dayPeriod  = 365.0

	// covariate scaling keeps all regressors near unit magnitude so the
	// optimizer starts from a reasonably conditioned problem
	temperatureScale = 100.0
	windSpeedScale   = 10.0
)

// generateFeatures builds the labeled design matrix columns from the
// observation times and weather covariates. The same options must be used at
// train and forecast time for the columns to line up with the model
// coefficients.
func generateFeatures(t []time.Time, w timedataset.Weather, opt *Options) (feature.Set, error) {
	if opt == nil {
		opt = NewDefaultOptions()
	}
	if len(t) == 0 {
		return nil, ErrNoTimes
	}
	if err := w.Valid(len(t)); err != nil {
		return nil, err
	}

	hod := make([]float64, len(t))
	doy := make([]float64, len(t))
	for i, tPnt := range t {
		hod[i] = math.Mod(float64(tPnt.Unix())/3600.0, hourPeriod)
		doy[i] = float64(tPnt.YearDay())
	}

	feat := make(feature.Set)
	if err := addFourierFeatures(feat, "hod", hod, opt.HourlyOrder, hourPeriod); err != nil {
		return nil, err
	}
	if err := addFourierFeatures(feat, "doy", doy, opt.AnnualOrder, dayPeriod); err != nil {
		return nil, err
	}

	addCovariate(feat, "temperature", w.Temperature, temperatureScale)
	addCovariate(feat, "cloud_cover", w.CloudCover, 1.0)
	addCovariate(feat, "wind_speed", w.WindSpeed, windSpeedScale)

	return feat, nil
}

func addFourierFeatures(feat feature.Set, name string, pos []float64, order int, period float64) error {
	x, err := fourier.Features(pos, order, period)
	if err != nil {
		return err
	}
	if x == nil {
		return nil
	}
	for k := 1; k <= order; k++ {
		sinFeat := feature.NewSeasonality(name, feature.FourierCompSin, k, period)
		cosFeat := feature.NewSeasonality(name, feature.FourierCompCos, k, period)
		feat[sinFeat.String()] = feature.Data{
			F:    sinFeat,
			Data: mat.Col(nil, 2*(k-1), x),
		}
		feat[cosFeat.String()] = feature.Data{
			F:    cosFeat,
			Data: mat.Col(nil, 2*(k-1)+1, x),
		}
	}
	return nil
}

func addCovariate(feat feature.Set, name string, data []float64, scale float64) {
	scaled := make([]float64, len(data))
	for i, v := range data {
		scaled[i] = v / scale
	}
	f := feature.NewCovariate(name)
	feat[f.String()] = feature.Data{
		F:    f,
		Data: scaled,
	}
}

// modelLabels rebuilds the design matrix labels implied by the options so a
// system restored from a snapshot can report coefficients without refitting.
// Must stay in lockstep with generateFeatures.
func modelLabels(opt *Options) *feature.Labels {
	feat := make(feature.Set)
	for _, season := range []struct {
		name   string
		order  int
		period float64
	}{
		{"hod", opt.HourlyOrder, hourPeriod},
		{"doy", opt.AnnualOrder, dayPeriod},
	} {
		for k := 1; k <= season.order; k++ {
			for _, comp := range []feature.FourierComp{feature.FourierCompSin, feature.FourierCompCos} {
				f := feature.NewSeasonality(season.name, comp, k, season.period)
				feat[f.String()] = feature.Data{F: f}
			}
		}
	}
	for _, name := range []string{"temperature", "cloud_cover", "wind_speed"} {
		f := feature.NewCovariate(name)
		feat[f.String()] = feature.Data{F: f}
	}
	return feat.Labels()
}

// designMatrix assembles the full design matrix with a leading intercept
// column along with the ordered feature labels.
func designMatrix(t []time.Time, w timedataset.Weather, opt *Options) (*mat.Dense, *feature.Labels, error) {
	feat, err := generateFeatures(t, w, opt)
	if err != nil {
		return nil, nil, err
	}
	return feat.Matrix(true), feat.Labels(), nil
}
