package gridcast

import (
	"github.com/gridcast/gridcast/betareg"
)

// Options configures the feature encoding and estimation of the capacity
// factor models.
type Options struct {
	// HourlyOrder is the number of fourier harmonics encoding the hour of
	// day cycle
	HourlyOrder int `json:"hourly_order"`

	// AnnualOrder is the number of fourier harmonics encoding the day of
	// year cycle
	AnnualOrder int `json:"annual_order"`

	// LowerQuantile and UpperQuantile set the probabilistic forecast band
	LowerQuantile float64 `json:"lower_quantile"`
	UpperQuantile float64 `json:"upper_quantile"`

	// Outlier enables iterative residual outlier exclusion during training.
	// Nil keeps every observation.
	Outlier *OutlierOptions `json:"outlier_options,omitempty"`

	Regression *betareg.Options `json:"regression"`
}

// OutlierOptions configures the detection of anomalous capacity factor
// observations to exclude while training, e.g. curtailment events or sensor
// faults that would otherwise drag the fitted mean.
type OutlierOptions struct {
	NumPasses       int     `json:"num_passes"`
	UpperPercentile float64 `json:"upper_percentile"`
	LowerPercentile float64 `json:"lower_percentile"`
	TukeyFactor     float64 `json:"tukey_factor"`
}

func NewOutlierOptions() *OutlierOptions {
	return &OutlierOptions{
		NumPasses:       3,
		UpperPercentile: 0.9,
		LowerPercentile: 0.1,
		TukeyFactor:     1.0,
	}
}

// NewDefaultOptions returns options matching a 24 hour diurnal cycle with a
// single annual harmonic and an 80% forecast band.
func NewDefaultOptions() *Options {
	return &Options{
		HourlyOrder:   6,
		AnnualOrder:   1,
		LowerQuantile: 0.1,
		UpperQuantile: 0.9,
		Regression:    betareg.NewDefaultOptions(),
	}
}
