// Package feature tracks the labeled columns of a design matrix so that
// training and inference always agree on column order and meaning.
package feature

type FeatureType string

const (
	FeatureTypeSeasonality FeatureType = "seasonality"
	FeatureTypeCovariate   FeatureType = "covariate"
)

type Feature interface {
	String() string
	Get(string) (string, bool)
	Type() FeatureType
	Decode() map[string]string
}
