package feature

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCovariateString(t *testing.T) {
	assert.Equal(t, "cov_temperature", NewCovariate("temperature").String())
	assert.Equal(t, "cov_wind_speed", NewCovariate("wind_speed").String())
}

func TestCovariateGet(t *testing.T) {
	feat := NewCovariate("cloud_cover")

	val, ok := feat.Get("name")
	require.True(t, ok)
	assert.Equal(t, "cloud_cover", val)

	_, ok = feat.Get("order")
	assert.False(t, ok)
}

func TestCovariateUnmarshal(t *testing.T) {
	feat := NewCovariate("temperature")

	out, err := json.Marshal(feat.Decode())
	require.NoError(t, err)

	var decoded Covariate
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, *feat, decoded)
	assert.Equal(t, FeatureTypeCovariate, decoded.Type())
}
