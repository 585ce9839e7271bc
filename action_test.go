package gridcast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecommendAction(t *testing.T) {
	testData := map[string]struct {
		solarCF  float64
		windCF   float64
		demand   float64
		battery  float64
		expected Action
	}{
		"deficit with charged battery": {0.1, 0.1, 0.7, 0.8, ActionDischargeBattery},
		"deficit with drained battery": {0.1, 0.1, 0.7, 0.2, ActionActivateBackup},
		"surplus with battery room":    {0.6, 0.5, 0.7, 0.5, ActionChargeBattery},
		"surplus with full battery":    {0.6, 0.5, 0.7, 0.95, ActionCurtailGeneration},
		"balanced":                     {0.4, 0.3, 0.7, 0.5, ActionNominalOperation},
		"deficit boundary":             {0.3, 0.3, 0.7, 0.5, ActionNominalOperation},
	}
	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			got := RecommendAction(td.solarCF, td.windCF, td.demand, td.battery)
			assert.Equal(t, td.expected, got)
		})
	}
}
