package gridcast

import (
	"time"

	"github.com/gridcast/gridcast/betareg"
)

// Model represents the serializable format of a trained system storing the
// options, both fitted source models, and the training fit scores.
type Model struct {
	TrainEndTime time.Time      `json:"train_end_time"`
	Options      *Options       `json:"options"`
	Solar        *betareg.Model `json:"solar_model"`
	Wind         *betareg.Model `json:"wind_model"`
	Scores       *SystemScores  `json:"scores,omitempty"`
}
