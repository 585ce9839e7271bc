package gridcast

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"
)

// SourceForecast carries the forecast band of a single generation source.
// All values are capacity factors in [0,1].
type SourceForecast struct {
	Lower []float64 `json:"lower"`
	Point []float64 `json:"point"`
	Upper []float64 `json:"upper"`
}

// Results represents a probabilistic forecast over a time horizon for both
// generation sources.
type Results struct {
	T             []time.Time    `json:"time"`
	LowerQuantile float64        `json:"lower_quantile"`
	UpperQuantile float64        `json:"upper_quantile"`
	Solar         SourceForecast `json:"solar"`
	Wind          SourceForecast `json:"wind"`
}

// TablePrint writes a per hour summary of the point forecasts and combined
// renewable output.
func (r *Results) TablePrint(w io.Writer) error {
	tbl := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	if _, err := fmt.Fprintf(tbl, "Time\tSolar\tWind\tTotal\t\n"); err != nil {
		return err
	}
	for i, tPnt := range r.T {
		total := r.Solar.Point[i] + r.Wind.Point[i]
		if _, err := fmt.Fprintf(tbl, "%s\t%.3f\t%.3f\t%.3f\t\n",
			tPnt.Format("2006-01-02 15:04"),
			r.Solar.Point[i],
			r.Wind.Point[i],
			total,
		); err != nil {
			return err
		}
	}
	return tbl.Flush()
}
