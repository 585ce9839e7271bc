package gridcast

import (
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// LineForecast generates an echart line chart of a source forecast band
// plotting the point forecast along with the lower and upper quantiles.
func LineForecast(title string, t []time.Time, fc SourceForecast) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: title,
			},
		),
	)

	lineDataPoint := make([]opts.LineData, 0, len(t))
	lineDataUpper := make([]opts.LineData, 0, len(t))
	lineDataLower := make([]opts.LineData, 0, len(t))

	for i := 0; i < len(t); i++ {
		lineDataPoint = append(lineDataPoint, opts.LineData{Value: fc.Point[i]})
		lineDataUpper = append(lineDataUpper, opts.LineData{Value: fc.Upper[i]})
		lineDataLower = append(lineDataLower, opts.LineData{Value: fc.Lower[i]})
	}

	line.SetXAxis(t).
		AddSeries("Forecast", lineDataPoint).
		AddSeries("Upper", lineDataUpper).
		AddSeries("Lower", lineDataLower)
	return line
}
