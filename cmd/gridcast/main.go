// Command gridcast trains the solar and wind capacity factor models on
// simulated history and emits a 24 hour probabilistic forecast with grid
// management recommendations.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/goccy/go-json"
	"github.com/gridcast/gridcast"
	"github.com/gridcast/gridcast/timedataset"
)

func main() {
	days := flag.Int("days", 90, "days of hourly training history to simulate")
	order := flag.Int("order", 6, "fourier order for the hour of day cycle")
	seed := flag.Uint64("seed", 1, "simulation seed")
	out := flag.String("out", "forecast_output.json", "forecast JSON output path")
	htmlOut := flag.String("html", "", "optional forecast chart HTML output path")
	demand := flag.Float64("demand", 0.65, "expected demand in capacity factor terms")
	battery := flag.Float64("battery", 0.75, "current battery state of charge")
	flag.Parse()

	if err := run(*days, *order, *seed, *out, *htmlOut, *demand, *battery); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(days, order int, seed uint64, out, htmlOut string, demand, battery float64) error {
	td := timedataset.Simulate(days, seed, time.Now)
	fmt.Printf("simulated %d hours of training history\n", len(td.T))

	opt := gridcast.NewDefaultOptions()
	opt.HourlyOrder = order

	sys, err := gridcast.New(opt)
	if err != nil {
		return err
	}
	if err := sys.Fit(td); err != nil {
		return err
	}

	scores := sys.Scores()
	fmt.Printf("solar fit: r2=%.3f coverage=%.3f\n", scores.Solar.R2, scores.Solar.Coverage)
	fmt.Printf("wind fit:  r2=%.3f coverage=%.3f\n", scores.Wind.R2, scores.Wind.Coverage)

	// 24 hour horizon with a simulated weather forecast
	horizon := make([]time.Time, 0, 24)
	start := td.T[len(td.T)-1].Add(time.Hour)
	for i := 0; i < 24; i++ {
		horizon = append(horizon, start.Add(time.Duration(i)*time.Hour))
	}
	weather := timedataset.SimulateWeather(horizon, seed+1)

	res, err := sys.Forecast(horizon, weather)
	if err != nil {
		return err
	}

	fmt.Println("\n24 hour forecast:")
	if err := res.TablePrint(os.Stdout); err != nil {
		return err
	}

	bytes, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, bytes, 0o644); err != nil {
		return err
	}
	fmt.Printf("\nwrote forecast to %s\n", out)

	if htmlOut != "" {
		if err := writeChart(htmlOut, res); err != nil {
			return err
		}
		fmt.Printf("wrote chart to %s\n", htmlOut)
	}

	fmt.Println("\ngrid recommendations:")
	profile := gridcast.NewDemandProfile(demand)
	for i := 0; i < len(horizon); i += 6 {
		action := gridcast.RecommendAction(
			res.Solar.Point[i],
			res.Wind.Point[i],
			profile.At(horizon[i]),
			battery,
		)
		fmt.Printf("%s  %s\n", horizon[i].Format("2006-01-02 15:04"), action)
	}

	return nil
}

func writeChart(path string, res *gridcast.Results) error {
	page := components.NewPage()
	page.AddCharts(
		gridcast.LineForecast("Solar Capacity Factor", res.T, res.Solar),
		gridcast.LineForecast("Wind Capacity Factor", res.T, res.Wind),
	)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return page.Render(f)
}
