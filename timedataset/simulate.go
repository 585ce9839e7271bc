package timedataset

import (
	"math"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

const hoursPerDay = 24

// Simulate generates a synthetic hourly training dataset covering nDays of
// history ending near the time reported by nowFunc. Solar capacity follows a
// daylight arch with an annual cycle, wind has a milder diurnal profile, and
// both carry beta distributed noise. Weather covariates are drawn to loosely
// track the same seasonal cycles. The same seed reproduces the same dataset.
func Simulate(nDays int, seed uint64, nowFunc func() time.Time) *TimeDataset {
	n := nDays * hoursPerDay
	t := GenerateT(n, time.Hour, nowFunc)

	rng := rand.New(rand.NewSource(seed))
	cfNoise := distuv.Beta{Alpha: 2, Beta: 2, Src: rng}
	cloudDist := distuv.Beta{Alpha: 2, Beta: 5, Src: rng}
	gustDist := distuv.Gamma{Alpha: 2, Beta: 0.5, Src: rng}
	tempNoise := distuv.Normal{Mu: 0, Sigma: 3, Src: rng}

	w := Weather{
		Temperature: make([]float64, n),
		CloudCover:  make([]float64, n),
		WindSpeed:   make([]float64, n),
	}
	solar := make([]float64, n)
	wind := make([]float64, n)

	for i, tPnt := range t {
		hod := float64(tPnt.Hour())
		doy := float64(tPnt.YearDay())
		annual := 2.0 * math.Pi * doy / 365.0

		solarBase := math.Max(0, math.Sin((hod-6.0)*math.Pi/12.0))
		solarSeasonal := 0.2 * math.Sin(annual)
		solar[i] = clamp(solarBase*0.8+solarSeasonal+cfNoise.Rand()*0.2, 0.01, 0.99)

		windBase := 0.4 + 0.3*math.Sin(hod*math.Pi/6.0)
		windSeasonal := 0.15 * math.Cos(annual)
		wind[i] = clamp(windBase+windSeasonal+cfNoise.Rand()*0.3, 0.01, 0.99)

		w.Temperature[i] = 20.0 + 10.0*math.Sin(annual) + tempNoise.Rand()
		w.CloudCover[i] = cloudDist.Rand()
		w.WindSpeed[i] = 5.0 + 3.0*math.Sin(annual) + gustDist.Rand()
	}

	return &TimeDataset{
		T:       t,
		Weather: w,
		SolarCF: solar,
		WindCF:  wind,
	}
}

// SimulateWeather generates a stand-in weather forecast for the given
// horizon times, used when no upstream weather feed is wired in.
func SimulateWeather(t []time.Time, seed uint64) Weather {
	rng := rand.New(rand.NewSource(seed))
	tempNoise := distuv.Normal{Mu: 0, Sigma: 2, Src: rng}
	cloudNoise := distuv.Normal{Mu: 0, Sigma: 0.15, Src: rng}
	gustDist := distuv.Gamma{Alpha: 2, Beta: 1.0 / 1.5, Src: rng}

	w := Weather{
		Temperature: make([]float64, len(t)),
		CloudCover:  make([]float64, len(t)),
		WindSpeed:   make([]float64, len(t)),
	}
	for i, tPnt := range t {
		annual := 2.0 * math.Pi * float64(tPnt.YearDay()) / 365.0
		w.Temperature[i] = 20.0 + 5.0*math.Sin(annual) + tempNoise.Rand()
		w.CloudCover[i] = clamp(0.3+cloudNoise.Rand(), 0, 1)
		w.WindSpeed[i] = 6.0 + 2.0*math.Sin(annual) + gustDist.Rand()
	}
	return w
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
