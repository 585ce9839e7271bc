package gridcast

import (
	"math"
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/us"
)

const (
	// off days pull demand down relative to a working day
	offDayDemandFactor = 0.85

	// diurnal demand swing around the daily baseline, peaking mid afternoon
	demandSwing     = 0.15
	demandPeakHour  = 15.0
	demandBaseLevel = 0.9
)

// DemandProfile produces an hourly expected demand level, scaled to capacity
// factor terms, with working days distinguished from weekends and US
// holidays.
type DemandProfile struct {
	// Base is the reference demand level a working day oscillates around
	Base float64

	calendar *cal.BusinessCalendar
}

// NewDemandProfile creates a demand profile observing the major US holidays.
func NewDemandProfile(base float64) *DemandProfile {
	c := cal.NewBusinessCalendar()
	c.AddHoliday(
		us.NewYear,
		us.MemorialDay,
		us.IndependenceDay,
		us.LaborDay,
		us.ThanksgivingDay,
		us.ChristmasDay,
	)
	return &DemandProfile{
		Base:     base,
		calendar: c,
	}
}

// At returns the expected demand level for the given time.
func (p *DemandProfile) At(t time.Time) float64 {
	hod := float64(t.Hour())
	diurnal := demandBaseLevel + demandSwing*math.Cos((hod-demandPeakHour)*math.Pi/12.0)

	day := 1.0
	if !p.calendar.IsWorkday(t) {
		day = offDayDemandFactor
	}
	return p.Base * diurnal * day
}
