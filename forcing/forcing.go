// Package forcing loads the model forcing timeseries (precipitation,
// temperature, optional PET and observed flow) from a comma-delimited file
// and caches the parsed series as a gob.
package forcing

import "time"

const secPerDay = 86400.

// Forcing holds the aligned, gap-free forcing series. PET and FlowObs are
// nil when their columns are absent from the source file.
type Forcing struct {
	T           []time.Time
	Temp        []float64 // [°C]
	Precip      []float64 // [mm/day]
	PET         []float64 // [mm/day]
	FlowObs     []float64 // [mm/day]
	IntervalSec float64
}

// TimestepDailyFraction returns the timestep as a fraction of a day; 1 for
// daily series.
func (frc *Forcing) TimestepDailyFraction() float64 {
	return frc.IntervalSec / secPerDay
}

func (frc *Forcing) HasPET() bool     { return frc.PET != nil }
func (frc *Forcing) HasFlowObs() bool { return frc.FlowObs != nil }
