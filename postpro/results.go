// Package postpro consumes the engine's output arrays: goodness-of-fit and
// summary statistics, CSV writers, a hydrograph plot and an HTML report.
package postpro

import (
	"time"

	"github.com/maseology/mmaths/slice"
	"github.com/maseology/objfunc"
)

// Results collects a run's inputs and outputs for writing and reporting.
type Results struct {
	T       []time.Time
	Precip  []float64 // snow-adjusted [mm/day]
	Temp    []float64 // [°C]
	PET     []float64 // [mm/day]
	FlowObs []float64 // nil when unobserved [mm/timestep]

	FlowPredicted []float64   // [mm/timestep]
	SDAvgs        []float64   // [mm]
	SDLocals      [][]float64 // [nt][nbins] [mm]
	UnsatStores   [][]float64 // [nt][nbins] [mm]
	RootStores    [][]float64 // [nt][nbins] [mm]
}

// Fit holds goodness-of-fit measures of predicted against observed flow.
type Fit struct {
	KGE, NSE, RMSE, Bias float64
}

// GoodnessOfFit computes fit measures; call only when observed flow exists.
func (r *Results) GoodnessOfFit() Fit {
	return Fit{
		KGE:  objfunc.KGE(r.FlowObs, r.FlowPredicted),
		NSE:  objfunc.NSE(r.FlowObs, r.FlowPredicted),
		RMSE: objfunc.RMSE(r.FlowObs, r.FlowPredicted),
		Bias: objfunc.Bias(r.FlowObs, r.FlowPredicted),
	}
}

// Summary holds order statistics of one output series.
type Summary struct {
	Name                   string
	Mean, Median, Max, Min float64
}

// Summarize returns summary statistics for the predicted flow and the
// average saturation deficit, plus observed flow when present.
func (r *Results) Summarize() []Summary {
	o := []Summary{
		summarize("flow_predicted (mm/day)", r.FlowPredicted),
		summarize("saturation_deficit_avg (mm)", r.SDAvgs),
	}
	if r.FlowObs != nil {
		o = append(o, summarize("flow_observed (mm/day)", r.FlowObs))
	}
	return o
}

func summarize(name string, a []float64) Summary {
	s := Summary{Name: name, Max: a[0], Min: a[0]}
	for _, v := range a {
		s.Mean += v
		if v > s.Max {
			s.Max = v
		}
		if v < s.Min {
			s.Min = v
		}
	}
	s.Mean /= float64(len(a))
	s.Median = slice.Median(append([]float64{}, a...)) // copy; median may reorder
	return s
}
