// Package model implements a topographic-wetness-index driven
// rainfall-runoff model after Beven and Kirkby (1979), following the USGS
// formulation of Wolock (1993). A single watershed-average saturation
// deficit is downscaled over the TWI distribution each timestep, per-bin
// soil stores are balanced, and base, overland and impervious flows are
// aggregated into a routed stream discharge.
package model

import "math"

// Topmodel steps a catchment water balance through a fixed-length moisture
// series. All time-evolving state is owned here; Run mutates it in place.
type Topmodel struct {
	par Parameters

	// TWI distribution
	twiVals  []float64 // wetness index per bin
	twiAreas []float64 // fractional saturated area per bin, sums to 1
	twiMean  float64   // area-weighted mean wetness index

	// available moisture [mm/timestep]: precipitation (snow-adjusted) - pet
	precipAvailable []float64

	nbins, nt int

	// derived at initialization, fixed for the run
	soilDepthC        float64 // C-horizon depth [m]
	vertDrainageInit  float64 // initial vertical drainage rate [mm/timestep]
	transmissivityMax float64 // max saturated transmissivity [mm²/day]
	flowSubsurfaceMax float64 // max subsurface flow [mm/timestep]
	rootZoneMax       float64 // max root-zone storage [mm]
	channelLength     float64 // [km]
	travelTime        float64 // channel travel time [timesteps], >= 1

	// loop-carried state
	sdAvg float64   // watershed-average saturation deficit [mm]
	unsat []float64 // unsaturated-zone storage per bin [mm]
	root  []float64 // root-zone storage per bin [mm]

	// outputs, one row appended per timestep
	flowPredicted []float64
	sdAvgs        []float64
	sdLocals      [][]float64
	unsatStores   [][]float64
	rootStores    [][]float64

	ran bool
}

// New builds a ready-to-run model from catchment parameters, a TWI
// distribution (values, fractional saturated areas and their weighted mean)
// and an available-moisture series [mm/timestep]. Returns
// ErrInvalidTimestep when the timestep daily fraction exceeds 1.
func New(par Parameters, twiVals, twiAreas []float64, twiMean float64, precipAvailable []float64) (*Topmodel, error) {
	if par.TimestepDailyFraction > 1 {
		return nil, ErrInvalidTimestep
	}
	par.applyDefaults()

	// initial flow is specified per day; express it per timestep
	par.FlowInitial *= par.TimestepDailyFraction

	t := &Topmodel{
		par:             par,
		twiVals:         twiVals,
		twiAreas:        twiAreas,
		twiMean:         twiMean,
		precipAvailable: precipAvailable,
		nbins:           len(twiVals),
		nt:              len(precipAvailable),
	}

	t.initSoilHydraulics()
	t.initChannelRouting()

	// back-solve the deficit that reproduces the initial flow under the
	// recession law, so state at t=0 is continuous with the first
	// computed baseflow
	t.sdAvg = -math.Log(t.par.FlowInitial/t.flowSubsurfaceMax) * t.par.ScalingParameter

	// root zone starts full, unsaturated zone empty
	t.unsat = make([]float64, t.nbins)
	t.root = make([]float64, t.nbins)
	for j := range t.root {
		t.root[j] = t.rootZoneMax
	}

	// outputs carry NaN until written, so untouched cells are detectable
	t.flowPredicted = nans(t.nt)
	t.sdAvgs = nans(t.nt)
	t.sdLocals = nanMatrix(t.nt, t.nbins)
	t.unsatStores = nanMatrix(t.nt, t.nbins)
	t.rootStores = nanMatrix(t.nt, t.nbins)

	return t, nil
}

func (t *Topmodel) initSoilHydraulics() {
	if t.par.SoilDepthRoots > t.par.SoilDepthTotal {
		t.par.SoilDepthRoots = t.par.SoilDepthTotal
	}
	t.soilDepthC = t.par.SoilDepthTotal - t.par.SoilDepthABHorizon

	t.vertDrainageInit = t.par.SaturatedHydraulicConductivity * t.par.TimestepDailyFraction

	// Wolock (1993) eq. 41
	t.transmissivityMax = t.par.SoilDepthABHorizon*abHorizonConductivityFactor*t.par.SaturatedHydraulicConductivity +
		t.soilDepthC*t.par.SaturatedHydraulicConductivity

	// Wolock (1993) eq. 32
	t.flowSubsurfaceMax = t.transmissivityMax * math.Exp(-t.twiMean) * t.par.TimestepDailyFraction

	// Wolock (1993) eq. 36, [m] to [mm]
	t.rootZoneMax = t.par.SoilDepthRoots * mTomm * t.par.FieldCapacityFraction
}

func (t *Topmodel) initChannelRouting() {
	// channel length approximated as the diameter of a circular basin
	t.channelLength = 2. * math.Sqrt(t.par.BasinAreaTotal/math.Pi)

	// Wolock (1993) eq. 38, floored so water is never routed in under one
	// timestep
	t.travelTime = t.channelLength / t.par.ChannelVelocityAvg
	if t.travelTime < 1. {
		t.travelTime = 1.
	}
}

// FlowPredicted returns the routed stream discharge series [mm/timestep].
func (t *Topmodel) FlowPredicted() []float64 { return t.flowPredicted }

// SaturationDeficitAvgs returns the watershed-average saturation deficit
// history [mm].
func (t *Topmodel) SaturationDeficitAvgs() []float64 { return t.sdAvgs }

// SaturationDeficitLocals returns the per-timestep, per-bin local
// saturation deficit [mm].
func (t *Topmodel) SaturationDeficitLocals() [][]float64 { return t.sdLocals }

// UnsaturatedZoneStorages returns the per-timestep, per-bin
// unsaturated-zone storage [mm].
func (t *Topmodel) UnsaturatedZoneStorages() [][]float64 { return t.unsatStores }

// RootZoneStorages returns the per-timestep, per-bin root-zone storage [mm].
func (t *Topmodel) RootZoneStorages() [][]float64 { return t.rootStores }

// FlowSubsurfaceMax returns the maximum subsurface flow [mm/timestep].
func (t *Topmodel) FlowSubsurfaceMax() float64 { return t.flowSubsurfaceMax }

// TransmissivityMax returns the maximum saturated transmissivity.
func (t *Topmodel) TransmissivityMax() float64 { return t.transmissivityMax }

// RootZoneStorageMax returns the root-zone storage capacity [mm].
func (t *Topmodel) RootZoneStorageMax() float64 { return t.rootZoneMax }

// ChannelTravelTime returns the routing delay [timesteps].
func (t *Topmodel) ChannelTravelTime() float64 { return t.travelTime }

// SaturationDeficitAvg returns the current watershed-average saturation
// deficit [mm]; before Run it is the back-solved initial deficit.
func (t *Topmodel) SaturationDeficitAvg() float64 { return t.sdAvg }

func nans(n int) []float64 {
	o := make([]float64, n)
	for i := range o {
		o[i] = math.NaN()
	}
	return o
}

func nanMatrix(nr, nc int) [][]float64 {
	o := make([][]float64, nr)
	for i := range o {
		o[i] = nans(nc)
	}
	return o
}
