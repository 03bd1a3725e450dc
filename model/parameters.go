package model

// Parameters holds the scalar catchment parameters, immutable for a run.
type Parameters struct {
	ScalingParameter               float64 // m [mm]
	SaturatedHydraulicConductivity float64 // K0 [mm/day]
	MacroporeFraction              float64 // [-]
	SoilDepthTotal                 float64 // [m]
	SoilDepthABHorizon             float64 // [m]
	FieldCapacityFraction          float64 // [-]
	Latitude                       float64 // [deg]
	BasinAreaTotal                 float64 // [km²]
	ImperviousAreaFraction         float64 // [-]

	SoilDepthRoots        float64 // [m] default 1
	FlowInitial           float64 // [mm/day] default 1
	TimestepDailyFraction float64 // default 1
	ChannelVelocityAvg    float64 // [km/day] default 10·Δt
}

// applyDefaults fills unset optional parameters.
func (p *Parameters) applyDefaults() {
	if p.SoilDepthRoots == 0 {
		p.SoilDepthRoots = defaultSoilDepthRoots
	}
	if p.FlowInitial == 0 {
		p.FlowInitial = defaultFlowInitial
	}
	if p.TimestepDailyFraction == 0 {
		p.TimestepDailyFraction = defaultTimestepFrac
	}
	if p.ChannelVelocityAvg == 0 {
		p.ChannelVelocityAvg = defaultChannelVelocity * p.TimestepDailyFraction
	}
}
