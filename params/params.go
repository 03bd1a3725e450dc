// Package params loads the scalar catchment-parameter set from a
// comma-delimited file with header name,value,units,description, and
// validates it before it reaches the simulation engine.
package params

// Entry is one row of the parameters file, kept verbatim for reporting.
type Entry struct {
	Name        string
	Value       float64
	Units       string
	Description string
}

// Set holds the named catchment parameters the model and preprocessing
// routines consume. Entries keeps every row read, including names not
// interpreted here.
type Set struct {
	ScalingParameter               float64 // m [mm]
	SaturatedHydraulicConductivity float64 // K0 [mm/day]
	MacroporeFraction              float64
	SoilDepthTotal                 float64 // [m]
	SoilDepthABHorizon             float64 // [m]
	FieldCapacityFraction          float64
	Latitude                       float64 // [deg]
	BasinAreaTotal                 float64 // [km²]
	ImperviousAreaFraction         float64
	FlowInitial                    float64 // [mm/day]

	SnowmeltTemperatureCutoff float64 // [°F]
	SnowmeltRateCoeff         float64 // [in/°F]
	SnowmeltRateCoeffWithRain float64 // [1/°F]

	// optional overrides
	SoilDepthRoots     float64 // [m] 0 = model default
	ChannelVelocityAvg float64 // [km/day] 0 = model default

	Entries []Entry
}
