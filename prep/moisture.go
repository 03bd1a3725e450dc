package prep

// AvailableMoisture returns the engine's forcing series: (snow-adjusted)
// precipitation less potential evapotranspiration, [mm/timestep]. PET is
// supplied as a daily rate and scaled by the timestep fraction.
func AvailableMoisture(precip, petDaily []float64, dtFrac float64) []float64 {
	o := make([]float64, len(precip))
	for i := range o {
		o[i] = precip[i] - petDaily[i]*dtFrac
	}
	return o
}
