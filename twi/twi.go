// Package twi loads and describes a topographic-wetness-index distribution:
// an ordered set of wetness-index bins with the fraction of the catchment
// area saturated at each.
package twi

// Distribution is an ordered set of TWI bins. Proportions are fractional
// saturated areas and sum to 1.
type Distribution struct {
	Values      []float64 // ln(a/tanB) per bin
	Proportions []float64 // fractional saturated area per bin
}

// Mean returns the area-weighted mean wetness index.
func (d Distribution) Mean() float64 {
	sv, sp := 0., 0.
	for i, v := range d.Values {
		sv += v * d.Proportions[i]
		sp += d.Proportions[i]
	}
	return sv / sp
}
