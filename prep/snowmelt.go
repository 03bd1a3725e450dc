package prep

// Snowpack accounting and melt equations from the U.S. Army Corps of
// Engineers, Engineering Manual 1110-2-1406 (Runoff from Snowmelt). The
// melt equations work in inches and degrees Fahrenheit.

const mmPerInch = 25.4

// Snowmelt routes precipitation through a simple snowpack. Temperatures at
// or above the cutoff [°F] melt the pack (rain-on-snow when raining,
// temperature-index otherwise); below it precipitation accumulates as snow
// and nothing infiltrates. Returns adjusted precipitation, melt and pack
// series, all [mm/day].
func Snowmelt(precip, tempF []float64, temperatureCutoff, rainMeltCoeff, meltRateCoeff, dtFrac float64) (snowprecip, melts, packs []float64) {
	nt := len(precip)
	snowprecip = make([]float64, nt)
	melts = make([]float64, nt)
	packs = make([]float64, nt)

	melt, pack := 0., 0.
	for i, tf := range tempF {
		p := precip[i] / mmPerInch

		if tf >= temperatureCutoff {
			if p > 0. {
				melt = RainOnSnowHeavilyForested(p, tf, temperatureCutoff, rainMeltCoeff) * dtFrac
			} else {
				melt = TemperatureIndex(tf, temperatureCutoff, meltRateCoeff) * dtFrac
			}
			if melt >= pack {
				melt = pack
			}
			pack -= melt
			p += melt
		} else {
			pack += p
			p = 0.
		}

		snowprecip[i] = p * mmPerInch
		melts[i] = melt * mmPerInch
		packs[i] = pack * mmPerInch
	}
	return
}

// RainOnSnowHeavilyForested returns melt [in/day] for rain-on-snow in
// heavily forested areas (mean canopy cover above 80%); EM 1110-2-1406
// eq. 5-20.
func RainOnSnowHeavilyForested(precipIn, tempF, temperatureCutoff, rainMeltCoeff float64) float64 {
	return (0.074+rainMeltCoeff*precipIn)*(tempF-temperatureCutoff) + 0.05
}

// RainOnSnowOpenToPartlyForested returns melt [in/day] for rain-on-snow in
// open to partly forested areas (canopy cover 10-80%), with a basin wind
// exposure term; EM 1110-2-1406 eq. 5-19.
func RainOnSnowOpenToPartlyForested(precipIn, tempF, windMPH, temperatureCutoff, rainMeltCoeff, basinWindCoeff float64) float64 {
	return (0.029+0.0084*basinWindCoeff*windMPH+rainMeltCoeff*precipIn)*(tempF-temperatureCutoff) + 0.09
}

// TemperatureIndex returns melt [in/day] by the degree-day method;
// EM 1110-2-1406 eq. 6-1.
func TemperatureIndex(tempF, temperatureCutoff, meltRateCoeff float64) float64 {
	return meltRateCoeff * (tempF - temperatureCutoff)
}

// CToF converts Celsius to Fahrenheit; the melt equations and the cutoff
// parameter are specified in Fahrenheit.
func CToF(tempC []float64) []float64 {
	o := make([]float64, len(tempC))
	for i, t := range tempC {
		o[i] = t*9./5. + 32.
	}
	return o
}
