// Package prep computes the model forcing preprocessors: potential
// evapotranspiration and snowmelt-adjusted precipitation. These are
// closed-form, stateless-per-timestep routines; the simulation engine only
// sees their combined available-moisture series.
package prep

import (
	"fmt"
	"math"
	"time"

	"github.com/maseology/goHydro/pet"
	"github.com/maseology/goHydro/solirrad"
)

const (
	deg2rad = math.Pi / 180.
	rad2deg = 180. / math.Pi

	// Hamon calibration coefficient (Lu et al., 2005)
	hamonCalibCoeff = 1.2

	// the Prescott-type equation (Novák, 2012, pg.232)
	prescottA = .27
	prescottB = .52
)

// PETHamon returns daily potential evapotranspiration [mm/day] by the Hamon
// equation from daily mean temperatures [°C] and the basin latitude [deg].
func PETHamon(dates []time.Time, tempC []float64, latitudeDeg float64) ([]float64, error) {
	if len(dates) != len(tempC) {
		return nil, fmt.Errorf("prep.PETHamon: %d dates but %d temperatures", len(dates), len(tempC))
	}

	ep := make([]float64, len(dates))
	for i, dt := range dates {
		t := tempC[i]

		doy := float64(dt.YearDay())
		declination := 23.45 * deg2rad * math.Sin(360.*((284.+doy)/365.)*deg2rad)

		sunsetHourAngle := math.Acos(-math.Tan(declination)*math.Tan(latitudeDeg*deg2rad)) * rad2deg

		// daytime length in multiples of 12 hours
		daytimeLength := math.Abs(sunsetHourAngle/15.*2.) / 12.

		saturatedVaporPressure := 6.108 * math.Exp(17.26939*t/(t+237.3)) // [mb]
		saturatedVaporDensity := 216.7 * saturatedVaporPressure / (t + 273.3)

		ep[i] = 0.1651 * daytimeLength * saturatedVaporDensity * hamonCalibCoeff
	}
	return ep, nil
}

// PETMakkink returns daily potential evapotranspiration [mm/day] by the
// Makkink radiation method, with global radiation estimated from clear-sky
// potential solar irradiation and a rain-day sunshine proxy.
func PETMakkink(dates []time.Time, tempC, precip []float64, latitudeDeg float64) ([]float64, error) {
	if len(dates) != len(tempC) {
		return nil, fmt.Errorf("prep.PETMakkink: %d dates but %d temperatures", len(dates), len(tempC))
	}

	si := solirrad.New(latitudeDeg, 0., 0.)
	ep := make([]float64, len(dates))
	for i, dt := range dates {
		nN := 1. // ratio of sunshine hours to total possible
		if precip[i] > .001 {
			nN = 0.
		}
		Kg := etRadToGlobal(si.PSIdaily(dt.YearDay()), nN)
		ep[i] = pet.Makkink(Kg, tempC[i], 101300., .61, -1.2e-4) * 1000. // [m/day] to [mm/day]
	}
	return ep, nil
}

func etRadToGlobal(Ke, nN float64) float64 {
	return Ke * (prescottA + prescottB*nN)
}
