package prep

import (
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func days(start time.Time, n int) []time.Time {
	o := make([]time.Time, n)
	for i := range o {
		o[i] = start.AddDate(0, 0, i)
	}
	return o
}

func TestPETHamon(t *testing.T) {
	// solstice day at 40.5°N, 20°C: hand-worked through the Hamon equation
	dts := []time.Time{time.Date(2019, 6, 21, 0, 0, 0, 0, time.UTC)}
	ep, err := PETHamon(dts, []float64{20.}, 40.5)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(ep[0]-4.249) > 0.01 {
		t.Errorf("Hamon PET = %v mm/day, expected ≈4.249", ep[0])
	}
}

func TestPETHamon_Seasonality(t *testing.T) {
	// same temperature, mid-northern latitude: longer June days evaporate more
	jun := []time.Time{time.Date(2019, 6, 21, 0, 0, 0, 0, time.UTC)}
	dec := []time.Time{time.Date(2019, 12, 21, 0, 0, 0, 0, time.UTC)}
	epJun, err := PETHamon(jun, []float64{15.}, 40.5)
	if err != nil {
		t.Fatal(err)
	}
	epDec, err := PETHamon(dec, []float64{15.}, 40.5)
	if err != nil {
		t.Fatal(err)
	}
	if epJun[0] <= epDec[0] {
		t.Errorf("June PET %v not above December PET %v", epJun[0], epDec[0])
	}
}

func TestPETHamon_LengthMismatch(t *testing.T) {
	dts := days(time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC), 3)
	if _, err := PETHamon(dts, []float64{1., 2.}, 40.5); err == nil {
		t.Error("expected error on length mismatch")
	}
}

func TestPETMakkink(t *testing.T) {
	dts := days(time.Date(2019, 6, 1, 0, 0, 0, 0, time.UTC), 2)
	temp := []float64{20., 20.}
	precip := []float64{0., 10.} // dry day then rain day
	ep, err := PETMakkink(dts, temp, precip, 43.6)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range ep {
		if v <= 0. || math.IsNaN(v) {
			t.Errorf("day %d: PET = %v", i, v)
		}
	}
	// the rain-day sunshine proxy cuts global radiation, so PET drops
	if ep[1] >= ep[0] {
		t.Errorf("rain-day PET %v not below dry-day PET %v", ep[1], ep[0])
	}
}

func TestSnowmelt(t *testing.T) {
	// two cold snow days build a 2 in pack, a warm rain day melts by
	// rain-on-snow, a warm dry day melts by degree-day, then melt caps at
	// what is left of the pack
	precip := []float64{25.4, 25.4, 25.4, 0., 0., 0.}
	tempF := []float64{20., 20., 40., 40., 50., 50.}

	snowprecip, melts, packs := Snowmelt(precip, tempF, 32., 0.007, 0.06, 1.)

	// all in inches below, scaled back to mm:
	//   day 2: melt (0.074+0.007)(8)+0.05 = 0.698, pack 2-0.698
	//   day 3: melt 0.06·8 = 0.48, pack 0.822
	//   day 4: melt 0.06·18 = 1.08 capped at 0.822
	approx := cmpopts.EquateApprox(0, 1e-9)
	wantPrecip := []float64{0., 0., 1.698 * 25.4, 0.48 * 25.4, 0.822 * 25.4, 0.}
	wantPacks := []float64{25.4, 50.8, 1.302 * 25.4, 0.822 * 25.4, 0., 0.}
	if diff := cmp.Diff(wantPrecip, snowprecip, approx); diff != "" {
		t.Errorf("adjusted precipitation mismatch:\n%s", diff)
	}
	if diff := cmp.Diff(wantPacks, packs, approx); diff != "" {
		t.Errorf("snowpack mismatch:\n%s", diff)
	}
	if math.Abs(melts[2]-0.698*25.4) > 1e-9 {
		t.Errorf("rain-on-snow melt = %v mm, expected %v", melts[2], 0.698*25.4)
	}
	if melts[0] != 0. || melts[1] != 0. {
		t.Errorf("melt on sub-cutoff days: %v %v", melts[0], melts[1])
	}
}

func TestMeltEquations(t *testing.T) {
	if got := RainOnSnowHeavilyForested(1., 40., 32., 0.007); math.Abs(got-0.698) > 1e-12 {
		t.Errorf("heavily forested rain-on-snow = %v in/day, expected 0.698", got)
	}
	if got := RainOnSnowOpenToPartlyForested(1., 40., 10., 32., 0.007, 0.5); math.Abs(got-0.714) > 1e-12 {
		t.Errorf("open/partly forested rain-on-snow = %v in/day, expected 0.714", got)
	}
	if got := TemperatureIndex(40., 32., 0.06); math.Abs(got-0.48) > 1e-12 {
		t.Errorf("degree-day melt = %v in/day, expected 0.48", got)
	}
}

func TestCToF(t *testing.T) {
	got := CToF([]float64{-40., 0., 100.})
	want := []float64{-40., 32., 212.}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("conversion mismatch:\n%s", diff)
	}
}

func TestAvailableMoisture(t *testing.T) {
	got := AvailableMoisture([]float64{10., 0., 2.}, []float64{4., 4., 4.}, 0.5)
	want := []float64{8., -2., 0.}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("available moisture mismatch:\n%s", diff)
	}
}
