package params

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var (
	ErrInvalidHeader           = errors.New("params: invalid header")
	ErrMissingParameter        = errors.New("params: missing parameter")
	ErrInvalidScalingParameter = errors.New("params: scaling parameter must be greater than 0")
	ErrInvalidLatitude         = errors.New("params: latitude must be within [0,90]")
	ErrInvalidSoilDepthTotal   = errors.New("params: total soil depth must be greater than 0")
	ErrInvalidSoilDepthAB      = errors.New("params: AB-horizon depth must be within (0, total soil depth)")
	ErrInvalidFieldCapacity    = errors.New("params: field capacity fraction must be within [0,1]")
	ErrInvalidMacropore        = errors.New("params: macropore fraction must be within [0,1]")
	ErrInvalidImperviousArea   = errors.New("params: impervious area fraction must be within [0,1]")
)

var validHeader = []string{"name", "value", "units", "description"}

// required names; optional names (soil_depth_roots, channel_velocity_avg)
// fall back to model defaults when absent.
var required = []string{
	"scaling_parameter",
	"saturated_hydraulic_conductivity",
	"macropore_fraction",
	"soil_depth_total",
	"soil_depth_ab_horizon",
	"field_capacity_fraction",
	"latitude",
	"basin_area_total",
	"impervious_area_fraction",
	"flow_initial",
	"snowmelt_temperature_cutoff",
	"snowmelt_rate_coeff",
	"snowmelt_rate_coeff_with_rain",
}

// Read loads and validates a parameters file.
func Read(fp string) (Set, error) {
	f, err := os.Open(fp)
	if err != nil {
		return Set{}, fmt.Errorf("params.Read: %w", err)
	}
	defer f.Close()
	s, err := ReadIn(f)
	if err != nil {
		return Set{}, fmt.Errorf("params.Read %s: %w", fp, err)
	}
	return s, nil
}

// ReadIn parses and validates a parameters file from a stream.
func ReadIn(r io.Reader) (Set, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(validHeader)
	recs, err := cr.ReadAll()
	if err != nil {
		return Set{}, err
	}
	if len(recs) == 0 {
		return Set{}, fmt.Errorf("%w: empty file", ErrInvalidHeader)
	}

	for i, h := range recs[0] {
		if strings.ToLower(strings.TrimSpace(h)) != validHeader[i] {
			return Set{}, fmt.Errorf("%w: found %v, expected %v", ErrInvalidHeader, recs[0], validHeader)
		}
	}

	byName := map[string]float64{}
	var s Set
	for i, rec := range recs[1:] {
		name := strings.ToLower(strings.TrimSpace(rec[0]))
		v, err := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if err != nil {
			return Set{}, fmt.Errorf("params: row %d (%s): %w", i+2, name, err)
		}
		byName[name] = v
		s.Entries = append(s.Entries, Entry{
			Name:        name,
			Value:       v,
			Units:       strings.ToLower(strings.TrimSpace(rec[2])),
			Description: strings.TrimSpace(rec[3]),
		})
	}

	for _, name := range required {
		if _, ok := byName[name]; !ok {
			return Set{}, fmt.Errorf("%w: %s", ErrMissingParameter, name)
		}
	}

	s.ScalingParameter = byName["scaling_parameter"]
	s.SaturatedHydraulicConductivity = byName["saturated_hydraulic_conductivity"]
	s.MacroporeFraction = byName["macropore_fraction"]
	s.SoilDepthTotal = byName["soil_depth_total"]
	s.SoilDepthABHorizon = byName["soil_depth_ab_horizon"]
	s.FieldCapacityFraction = byName["field_capacity_fraction"]
	s.Latitude = byName["latitude"]
	s.BasinAreaTotal = byName["basin_area_total"]
	s.ImperviousAreaFraction = byName["impervious_area_fraction"]
	s.FlowInitial = byName["flow_initial"]
	s.SnowmeltTemperatureCutoff = byName["snowmelt_temperature_cutoff"]
	s.SnowmeltRateCoeff = byName["snowmelt_rate_coeff"]
	s.SnowmeltRateCoeffWithRain = byName["snowmelt_rate_coeff_with_rain"]
	s.SoilDepthRoots = byName["soil_depth_roots"]         // 0 when absent
	s.ChannelVelocityAvg = byName["channel_velocity_avg"] // 0 when absent

	if err := s.check(); err != nil {
		return Set{}, err
	}
	return s, nil
}

// check applies the range validations; fails on the first violation.
func (s Set) check() error {
	if !(s.ScalingParameter > 0.) {
		return fmt.Errorf("%w: %v", ErrInvalidScalingParameter, s.ScalingParameter)
	}
	if s.Latitude < 0. || s.Latitude > 90. {
		return fmt.Errorf("%w: %v", ErrInvalidLatitude, s.Latitude)
	}
	if !(s.SoilDepthTotal > 0.) {
		return fmt.Errorf("%w: %v", ErrInvalidSoilDepthTotal, s.SoilDepthTotal)
	}
	if !(s.SoilDepthABHorizon > 0.) || !(s.SoilDepthABHorizon < s.SoilDepthTotal) {
		return fmt.Errorf("%w: %v (total %v)", ErrInvalidSoilDepthAB, s.SoilDepthABHorizon, s.SoilDepthTotal)
	}
	if s.FieldCapacityFraction < 0. || s.FieldCapacityFraction > 1. {
		return fmt.Errorf("%w: %v", ErrInvalidFieldCapacity, s.FieldCapacityFraction)
	}
	if s.MacroporeFraction < 0. || s.MacroporeFraction > 1. {
		return fmt.Errorf("%w: %v", ErrInvalidMacropore, s.MacroporeFraction)
	}
	if s.ImperviousAreaFraction < 0. || s.ImperviousAreaFraction > 1. {
		return fmt.Errorf("%w: %v", ErrInvalidImperviousArea, s.ImperviousAreaFraction)
	}
	return nil
}
