package forcing

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidHeader   = errors.New("forcing: invalid header")
	ErrMissingDates    = errors.New("forcing: missing or unordered dates")
	ErrMissingValues   = errors.New("forcing: missing values")
	ErrInvalidTimestep = errors.New("forcing: timestep must be one day or less")
)

// recognized column labels, long form as found in the source files
var columnShortNames = map[string]string{
	"temperature (celsius)":   "temperature",
	"precipitation (mm/day)":  "precipitation",
	"pet (mm/day)":            "pet",
	"flow_observed (mm/day)":  "flow_observed",
}

var dateLayouts = []string{"2006-01-02", "2006-01-02 15:04:05", "2006-01-02 15:04"}

// Read loads a forcing timeseries from a comma-delimited file with a date
// column followed by labelled data columns. Temperature and precipitation
// are required; pet and flow_observed are optional.
func Read(fp string) (*Forcing, error) {
	f, err := os.Open(fp)
	if err != nil {
		return nil, fmt.Errorf("forcing.Read: %w", err)
	}
	defer f.Close()
	frc, err := ReadIn(f)
	if err != nil {
		return nil, fmt.Errorf("forcing.Read %s: %w", fp, err)
	}
	return frc, nil
}

// ReadIn parses a forcing timeseries from a stream.
func ReadIn(r io.Reader) (*Forcing, error) {
	cr := csv.NewReader(r)
	recs, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(recs) < 3 { // header plus at least two steps to fix the interval
		return nil, fmt.Errorf("%w: need at least two timesteps", ErrMissingValues)
	}

	// map data columns by their short name
	cols := map[string]int{}
	for i, h := range recs[0][1:] {
		h = strings.ToLower(strings.TrimSpace(h))
		short, ok := columnShortNames[h]
		if !ok {
			return nil, fmt.Errorf("%w: unrecognized column %q", ErrInvalidHeader, h)
		}
		cols[short] = i + 1
	}
	for _, req := range []string{"temperature", "precipitation"} {
		if _, ok := cols[req]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrInvalidHeader, req)
		}
	}

	nt := len(recs) - 1
	frc := &Forcing{
		T:      make([]time.Time, nt),
		Temp:   make([]float64, nt),
		Precip: make([]float64, nt),
	}
	if _, ok := cols["pet"]; ok {
		frc.PET = make([]float64, nt)
	}
	if _, ok := cols["flow_observed"]; ok {
		frc.FlowObs = make([]float64, nt)
	}

	for i, rec := range recs[1:] {
		dt, err := parseDate(rec[0])
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrMissingDates, i+2, err)
		}
		frc.T[i] = dt
		if frc.Temp[i], err = parseValue(rec[cols["temperature"]]); err != nil {
			return nil, fmt.Errorf("%w: row %d temperature: %v", ErrMissingValues, i+2, err)
		}
		if frc.Precip[i], err = parseValue(rec[cols["precipitation"]]); err != nil {
			return nil, fmt.Errorf("%w: row %d precipitation: %v", ErrMissingValues, i+2, err)
		}
		if frc.PET != nil {
			if frc.PET[i], err = parseValue(rec[cols["pet"]]); err != nil {
				return nil, fmt.Errorf("%w: row %d pet: %v", ErrMissingValues, i+2, err)
			}
		}
		if frc.FlowObs != nil {
			if frc.FlowObs[i], err = parseValue(rec[cols["flow_observed"]]); err != nil {
				return nil, fmt.Errorf("%w: row %d flow_observed: %v", ErrMissingValues, i+2, err)
			}
		}
	}

	frc.IntervalSec = frc.T[1].Sub(frc.T[0]).Seconds()
	if frc.IntervalSec <= 0. {
		return nil, fmt.Errorf("%w: dates not strictly increasing at %v", ErrMissingDates, frc.T[0])
	}
	if frc.IntervalSec > secPerDay {
		return nil, fmt.Errorf("%w: found %v", ErrInvalidTimestep, frc.T[1].Sub(frc.T[0]))
	}

	// gap-free check: every interval must match the first
	for i := 1; i < nt; i++ {
		if frc.T[i].Sub(frc.T[i-1]).Seconds() != frc.IntervalSec {
			return nil, fmt.Errorf("%w: gap at %v", ErrMissingDates, frc.T[i-1])
		}
	}
	return frc, nil
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if dt, err := time.Parse(layout, s); err == nil {
			return dt, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", s)
}

func parseValue(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0., errors.New("empty value")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0., err
	}
	if math.IsNaN(v) {
		return 0., errors.New("NaN value")
	}
	return v, nil
}
