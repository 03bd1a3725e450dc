package twi

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// proportions must sum to 1 within this tolerance
const proportionTol = 1e-6

var (
	ErrInvalidHeader     = errors.New("twi: invalid header")
	ErrMissingValues     = errors.New("twi: missing values")
	ErrInvalidProportion = errors.New("twi: proportions do not sum to 1")
)

var validHeader = []string{"bin", "twi", "proportion", "cells"}

// Read loads a TWI distribution from a comma-delimited file with header
// bin,twi,proportion,cells.
func Read(fp string) (Distribution, error) {
	f, err := os.Open(fp)
	if err != nil {
		return Distribution{}, fmt.Errorf("twi.Read: %w", err)
	}
	defer f.Close()
	d, err := ReadIn(f)
	if err != nil {
		return Distribution{}, fmt.Errorf("twi.Read %s: %w", fp, err)
	}
	return d, nil
}

// ReadIn parses a TWI distribution from a stream; split from Read so tests
// can feed strings directly.
func ReadIn(r io.Reader) (Distribution, error) {
	cr := csv.NewReader(r)
	recs, err := cr.ReadAll()
	if err != nil {
		return Distribution{}, err
	}
	if len(recs) < 2 {
		return Distribution{}, ErrMissingValues
	}

	header := make([]string, len(recs[0]))
	for i, h := range recs[0] {
		header[i] = strings.ToLower(strings.TrimSpace(h))
	}
	if len(header) != len(validHeader) {
		return Distribution{}, fmt.Errorf("%w: found %v, expected %v", ErrInvalidHeader, header, validHeader)
	}
	for i, h := range header {
		if h != validHeader[i] {
			return Distribution{}, fmt.Errorf("%w: found %v, expected %v", ErrInvalidHeader, header, validHeader)
		}
	}

	n := len(recs) - 1
	d := Distribution{
		Values:      make([]float64, n),
		Proportions: make([]float64, n),
	}
	psum := 0.
	for i, rec := range recs[1:] {
		v, err := parseCell(rec[1])
		if err != nil {
			return Distribution{}, fmt.Errorf("%w: row %d twi: %v", ErrMissingValues, i+2, err)
		}
		p, err := parseCell(rec[2])
		if err != nil {
			return Distribution{}, fmt.Errorf("%w: row %d proportion: %v", ErrMissingValues, i+2, err)
		}
		if p < 0. {
			return Distribution{}, fmt.Errorf("%w: row %d proportion %v is negative", ErrInvalidProportion, i+2, p)
		}
		d.Values[i] = v
		d.Proportions[i] = p
		psum += p
	}

	if math.Abs(psum-1.) > proportionTol {
		return Distribution{}, fmt.Errorf("%w: sum = %v", ErrInvalidProportion, psum)
	}
	return d, nil
}

func parseCell(s string) (float64, error) {
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
