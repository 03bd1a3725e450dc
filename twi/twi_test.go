package twi

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const sample = `bin,twi,proportion,cells
1,0.02,0.10,4
2,3.31,0.25,10
3,5.00,0.30,12
4,7.29,0.20,8
5,9.96,0.15,6
`

func TestReadIn(t *testing.T) {
	d, err := ReadIn(strings.NewReader(sample))
	if err != nil {
		t.Fatal(err)
	}

	want := Distribution{
		Values:      []float64{0.02, 3.31, 5.00, 7.29, 9.96},
		Proportions: []float64{0.10, 0.25, 0.30, 0.20, 0.15},
	}
	if diff := cmp.Diff(want, d); diff != "" {
		t.Errorf("distribution mismatch:\n%s", diff)
	}
}

func TestReadIn_HeaderCaseAndSpace(t *testing.T) {
	in := "Bin, TWI ,Proportion, Cells\n1,5.0,1.0,4\n"
	if _, err := ReadIn(strings.NewReader(in)); err != nil {
		t.Errorf("case-insensitive header rejected: %v", err)
	}
}

func TestReadIn_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"wrong header", "bin,wetness,proportion,cells\n1,5.0,1.0,4\n", ErrInvalidHeader},
		{"short header", "bin,twi,proportion\n1,5.0,1.0\n", ErrInvalidHeader},
		{"header only", "bin,twi,proportion,cells\n", ErrMissingValues},
		{"empty twi", "bin,twi,proportion,cells\n1,,1.0,4\n", ErrMissingValues},
		{"empty proportion", "bin,twi,proportion,cells\n1,5.0,,4\n", ErrMissingValues},
		{"non-numeric", "bin,twi,proportion,cells\n1,abc,1.0,4\n", ErrMissingValues},
		{"negative proportion", "bin,twi,proportion,cells\n1,5.0,-0.5,4\n2,6.0,1.5,4\n", ErrInvalidProportion},
		{"proportions not normalized", "bin,twi,proportion,cells\n1,5.0,0.4,4\n2,6.0,0.4,4\n", ErrInvalidProportion},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadIn(strings.NewReader(tt.in)); !errors.Is(err, tt.want) {
				t.Errorf("got %v, expected %v", err, tt.want)
			}
		})
	}
}

func TestMean(t *testing.T) {
	d := Distribution{
		Values:      []float64{2., 4., 8.},
		Proportions: []float64{0.5, 0.25, 0.25},
	}
	if got, want := d.Mean(), 4.; math.Abs(got-want) > 1e-12 {
		t.Errorf("mean = %v, expected %v", got, want)
	}
}
