package postpro

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"topmodel/params"
)

func sampleResults() *Results {
	t0 := time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)
	dts := make([]time.Time, 4)
	for i := range dts {
		dts[i] = t0.AddDate(0, 0, i)
	}
	return &Results{
		T:             dts,
		Precip:        []float64{0., 12., 3., 0.},
		Temp:          []float64{4., 6., 2., 1.},
		PET:           []float64{0.4, 0.5, 0.3, 0.3},
		FlowObs:       []float64{1., 2., 4., 3.},
		FlowPredicted: []float64{1., 2., 4., 3.},
		SDAvgs:        []float64{35., 34., 30., 31.},
		SDLocals:      [][]float64{{35., 30.}, {34., 29.}, {30., 25.}, {31., 26.}},
		UnsatStores:   [][]float64{{0., 1.}, {2., 3.}, {1., 0.}, {0., 0.}},
		RootStores:    [][]float64{{200., 200.}, {200., 198.}, {199., 200.}, {200., 200.}},
	}
}

func TestSummarize(t *testing.T) {
	ss := sampleResults().Summarize()
	if len(ss) != 3 {
		t.Fatalf("got %d summaries, expected 3", len(ss))
	}

	q := ss[0] // predicted flow: 1,2,4,3
	if q.Mean != 2.5 || q.Max != 4. || q.Min != 1. {
		t.Errorf("flow summary = %+v", q)
	}
	if q.Median < 2. || q.Median > 3. {
		t.Errorf("flow median = %v, expected within [2,3]", q.Median)
	}

	r := sampleResults()
	r.FlowObs = nil
	if ss := r.Summarize(); len(ss) != 2 {
		t.Errorf("got %d summaries without observed flow, expected 2", len(ss))
	}
}

func TestGoodnessOfFit_PerfectAgreement(t *testing.T) {
	fit := sampleResults().GoodnessOfFit()
	if math.Abs(fit.NSE-1.) > 1e-9 {
		t.Errorf("NSE = %v, expected 1 for identical series", fit.NSE)
	}
	if math.Abs(fit.KGE-1.) > 1e-9 {
		t.Errorf("KGE = %v, expected 1 for identical series", fit.KGE)
	}
	if math.Abs(fit.RMSE) > 1e-9 {
		t.Errorf("RMSE = %v, expected 0 for identical series", fit.RMSE)
	}
}

func TestWriteOutputCsv(t *testing.T) {
	r := sampleResults()
	fp := filepath.Join(t.TempDir(), "output.csv")
	r.WriteOutputCsv(fp)

	b, err := os.ReadFile(fp)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	if len(lines) != len(r.T)+1 {
		t.Fatalf("got %d lines, expected %d", len(lines), len(r.T)+1)
	}
	hdr := strings.TrimSpace(lines[0])
	if !strings.HasPrefix(hdr, "date,temperature,precipitation,pet,flow_predicted,saturation_deficit_avg") {
		t.Errorf("unexpected header %q", hdr)
	}
	if !strings.Contains(hdr, "flow_observed") {
		t.Errorf("header %q missing observed flow column", hdr)
	}
}

func TestWriteMatrixCsvs(t *testing.T) {
	r := sampleResults()
	dir := t.TempDir()
	r.WriteMatrixCsvs(dir + string(os.PathSeparator))

	for _, name := range []string{"saturation_deficit_locals.csv", "unsaturated_zone_storages.csv", "root_zone_storages.csv"} {
		b, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		lines := strings.Split(strings.TrimSpace(string(b)), "\n")
		if len(lines) != len(r.T)+1 {
			t.Errorf("%s: got %d lines, expected %d", name, len(lines), len(r.T)+1)
		}
		if hdr := strings.TrimSpace(lines[0]); !strings.HasPrefix(hdr, "date,bin01,bin02") {
			t.Errorf("%s: unexpected header %q", name, hdr)
		}
	}
}

func TestBinHeader(t *testing.T) {
	if got, want := binHeader(3), "date,bin01,bin02,bin03"; got != want {
		t.Errorf("got %q, expected %q", got, want)
	}
}

func TestWriteReport(t *testing.T) {
	r := sampleResults()
	entries := []params.Entry{
		{Name: "scaling_parameter", Value: 10, Units: "mm", Description: "recession shape"},
		{Name: "latitude", Value: 40.5, Units: "degrees", Description: ""},
	}
	fp := filepath.Join(t.TempDir(), "report.html")
	if err := r.WriteReport(fp, entries); err != nil {
		t.Fatal(err)
	}

	b, err := os.ReadFile(fp)
	if err != nil {
		t.Fatal(err)
	}
	html := string(b)
	for _, want := range []string{"scaling_parameter", "latitude", "flow_predicted (mm/day)", "Goodness of fit", "2019-01-01", "2019-01-04"} {
		if !strings.Contains(html, want) {
			t.Errorf("report missing %q", want)
		}
	}

	r.FlowObs = nil
	if err := r.WriteReport(fp, entries); err != nil {
		t.Fatal(err)
	}
	if b, _ = os.ReadFile(fp); strings.Contains(string(b), "Goodness of fit") {
		t.Error("fit section rendered without observed flow")
	}
}
