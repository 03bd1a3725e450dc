package postpro

import (
	"fmt"
	"strings"
	"time"

	"github.com/maseology/mmio"
	mmplt "github.com/maseology/mmPlot"
)

// WriteOutputCsv writes the main per-timestep results table.
func (r *Results) WriteOutputCsv(fp string) {
	hdr := []string{"date", "temperature", "precipitation", "pet", "flow_predicted", "saturation_deficit_avg"}
	series := [][]float64{r.Temp, r.Precip, r.PET, r.FlowPredicted, r.SDAvgs}
	if r.FlowObs != nil {
		hdr = append(hdr, "flow_observed")
		series = append(series, r.FlowObs)
	}
	// WriteCsvDateFloats prepends the "date" column itself.
	mmio.WriteCsvDateFloats(fp, strings.Join(hdr[1:], ","), r.T, series...)
}

// WriteMatrixCsvs writes the three per-bin output matrices, one file each.
func (r *Results) WriteMatrixCsvs(dirprfx string) {
	writeMatrixCsv(dirprfx+"saturation_deficit_locals.csv", r.T, r.SDLocals)
	writeMatrixCsv(dirprfx+"unsaturated_zone_storages.csv", r.T, r.UnsatStores)
	writeMatrixCsv(dirprfx+"root_zone_storages.csv", r.T, r.RootStores)
}

func writeMatrixCsv(fp string, t []time.Time, m [][]float64) {
	if len(m) == 0 {
		return
	}
	nbins := len(m[0])
	cols := make([][]float64, nbins)
	for j := 0; j < nbins; j++ {
		cols[j] = make([]float64, len(m))
		for i := range m {
			cols[j][i] = m[i][j]
		}
	}
	// WriteCsvDateFloats prepends the "date" column itself.
	mmio.WriteCsvDateFloats(fp, strings.TrimPrefix(binHeader(nbins), "date,"), t, cols...)
}

// Hydrograph plots observed against predicted flow.
func (r *Results) Hydrograph(fp string) {
	mmplt.ObsSim(fp, r.FlowObs, r.FlowPredicted)
}

func binHeader(nbins int) string {
	cols := make([]string, nbins+1)
	cols[0] = "date"
	for j := 0; j < nbins; j++ {
		cols[j+1] = fmt.Sprintf("bin%02d", j+1)
	}
	return strings.Join(cols, ",")
}
