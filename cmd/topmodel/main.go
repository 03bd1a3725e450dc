// Command topmodel runs a TOPMODEL rainfall-runoff simulation specified by
// a YAML configuration file naming the parameters, forcing-timeseries and
// TWI-distribution inputs.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/maseology/mmio"

	"topmodel/config"
	"topmodel/forcing"
	"topmodel/model"
	"topmodel/params"
	"topmodel/postpro"
	"topmodel/prep"
	"topmodel/twi"
)

func main() {
	var cfgFp string
	var verbose, show bool
	flag.StringVar(&cfgFp, "c", "config.yml", "model configuration file")
	flag.BoolVar(&verbose, "v", false, "print model run details")
	flag.BoolVar(&show, "s", false, "write output plots")
	flag.Parse()

	if err := run(cfgFp, verbose, show); err != nil {
		log.Fatalln(err)
	}
}

func run(cfgFp string, verbose, show bool) error {
	tt := mmio.NewTimer()

	cfg, err := config.Load(cfgFp)
	if err != nil {
		return err
	}

	par, err := params.Read(cfg.Inputs.ParametersFile)
	if err != nil {
		return err
	}
	dist, err := twi.Read(cfg.Inputs.TwiFile)
	if err != nil {
		return err
	}
	frc, err := loadForcing(cfg.Inputs.TimeseriesFile)
	if err != nil {
		return err
	}
	if verbose {
		tt.Lap("inputs loaded")
		fmt.Printf(" basin area: %.2f km²  %d timesteps  %d twi bins\n",
			par.BasinAreaTotal, len(frc.T), len(dist.Values))
	}

	dtFrac := frc.TimestepDailyFraction()

	// potential evapotranspiration [mm/day]
	petDaily := frc.PET
	if petDaily == nil {
		switch cfg.Options.PET {
		case "makkink":
			petDaily, err = prep.PETMakkink(frc.T, frc.Temp, frc.Precip, par.Latitude)
		default:
			petDaily, err = prep.PETHamon(frc.T, frc.Temp, par.Latitude)
		}
		if err != nil {
			return err
		}
	}

	// snowmelt-adjusted precipitation
	precip := frc.Precip
	if cfg.Options.Snowmelt {
		precip, _, _ = prep.Snowmelt(frc.Precip, prep.CToF(frc.Temp),
			par.SnowmeltTemperatureCutoff, par.SnowmeltRateCoeffWithRain,
			par.SnowmeltRateCoeff, dtFrac)
	}

	moisture := prep.AvailableMoisture(precip, petDaily, dtFrac)

	t, err := model.New(model.Parameters{
		ScalingParameter:               par.ScalingParameter,
		SaturatedHydraulicConductivity: par.SaturatedHydraulicConductivity,
		MacroporeFraction:              par.MacroporeFraction,
		SoilDepthTotal:                 par.SoilDepthTotal,
		SoilDepthABHorizon:             par.SoilDepthABHorizon,
		FieldCapacityFraction:          par.FieldCapacityFraction,
		Latitude:                       par.Latitude,
		BasinAreaTotal:                 par.BasinAreaTotal,
		ImperviousAreaFraction:         par.ImperviousAreaFraction,
		SoilDepthRoots:                 par.SoilDepthRoots,
		FlowInitial:                    par.FlowInitial,
		TimestepDailyFraction:          dtFrac,
		ChannelVelocityAvg:             par.ChannelVelocityAvg,
	}, dist.Values, dist.Proportions, dist.Mean(), moisture)
	if err != nil {
		return err
	}

	if verbose {
		tt.Lap("model built")
		fmt.Printf("\n running model..\n\n")
	}
	if err := t.Run(); err != nil {
		return err
	}
	if verbose {
		tt.Lap("model run complete")
	}

	res := postpro.Results{
		T:             frc.T,
		Precip:        precip,
		Temp:          frc.Temp,
		PET:           petDaily,
		FlowObs:       frc.FlowObs,
		FlowPredicted: t.FlowPredicted(),
		SDAvgs:        t.SaturationDeficitAvgs(),
		SDLocals:      t.SaturationDeficitLocals(),
		UnsatStores:   t.UnsaturatedZoneStorages(),
		RootStores:    t.RootZoneStorages(),
	}

	outdir := cfg.Outputs.OutputDir + "/"
	mmio.MakeDir(cfg.Outputs.OutputDir)
	res.WriteOutputCsv(outdir + "output.csv")
	res.WriteMatrixCsvs(outdir)
	if show && cfg.Options.Plots && res.FlowObs != nil {
		res.Hydrograph(outdir + "hyd.png")
	}
	if cfg.Options.Report {
		if err := res.WriteReport(outdir+"report.html", par.Entries); err != nil {
			return err
		}
	}

	if verbose {
		if res.FlowObs != nil {
			gof := res.GoodnessOfFit()
			fmt.Printf("  KGE: %.3f  NSE: %.3f  RMSE: %.3f  Bias: %.3f\n",
				gof.KGE, gof.NSE, gof.RMSE, gof.Bias)
		}
		tt.Lap("results written")
	}
	return nil
}

// loadForcing reads the timeseries, preferring a previously saved gob.
func loadForcing(fp string) (*forcing.Forcing, error) {
	gobFp := fp + ".gob"
	if _, ok := mmio.FileExists(gobFp); ok {
		return forcing.LoadGob(gobFp)
	}
	frc, err := forcing.Read(fp)
	if err != nil {
		return nil, err
	}
	if err := frc.SaveGob(gobFp); err != nil {
		return nil, err
	}
	return frc, nil
}
