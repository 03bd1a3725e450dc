package model

import "math"

// Run steps the water balance through the full moisture series, filling the
// output arrays. State is mutated in place; a second call returns
// ErrAlreadyRun.
func (t *Topmodel) Run() error {
	if t.ran {
		return ErrAlreadyRun
	}
	t.ran = true

	for i := 0; i < t.nt; i++ {
		t.step(i)
	}
	return nil
}

// step advances one timestep: downscale the average deficit over the TWI
// bins, balance each bin's stores, then aggregate base, overland and
// impervious flows into a routed stream discharge.
func (t *Topmodel) step(i int) {
	// split the moisture input: a deficit becomes evaporative demand, a
	// surplus becomes recharge; both [mm/timestep]
	evapDemand, recharge := 0., 0.
	if t.precipAvailable[i] < 0. {
		evapDemand = -t.precipAvailable[i]
	} else if t.precipAvailable[i] > 0. {
		recharge = t.precipAvailable[i]
	}

	flowOverland := 0.
	vertDrainageTotal := 0.

	for j := 0; j < t.nbins; j++ {
		// local deficit from the TWI offset; wetter-than-average bins
		// clamp to zero (water table at surface)
		sdLocal := t.sdAvg + t.par.ScalingParameter*(t.twiMean-t.twiVals[j])
		if sdLocal < 0. {
			sdLocal = 0.
		}

		excess := 0.

		// storage above what the local deficit can hold shifts to the
		// root zone; root-zone overflow becomes excess precipitation
		if t.unsat[j] > sdLocal {
			t.root[j] += t.unsat[j] - sdLocal
			t.unsat[j] = sdLocal
			if t.root[j] > t.rootZoneMax {
				excess = t.root[j] - t.rootZoneMax
				t.root[j] = t.rootZoneMax
			}
		}

		if recharge > 0. {
			// recharge beyond what both stores can absorb
			pe := recharge - (sdLocal - t.unsat[j]) - (t.rootZoneMax - t.root[j])
			if pe < 0. {
				pe = 0.
			}
			excess += pe

			if math.Abs(pe-recharge) > excessTol {
				// some recharge was absorbed: the macropore share
				// bypasses to the unsaturated zone, the rest tops up
				// the root zone
				absorbed := recharge - pe
				t.root[j] += (1. - t.par.MacroporeFraction) * absorbed
				t.unsat[j] += t.par.MacroporeFraction * absorbed

				if t.root[j] > t.rootZoneMax {
					t.unsat[j] += t.root[j] - t.rootZoneMax
					t.root[j] = t.rootZoneMax
				} else if t.unsat[j] > sdLocal {
					t.root[j] += t.unsat[j] - sdLocal
					t.unsat[j] = sdLocal
				}
			}
		}

		// vertical drainage toward the water table, Wolock (1993) eq. 23;
		// exits the unsaturated store into the deficit accounting, not
		// into streamflow
		if sdLocal > 0. {
			fd := t.vertDrainageInit * t.unsat[j] / sdLocal
			if fd > t.unsat[j] {
				fd = t.unsat[j]
			}
			t.unsat[j] -= fd
			vertDrainageTotal += fd * t.twiAreas[j]
		}

		// evaporative demand draws down the root zone
		if evapDemand > 0. {
			ev := evapDemand
			if ev > t.root[j] {
				ev = t.root[j]
			}
			t.root[j] -= ev
		}

		// saturation-excess runoff from this bin's saturated area
		if excess > 0. {
			flowOverland += excess * t.twiAreas[j]
		}

		t.unsatStores[i][j] = t.unsat[j]
		t.rootStores[i][j] = t.root[j]
		t.sdLocals[i][j] = sdLocal
	}

	// baseflow recession, Wolock (1993) eq. 30
	flowSubsurface := 0.
	if ratio := t.sdAvg / t.par.ScalingParameter; ratio <= expRatioMax {
		flowSubsurface = t.flowSubsurfaceMax * math.Exp(-ratio)
	}

	// drainage replenishes the deficit, baseflow depletes it
	t.sdAvg += flowSubsurface - vertDrainageTotal
	if t.sdAvg < 0. {
		t.sdAvg = 0.
	}

	// impervious surfaces route recharge directly, Wolock (1993) eq. 37
	flowImpervious := t.par.ImperviousAreaFraction * recharge

	flowTotal := flowSubsurface + flowOverland

	flowStream := flowTotal*(1.-t.par.ImperviousAreaFraction) + flowImpervious
	if flowStream < 0. {
		flowStream = 0.
	}
	flowStream /= t.travelTime

	t.flowPredicted[i] = flowStream
	t.sdAvgs[i] = t.sdAvg
}
