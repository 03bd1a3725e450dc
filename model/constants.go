package model

const (
	// excessTol: differences between computed excess precipitation and
	// available recharge smaller than this are treated as equal.
	excessTol = 1e-20

	// expRatioMax: deficit/m ratios above this would underflow exp() in the
	// baseflow recession law; subsurface flow is taken as zero instead.
	expRatioMax = 100.

	// the AB horizon is taken to be two orders of magnitude more conductive
	// than the C horizon (Wolock, 1993, eq. 41); fixed model physics
	abHorizonConductivityFactor = 100.

	mTomm = 1000.

	defaultSoilDepthRoots  = 1.  // [m]
	defaultFlowInitial     = 1.  // [mm/day]
	defaultTimestepFrac    = 1.  // fraction of a day
	defaultChannelVelocity = 10. // [km/day]
)
