package inductance

import (
	"math"

	"Linea/internal/calc/calcerr"
	"Linea/internal/calc/geometry"
)

const (
	mu0 = 4 * math.Pi * 1e-7 // permeability of free space, H/m

	// Self-GMR of a solid round conductor as a fraction of its radius.
	solidRoundGMR = 0.7788
)

// Input describes one conductor and layout. An absent GmrM means
// auto-derive 0.7788·r for a solid round conductor; a supplied value is
// used as-is.
type Input struct {
	RadiusMM float64       `json:"radius_mm"`
	GmrM     *float64      `json:"gmr_m,omitempty"`
	Line     geometry.Line `json:"line"`
	LengthKM float64       `json:"length_km"`
}

type Result struct {
	GmrM   float64 `json:"gmr_m"`
	GmdM   float64 `json:"gmd_m"`
	PerKmH float64 `json:"l_per_km_h"`
	TotalH float64 `json:"l_total_h"`
}

func Calculate(in Input) (Result, error) {
	if in.LengthKM <= 0 {
		return Result{}, calcerr.Errorf("line length must be positive")
	}

	var gmr float64
	if in.GmrM == nil {
		if in.RadiusMM <= 0 {
			return Result{}, calcerr.Errorf("conductor radius must be positive")
		}
		gmr = solidRoundGMR * in.RadiusMM / 1000.0
	} else {
		gmr = *in.GmrM
		if gmr <= 0 {
			return Result{}, calcerr.Errorf("conductor GMR must be positive")
		}
	}

	gmd, err := geometry.GMD(in.Line)
	if err != nil {
		return Result{}, err
	}
	if gmd <= gmr {
		return Result{}, calcerr.Errorf("phase spacing (GMD %g m) must exceed conductor GMR (%g m)", gmd, gmr)
	}

	perM := mu0 / (2 * math.Pi) * math.Log(gmd/gmr)
	return Result{
		GmrM:   gmr,
		GmdM:   gmd,
		PerKmH: perM * 1000.0,
		TotalH: perM * in.LengthKM * 1000.0,
	}, nil
}
