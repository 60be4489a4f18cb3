package capacitance

import (
	"math"

	"Linea/internal/calc/calcerr"
	"Linea/internal/calc/geometry"
)

const epsilon0 = 8.854e-12 // permittivity of free space, F/m

// Input describes one conductor and layout. HeightM is the average
// conductor height above ground for a single-phase line; three-phase
// lines take each phase height from the Y coordinate of its position.
type Input struct {
	RadiusMM float64       `json:"radius_mm"`
	HeightM  float64       `json:"height_m,omitempty"`
	Line     geometry.Line `json:"line"`
	LengthKM float64       `json:"length_km"`
}

type Result struct {
	GmdM float64 `json:"gmd_m"`
	// ImageM is the geometric mean of the conductor-to-own-image
	// distances; three-phase only.
	ImageM float64 `json:"image_m,omitempty"`
	DeqM   float64 `json:"deq_m"`
	PerKmF float64 `json:"c_per_km_f"`
	TotalF float64 `json:"c_total_f"`
}

// Calculate applies the method of images: every conductor is mirrored at
// equal depth below the ground plane and the effective spacing D_eq folds
// the image terms into a single logarithm argument.
func Calculate(in Input) (Result, error) {
	if in.RadiusMM <= 0 {
		return Result{}, calcerr.Errorf("conductor radius must be positive")
	}
	if in.LengthKM <= 0 {
		return Result{}, calcerr.Errorf("line length must be positive")
	}
	radiusM := in.RadiusMM / 1000.0

	var res Result
	switch in.Line.System {
	case geometry.SinglePhase:
		if in.HeightM <= 0 {
			return Result{}, calcerr.Errorf("conductor height above ground must be positive")
		}
		gmd, err := geometry.GMD(in.Line)
		if err != nil {
			return Result{}, err
		}
		res.GmdM = gmd
		res.DeqM = math.Sqrt(gmd*gmd + (2*in.HeightM)*(2*in.HeightM))
	case geometry.ThreePhase:
		for _, p := range in.Line.Phases {
			if p.Y <= 0 {
				return Result{}, calcerr.Errorf("every phase height above ground must be positive")
			}
		}
		gmd, err := geometry.GMD(in.Line)
		if err != nil {
			return Result{}, err
		}
		image := math.Cbrt(2 * in.Line.Phases[0].Y * 2 * in.Line.Phases[1].Y * 2 * in.Line.Phases[2].Y)
		res.GmdM = gmd
		res.ImageM = image
		res.DeqM = math.Sqrt(gmd * image)
	default:
		return Result{}, calcerr.Errorf("unknown line system %q", in.Line.System)
	}

	if res.DeqM <= radiusM {
		return Result{}, calcerr.Errorf("effective spacing (%g m) must exceed conductor radius", res.DeqM)
	}

	perM := 2 * math.Pi * epsilon0 / math.Log(res.DeqM/radiusM)
	res.PerKmF = perM * 1000.0
	res.TotalF = perM * in.LengthKM * 1000.0
	return res, nil
}
