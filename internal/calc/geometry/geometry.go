package geometry

import (
	"math"

	"Linea/internal/calc/calcerr"
)

type System string

const (
	SinglePhase System = "single-phase"
	ThreePhase  System = "three-phase"
)

// Point is a conductor position in meters; Y is the height above ground.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Line describes the conductor layout. SpacingM applies to single-phase
// lines, Phases to transposed three-phase lines.
type Line struct {
	System   System   `json:"system"`
	SpacingM float64  `json:"spacing_m,omitempty"`
	Phases   [3]Point `json:"phases,omitempty"`
}

func Distance(p, q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// PairwiseDistances returns Dab, Dbc, Dca for the three phase positions.
// Coincident conductors are rejected: every later formula takes log of a
// ratio over these distances.
func PairwiseDistances(a, b, c Point) (dab, dbc, dca float64, err error) {
	dab = Distance(a, b)
	dbc = Distance(b, c)
	dca = Distance(c, a)
	if dab == 0 || dbc == 0 || dca == 0 {
		return 0, 0, 0, calcerr.Errorf("phase conductors must not coincide")
	}
	return dab, dbc, dca, nil
}

// GMD resolves the geometric mean distance of the line. For a single-phase
// line it is the spacing itself; for a transposed three-phase line it is the
// cube root of the product of the pairwise spacings.
func GMD(line Line) (float64, error) {
	switch line.System {
	case SinglePhase:
		if line.SpacingM <= 0 {
			return 0, calcerr.Errorf("conductor spacing must be positive")
		}
		return line.SpacingM, nil
	case ThreePhase:
		dab, dbc, dca, err := PairwiseDistances(line.Phases[0], line.Phases[1], line.Phases[2])
		if err != nil {
			return 0, err
		}
		return math.Cbrt(dab * dbc * dca), nil
	default:
		return 0, calcerr.Errorf("unknown line system %q", line.System)
	}
}
