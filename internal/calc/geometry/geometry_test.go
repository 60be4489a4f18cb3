package geometry

import (
	"math"
	"testing"

	"Linea/internal/calc/calcerr"
)

func TestPairwiseDistancesFlatLayout(t *testing.T) {
	dab, dbc, dca, err := PairwiseDistances(Point{0, 10}, Point{6, 10}, Point{12, 10})
	if err != nil {
		t.Fatalf("PairwiseDistances failed: %v", err)
	}
	if dab != 6 || dbc != 6 || dca != 12 {
		t.Errorf("distances = %v, %v, %v, want 6, 6, 12", dab, dbc, dca)
	}
}

func TestPairwiseDistancesCoincident(t *testing.T) {
	_, _, _, err := PairwiseDistances(Point{0, 10}, Point{0, 10}, Point{12, 10})
	if err == nil {
		t.Fatal("expected error for coincident conductors")
	}
	if !calcerr.Is(err) {
		t.Errorf("error kind = %T, want *calcerr.InvalidInput", err)
	}
}

func TestGMDSinglePhase(t *testing.T) {
	gmd, err := GMD(Line{System: SinglePhase, SpacingM: 2.0})
	if err != nil {
		t.Fatalf("GMD failed: %v", err)
	}
	if gmd != 2.0 {
		t.Errorf("gmd = %v, want 2.0", gmd)
	}

	if _, err := GMD(Line{System: SinglePhase, SpacingM: 0}); err == nil {
		t.Error("expected error for zero spacing")
	}
}

func TestGMDEquilateralCollapses(t *testing.T) {
	// An equilateral triangle of side d has GMD exactly d.
	d := 4.0
	h := d * math.Sqrt(3) / 2
	gmd, err := GMD(Line{System: ThreePhase, Phases: [3]Point{{0, 10}, {d, 10}, {d / 2, 10 + h}}})
	if err != nil {
		t.Fatalf("GMD failed: %v", err)
	}
	if math.Abs(gmd-d) > 1e-12 {
		t.Errorf("gmd = %v, want %v", gmd, d)
	}
}

func TestGMDBetweenMinAndMaxDistance(t *testing.T) {
	gmd, err := GMD(Line{System: ThreePhase, Phases: [3]Point{{0, 10}, {6, 10}, {12, 10}}})
	if err != nil {
		t.Fatalf("GMD failed: %v", err)
	}
	want := math.Cbrt(6 * 6 * 12)
	if math.Abs(gmd-want) > 1e-12 {
		t.Errorf("gmd = %v, want %v", gmd, want)
	}
	if gmd <= 6 || gmd >= 12 {
		t.Errorf("gmd = %v, want strictly between 6 and 12", gmd)
	}
}

func TestGMDUnknownSystem(t *testing.T) {
	if _, err := GMD(Line{System: "two-phase"}); err == nil {
		t.Error("expected error for unknown system")
	}
}
