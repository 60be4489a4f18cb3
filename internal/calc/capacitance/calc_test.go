package capacitance

import (
	"math"
	"testing"

	"Linea/internal/calc/calcerr"
	"Linea/internal/calc/geometry"
)

func singlePhase(spacing float64) geometry.Line {
	return geometry.Line{System: geometry.SinglePhase, SpacingM: spacing}
}

func flatThreePhase() geometry.Line {
	return geometry.Line{
		System: geometry.ThreePhase,
		Phases: [3]geometry.Point{{X: 0, Y: 10}, {X: 6, Y: 10}, {X: 12, Y: 10}},
	}
}

func TestCalculateSinglePhase(t *testing.T) {
	res, err := Calculate(Input{RadiusMM: 10, HeightM: 10, Line: singlePhase(2), LengthKM: 10})
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}
	if res.GmdM != 2 {
		t.Errorf("gmd = %v, want 2", res.GmdM)
	}
	// D_eq = sqrt(2^2 + 20^2)
	if math.Abs(res.DeqM-20.09975124224178) > 1e-9 {
		t.Errorf("deq = %v, want 20.0998", res.DeqM)
	}
	if math.Abs(res.PerKmF-7.3142542455772466e-9) > 1e-15 {
		t.Errorf("C/km = %v, want 7.3143e-9", res.PerKmF)
	}
	if math.Abs(res.TotalF-res.PerKmF*10) > 1e-20 {
		t.Errorf("total = %v, want per-km * length = %v", res.TotalF, res.PerKmF*10)
	}
	if res.ImageM != 0 {
		t.Errorf("image term = %v, want 0 for single-phase", res.ImageM)
	}
}

func TestCalculateThreePhaseImageMethod(t *testing.T) {
	res, err := Calculate(Input{RadiusMM: 10, Line: flatThreePhase(), LengthKM: 10})
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}
	// All phases at 10 m: image term is exactly 20 m.
	if math.Abs(res.ImageM-20) > 1e-9 {
		t.Errorf("image term = %v, want 20", res.ImageM)
	}
	want := math.Sqrt(res.GmdM * res.ImageM)
	if math.Abs(res.DeqM-want) > 1e-12 {
		t.Errorf("deq = %v, want sqrt(gmd*image) = %v", res.DeqM, want)
	}
	if math.Abs(res.PerKmF-7.819493609620865e-9) > 1e-15 {
		t.Errorf("C/km = %v, want 7.8195e-9", res.PerKmF)
	}
}

func TestCalculateDecreasesWithHeight(t *testing.T) {
	low, err := Calculate(Input{RadiusMM: 10, HeightM: 8, Line: singlePhase(2), LengthKM: 1})
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}
	high, err := Calculate(Input{RadiusMM: 10, HeightM: 12, Line: singlePhase(2), LengthKM: 1})
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}
	if high.PerKmF >= low.PerKmF {
		t.Errorf("C/km(12m) = %v, want < C/km(8m) = %v", high.PerKmF, low.PerKmF)
	}
}

func TestCalculateDivergesAsDeqApproachesRadius(t *testing.T) {
	// Shrinking D_eq toward the radius blows the capacitance up; the
	// model must reject the boundary itself rather than emit ±Inf.
	far, err := Calculate(Input{RadiusMM: 100, HeightM: 0.2, Line: singlePhase(1), LengthKM: 1})
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}
	near, err := Calculate(Input{RadiusMM: 100, HeightM: 0.06, Line: singlePhase(0.11), LengthKM: 1})
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}
	if near.PerKmF <= far.PerKmF {
		t.Errorf("C/km near boundary = %v, want > far value %v", near.PerKmF, far.PerKmF)
	}
	if math.IsInf(near.PerKmF, 0) || math.IsNaN(near.PerKmF) {
		t.Errorf("C/km = %v, want finite", near.PerKmF)
	}

	_, err = Calculate(Input{RadiusMM: 2000, HeightM: 0.5, Line: singlePhase(1), LengthKM: 1})
	if err == nil {
		t.Fatal("expected error for D_eq <= radius")
	}
	if !calcerr.Is(err) {
		t.Errorf("error kind = %T, want *calcerr.InvalidInput", err)
	}
}

func TestCalculateRejectsZeroHeight(t *testing.T) {
	_, err := Calculate(Input{RadiusMM: 10, HeightM: 0, Line: singlePhase(2), LengthKM: 10})
	if err == nil {
		t.Fatal("expected error for zero height")
	}
	if !calcerr.Is(err) {
		t.Errorf("error kind = %T, want *calcerr.InvalidInput", err)
	}

	sunk := flatThreePhase()
	sunk.Phases[1].Y = 0
	_, err = Calculate(Input{RadiusMM: 10, Line: sunk, LengthKM: 10})
	if err == nil {
		t.Fatal("expected error for grounded phase")
	}
	if !calcerr.Is(err) {
		t.Errorf("error kind = %T, want *calcerr.InvalidInput", err)
	}
}

func TestCalculateInvalidRadiusAndLength(t *testing.T) {
	if _, err := Calculate(Input{RadiusMM: 0, HeightM: 10, Line: singlePhase(2), LengthKM: 10}); err == nil {
		t.Error("expected error for zero radius")
	}
	if _, err := Calculate(Input{RadiusMM: 10, HeightM: 10, Line: singlePhase(2), LengthKM: -1}); err == nil {
		t.Error("expected error for negative length")
	}
}
