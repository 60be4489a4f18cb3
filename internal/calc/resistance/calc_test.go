package resistance

import (
	"math"
	"testing"

	"Linea/internal/calc/calcerr"
)

func copperInput() Input {
	return Input{
		Material: Copper,
		Rho1:     1.724e-8,
		AreaMM2:  300,
		Temp1C:   20,
		Temp2C:   50,
		LengthKM: 10,
	}
}

func TestCalculateCopperScenario(t *testing.T) {
	res, err := Calculate(copperInput())
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}
	// rho2 = 1.724e-8 * (50+234.5)/(20+234.5)
	if math.Abs(res.Rho2-1.9272220039292733e-8) > 1e-12 {
		t.Errorf("rho2 = %v, want 1.92722e-8", res.Rho2)
	}
	if math.Abs(res.PerKmOhm-0.06424073346430911) > 1e-9 {
		t.Errorf("R/km = %v, want 0.0642407", res.PerKmOhm)
	}
	if res.TempConstC != 234.5 {
		t.Errorf("theta = %v, want 234.5", res.TempConstC)
	}
}

func TestCalculateTotalScalesWithLength(t *testing.T) {
	res, err := Calculate(copperInput())
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}
	if res.TotalOhm != res.PerKmOhm*10 {
		t.Errorf("total = %v, want per-km * length = %v", res.TotalOhm, res.PerKmOhm*10)
	}
}

func TestCalculateEqualTemperaturesKeepResistivity(t *testing.T) {
	in := copperInput()
	in.Temp2C = in.Temp1C
	res, err := Calculate(in)
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}
	if res.Rho2 != in.Rho1 {
		t.Errorf("rho2 = %v, want rho1 = %v", res.Rho2, in.Rho1)
	}
}

func TestCalculateTemperatureRaisesResistivity(t *testing.T) {
	in := copperInput()
	res, err := Calculate(in)
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}
	if res.Rho2 <= in.Rho1 {
		t.Errorf("rho2 = %v, want > rho1 = %v for T2 > T1", res.Rho2, in.Rho1)
	}

	hotter := in
	hotter.Temp2C = 80
	res2, err := Calculate(hotter)
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}
	if res2.Rho2 <= res.Rho2 {
		t.Errorf("rho2(80) = %v, want > rho2(50) = %v", res2.Rho2, res.Rho2)
	}
}

func TestCalculateAluminumConstant(t *testing.T) {
	in := copperInput()
	in.Material = Aluminum
	in.Rho1 = 2.82e-8
	res, err := Calculate(in)
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}
	if res.TempConstC != 228.1 {
		t.Errorf("theta = %v, want 228.1", res.TempConstC)
	}
}

func TestCalculateInvalidInputs(t *testing.T) {
	cases := map[string]func(*Input){
		"unknown material":    func(in *Input) { in.Material = "Steel" },
		"non-positive rho1":   func(in *Input) { in.Rho1 = 0 },
		"non-positive area":   func(in *Input) { in.AreaMM2 = -1 },
		"non-positive length": func(in *Input) { in.LengthKM = 0 },
		"cancelling T1":       func(in *Input) { in.Temp1C = -234.5 },
		"non-positive rho2":   func(in *Input) { in.Temp2C = -300 },
	}
	for name, mutate := range cases {
		in := copperInput()
		mutate(&in)
		_, err := Calculate(in)
		if err == nil {
			t.Errorf("%s: expected error", name)
			continue
		}
		if !calcerr.Is(err) {
			t.Errorf("%s: error kind = %T, want *calcerr.InvalidInput", name, err)
		}
	}
}
