package resistance

import (
	"Linea/internal/calc/calcerr"
)

type Material string

const (
	Copper   Material = "Copper"
	Aluminum Material = "Aluminum"
)

// Inferred absolute temperature constants θ (°C) used in the linear
// resistivity correction ρ₂ = ρ₁·(T₂+θ)/(T₁+θ).
var tempConst = map[Material]float64{
	Copper:   234.5,
	Aluminum: 228.1,
}

type Input struct {
	Material Material `json:"material"`
	Rho1     float64  `json:"rho1_ohm_m"`
	AreaMM2  float64  `json:"area_mm2"`
	Temp1C   float64  `json:"temp1_c"`
	Temp2C   float64  `json:"temp2_c"`
	LengthKM float64  `json:"length_km"`
}

type Result struct {
	TempConstC float64 `json:"temp_const_c"`
	Rho2       float64 `json:"rho2_ohm_m"`
	PerKmOhm   float64 `json:"r_per_km_ohm"`
	TotalOhm   float64 `json:"r_total_ohm"`
}

func Calculate(in Input) (Result, error) {
	theta, ok := tempConst[in.Material]
	if !ok {
		return Result{}, calcerr.Errorf("unknown conductor material %q", in.Material)
	}
	if in.Rho1 <= 0 {
		return Result{}, calcerr.Errorf("initial resistivity must be positive")
	}
	if in.AreaMM2 <= 0 {
		return Result{}, calcerr.Errorf("cross-sectional area must be positive")
	}
	if in.LengthKM <= 0 {
		return Result{}, calcerr.Errorf("line length must be positive")
	}
	if in.Temp1C+theta == 0 {
		return Result{}, calcerr.Errorf("reference temperature cancels the material constant (T1 = %v °C)", in.Temp1C)
	}

	rho2 := in.Rho1 * (in.Temp2C + theta) / (in.Temp1C + theta)
	if rho2 <= 0 {
		return Result{}, calcerr.Errorf("temperatures yield a non-positive corrected resistivity")
	}
	areaM2 := in.AreaMM2 * 1e-6
	perKm := rho2 / areaM2 * 1000.0

	return Result{
		TempConstC: theta,
		Rho2:       rho2,
		PerKmOhm:   perKm,
		TotalOhm:   perKm * in.LengthKM,
	}, nil
}
