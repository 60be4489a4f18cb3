package line

import (
	"Linea/internal/calc/capacitance"
	"Linea/internal/calc/geometry"
	"Linea/internal/calc/inductance"
	"Linea/internal/calc/resistance"
)

// Input describes one line end to end, so a single request yields the
// full R-L-C summary. Every model still receives everything it needs as
// an explicit argument; nothing is shared between the three sections.
type Input struct {
	Material resistance.Material `json:"material"`
	Rho1     float64             `json:"rho1_ohm_m"`
	AreaMM2  float64             `json:"area_mm2"`
	Temp1C   float64             `json:"temp1_c"`
	Temp2C   float64             `json:"temp2_c"`
	RadiusMM float64             `json:"radius_mm"`
	GmrM     *float64            `json:"gmr_m,omitempty"`
	HeightM  float64             `json:"height_m,omitempty"`
	Line     geometry.Line       `json:"line"`
	LengthKM float64             `json:"length_km"`
}

// Result carries the three sections independently: a rejected input in
// one section never withholds the others.
type Result struct {
	Resistance     *resistance.Result  `json:"resistance,omitempty"`
	ResistanceErr  string              `json:"resistance_error,omitempty"`
	Inductance     *inductance.Result  `json:"inductance,omitempty"`
	InductanceErr  string              `json:"inductance_error,omitempty"`
	Capacitance    *capacitance.Result `json:"capacitance,omitempty"`
	CapacitanceErr string              `json:"capacitance_error,omitempty"`
}

func Calculate(in Input) Result {
	var out Result

	if r, err := resistance.Calculate(resistance.Input{
		Material: in.Material,
		Rho1:     in.Rho1,
		AreaMM2:  in.AreaMM2,
		Temp1C:   in.Temp1C,
		Temp2C:   in.Temp2C,
		LengthKM: in.LengthKM,
	}); err != nil {
		out.ResistanceErr = err.Error()
	} else {
		out.Resistance = &r
	}

	if l, err := inductance.Calculate(inductance.Input{
		RadiusMM: in.RadiusMM,
		GmrM:     in.GmrM,
		Line:     in.Line,
		LengthKM: in.LengthKM,
	}); err != nil {
		out.InductanceErr = err.Error()
	} else {
		out.Inductance = &l
	}

	if c, err := capacitance.Calculate(capacitance.Input{
		RadiusMM: in.RadiusMM,
		HeightM:  in.HeightM,
		Line:     in.Line,
		LengthKM: in.LengthKM,
	}); err != nil {
		out.CapacitanceErr = err.Error()
	} else {
		out.Capacitance = &c
	}

	return out
}
