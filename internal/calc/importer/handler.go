package importer

import (
	"encoding/json"
	"fmt"
	"net/http"

	"Linea/internal/calc/geometry"
	line "Linea/internal/calc/line"
	"Linea/internal/calc/resistance"

	"github.com/xuri/excelize/v2"
)

type Handler struct{}

type LineImportResult struct {
	Count   int           `json:"count"`
	Results []line.Result `json:"results"`
}

// Lines imports single-phase line rows from an uploaded workbook and
// returns one summary per parseable row. Malformed rows are skipped, as
// student sheets are rarely clean.
func (h *Handler) Lines(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	var results []line.Result
	for i := 1; i < len(rows); i++ {
		input, err := parseLineRow(rows[i])
		if err != nil {
			continue
		}
		results = append(results, line.Calculate(input))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(LineImportResult{Count: len(results), Results: results})
}

func parseLineRow(row []string) (line.Input, error) {
	// expected: material, rho1, area_mm2, temp1_c, temp2_c, radius_mm,
	// spacing_m, height_m, length_km, gmr_m(optional)
	if len(row) < 9 {
		return line.Input{}, fmt.Errorf("bad row")
	}
	material := resistance.Material(row[0])
	vals := make([]float64, 8)
	for i := 0; i < 8; i++ {
		v, err := toFloat(row[i+1])
		if err != nil {
			return line.Input{}, err
		}
		vals[i] = v
	}
	input := line.Input{
		Material: material,
		Rho1:     vals[0],
		AreaMM2:  vals[1],
		Temp1C:   vals[2],
		Temp2C:   vals[3],
		RadiusMM: vals[4],
		HeightM:  vals[6],
		Line: geometry.Line{
			System:   geometry.SinglePhase,
			SpacingM: vals[5],
		},
		LengthKM: vals[7],
	}
	if len(row) > 9 && row[9] != "" {
		gmr, err := toFloat(row[9])
		if err == nil && gmr > 0 {
			input.GmrM = &gmr
		}
	}
	return input, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}
