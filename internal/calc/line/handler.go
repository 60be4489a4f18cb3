package line

import (
	"encoding/json"
	"net/http"
)

type Handler struct{}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res := Calculate(input)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func (h *Handler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res := Calculate(input)
	if len(res.Rows()) == 0 {
		http.Error(w, firstError(res), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=\"RLC_Summary.csv\"")
	if err := WriteCSV(w, res); err != nil {
		http.Error(w, "Export error", http.StatusInternalServerError)
		return
	}
}

func (h *Handler) ExportXLSX(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res := Calculate(input)
	if len(res.Rows()) == 0 {
		http.Error(w, firstError(res), http.StatusBadRequest)
		return
	}
	f, err := Workbook(res)
	if err != nil {
		http.Error(w, "Export error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\"RLC_Summary.xlsx\"")
	if err := f.Write(w); err != nil {
		http.Error(w, "Export error", http.StatusInternalServerError)
		return
	}
}

func firstError(res Result) string {
	for _, msg := range []string{res.ResistanceErr, res.InductanceErr, res.CapacitanceErr} {
		if msg != "" {
			return msg
		}
	}
	return "nothing to export"
}
