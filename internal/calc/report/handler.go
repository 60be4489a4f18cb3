package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	line "Linea/internal/calc/line"

	"github.com/phpdave11/gofpdf"
)

type Input struct {
	Project string     `json:"project"`
	Author  string     `json:"author"`
	Title   string     `json:"title"`
	Notes   string     `json:"notes"`
	Line    line.Input `json:"line"`
}

type Handler struct{}

// Generate renders a one-page datasheet: the six R-L-C scalars plus the
// resolved GMR/GMD/D_eq terms, with per-section errors spelled out.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Title == "" {
		input.Title = "Transmission Line Parameters"
	}
	res := line.Calculate(input.Line)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, input.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", input.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", input.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(110, 7, "Parameter", "1", 0, "L", false, 0, "")
	pdf.CellFormat(70, 7, "Value", "1", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	for _, row := range res.Rows() {
		pdf.CellFormat(110, 7, asciiParameter(row.Parameter), "1", 0, "L", false, 0, "")
		pdf.CellFormat(70, 7, fmt.Sprintf("%.6e", row.Value), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	if res.Inductance != nil {
		pdf.Cell(0, 6, fmt.Sprintf("GMR = %.6f m, GMD = %.6f m", res.Inductance.GmrM, res.Inductance.GmdM))
		pdf.Ln(6)
	}
	if res.Capacitance != nil {
		pdf.Cell(0, 6, fmt.Sprintf("Effective spacing D_eq = %.6f m", res.Capacitance.DeqM))
		pdf.Ln(6)
	}
	for _, msg := range []string{res.ResistanceErr, res.InductanceErr, res.CapacitanceErr} {
		if msg != "" {
			pdf.Cell(0, 6, "Rejected: "+msg)
			pdf.Ln(6)
		}
	}
	if input.Notes != "" {
		pdf.Ln(4)
		pdf.MultiCell(0, 6, input.Notes, "", "L", false)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"report.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}

// asciiParameter keeps the core fonts happy: Helvetica has no glyph for Ω.
func asciiParameter(p string) string {
	switch p {
	case "Resistance (Ω/km)":
		return "Resistance (Ohm/km)"
	case "Resistance Total (Ω)":
		return "Resistance Total (Ohm)"
	}
	return p
}
