package line

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// Row is one scalar of the six-value summary table.
type Row struct {
	Parameter string
	Value     float64
}

// Rows lists the computed scalars in the fixed summary order. Sections
// that failed validation are left out rather than padded with zeros.
func (r Result) Rows() []Row {
	var rows []Row
	if r.Resistance != nil {
		rows = append(rows,
			Row{"Resistance (Ω/km)", r.Resistance.PerKmOhm},
			Row{"Resistance Total (Ω)", r.Resistance.TotalOhm},
		)
	}
	if r.Inductance != nil {
		rows = append(rows,
			Row{"Inductance (H/km)", r.Inductance.PerKmH},
			Row{"Inductance Total (H)", r.Inductance.TotalH},
		)
	}
	if r.Capacitance != nil {
		rows = append(rows,
			Row{"Capacitance (F/km)", r.Capacitance.PerKmF},
			Row{"Capacitance Total (F)", r.Capacitance.TotalF},
		)
	}
	return rows
}

// WriteCSV writes the summary as "Parameter,Value" plus one row per scalar.
func WriteCSV(w io.Writer, res Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Parameter", "Value"}); err != nil {
		return err
	}
	for _, row := range res.Rows() {
		if err := cw.Write([]string{row.Parameter, strconv.FormatFloat(row.Value, 'g', -1, 64)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Workbook builds an XLSX summary with the same table as WriteCSV.
func Workbook(res Result) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	if err := f.SetCellValue(sheet, "A1", "Parameter"); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(sheet, "B1", "Value"); err != nil {
		return nil, err
	}
	for i, row := range res.Rows() {
		cellA, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		cellB, err := excelize.CoordinatesToCellName(2, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cellA, row.Parameter); err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cellB, row.Value); err != nil {
			return nil, err
		}
	}
	return f, nil
}
