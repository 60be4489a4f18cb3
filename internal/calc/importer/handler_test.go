package importer

import (
	"testing"

	"Linea/internal/calc/geometry"
	"Linea/internal/calc/resistance"
)

func TestParseLineRow(t *testing.T) {
	row := []string{"Copper", "1.724e-8", "300", "20", "50", "10", "2", "10", "10"}
	in, err := parseLineRow(row)
	if err != nil {
		t.Fatalf("parseLineRow failed: %v", err)
	}
	if in.Material != resistance.Copper {
		t.Errorf("material = %q, want Copper", in.Material)
	}
	if in.Line.System != geometry.SinglePhase || in.Line.SpacingM != 2 {
		t.Errorf("line = %+v, want single-phase spacing 2", in.Line)
	}
	if in.GmrM != nil {
		t.Error("gmr should be absent without the optional column")
	}
	if in.AreaMM2 != 300 || in.RadiusMM != 10 || in.HeightM != 10 || in.LengthKM != 10 {
		t.Errorf("parsed values off: %+v", in)
	}
}

func TestParseLineRowOptionalGMR(t *testing.T) {
	row := []string{"Copper", "1.724e-8", "300", "20", "50", "10", "2", "10", "10", "0.0082"}
	in, err := parseLineRow(row)
	if err != nil {
		t.Fatalf("parseLineRow failed: %v", err)
	}
	if in.GmrM == nil || *in.GmrM != 0.0082 {
		t.Errorf("gmr = %v, want 0.0082", in.GmrM)
	}
}

func TestParseLineRowRejectsShortOrBadRows(t *testing.T) {
	if _, err := parseLineRow([]string{"Copper", "1.724e-8"}); err == nil {
		t.Error("expected error for short row")
	}
	if _, err := parseLineRow([]string{"Copper", "oops", "300", "20", "50", "10", "2", "10", "10"}); err == nil {
		t.Error("expected error for non-numeric cell")
	}
}
