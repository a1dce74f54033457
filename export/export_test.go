package export

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/cwbudde/algo-blackbody/radiation/planck"
)

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sun.xlsx")

	if err := Save(path, 5778); err != nil {
		t.Fatalf("Save: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopening workbook: %v", err)
	}

	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 2 {
		t.Fatalf("sheet count = %d, want 2 (%v)", len(sheets), sheets)
	}

	class, err := f.GetCellValue(summarySheet, "B3")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}

	if class != "G" {
		t.Fatalf("spectral class cell = %q, want G", class)
	}

	first, err := f.GetCellValue(spectrumSheet, "A2")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}

	if first != "1" {
		t.Fatalf("first wavelength cell = %q, want 1", first)
	}

	rows, err := f.GetRows(spectrumSheet)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}

	if len(rows) != planck.DefaultGridPoints+1 {
		t.Fatalf("spectrum rows = %d, want %d", len(rows), planck.DefaultGridPoints+1)
	}
}

func TestWorkbookInvalidTemperature(t *testing.T) {
	if _, err := Workbook(-100); !errors.Is(err, planck.ErrInvalidTemperature) {
		t.Fatalf("got %v, want ErrInvalidTemperature", err)
	}
}
