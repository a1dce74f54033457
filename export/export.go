// Package export writes black-body spectra to xlsx workbooks.
//
// A workbook carries a Summary sheet (temperature, spectral class,
// peak wavelength, total flux and per-band fractions) and a Spectrum
// sheet with the sampled Planck curve plus an embedded line chart.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/cwbudde/algo-blackbody/measure/flux"
	"github.com/cwbudde/algo-blackbody/radiation/planck"
	"github.com/cwbudde/algo-blackbody/radiation/star"
	"github.com/cwbudde/algo-blackbody/radiation/wien"
)

const (
	summarySheet  = "Summary"
	spectrumSheet = "Spectrum"
)

// summaryBands are the wavelength regions reported on the summary
// sheet.
var summaryBands = []struct {
	name    string
	lowerNM float64
	upperNM float64
}{
	{"UV", 10, 400},
	{"Visible", 400, 780},
	{"NIR", 780, 2500},
	{"MIR", 2500, 4000},
}

// sheetWriter batches cell writes, keeping the first error.
type sheetWriter struct {
	f   *excelize.File
	err error
}

func (w *sheetWriter) set(sheet, cell string, value any) {
	if w.err != nil {
		return
	}

	w.err = w.f.SetCellValue(sheet, cell, value)
}

func (w *sheetWriter) setAt(sheet string, col, row int, value any) {
	if w.err != nil {
		return
	}

	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		w.err = err
		return
	}

	w.err = w.f.SetCellValue(sheet, cell, value)
}

// Workbook builds an in-memory workbook for the given temperature.
func Workbook(tempK float64) (*excelize.File, error) {
	s, err := planck.Curve(tempK)
	if err != nil {
		return nil, fmt.Errorf("export: evaluating spectrum: %w", err)
	}

	peak, err := wien.PeakWavelength(tempK)
	if err != nil {
		return nil, fmt.Errorf("export: locating peak: %w", err)
	}

	total, err := flux.Total(tempK)
	if err != nil {
		return nil, fmt.Errorf("export: integrating flux: %w", err)
	}

	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, fmt.Errorf("export: renaming sheet: %w", err)
	}

	w := &sheetWriter{f: f}
	writeSummary(w, tempK, peak, total)

	if _, err := f.NewSheet(spectrumSheet); err != nil {
		return nil, fmt.Errorf("export: adding sheet: %w", err)
	}

	writeSpectrum(w, s)

	if w.err != nil {
		return nil, fmt.Errorf("export: writing cells: %w", w.err)
	}

	if err := addSpectrumChart(f, tempK, s.Len()); err != nil {
		return nil, fmt.Errorf("export: embedding chart: %w", err)
	}

	return f, nil
}

// Save writes the workbook for the given temperature to path.
func Save(path string, tempK float64) error {
	f, err := Workbook(tempK)
	if err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("export: saving workbook: %w", err)
	}

	return f.Close()
}

func writeSummary(w *sheetWriter, tempK, peakNM, total float64) {
	w.set(summarySheet, "A1", "Quantity")
	w.set(summarySheet, "B1", "Value")

	w.set(summarySheet, "A2", "Temperature (K)")
	w.set(summarySheet, "B2", tempK)
	w.set(summarySheet, "A3", "Spectral class")
	w.set(summarySheet, "B3", star.Classify(tempK).String())
	w.set(summarySheet, "A4", "Peak wavelength (nm)")
	w.set(summarySheet, "B4", peakNM)
	w.set(summarySheet, "A5", "Total flux (erg s^-1 cm^-2)")
	w.set(summarySheet, "B5", total)

	w.set(summarySheet, "A7", "Band")
	w.set(summarySheet, "B7", "Range (nm)")
	w.set(summarySheet, "C7", "Fraction (%)")

	for i, band := range summaryBands {
		row := 8 + i

		pct, err := flux.Fraction(tempK, band.lowerNM, band.upperNM)
		if err != nil {
			w.err = err
			return
		}

		w.setAt(summarySheet, 1, row, band.name)
		w.setAt(summarySheet, 2, row, fmt.Sprintf("%g-%g", band.lowerNM, band.upperNM))
		w.setAt(summarySheet, 3, row, pct)
	}
}

func writeSpectrum(w *sheetWriter, s planck.Spectrum) {
	w.set(spectrumSheet, "A1", "Wavelength (nm)")
	w.set(spectrumSheet, "B1", "Radiance (erg s^-1 cm^-2 nm^-1)")

	for i := 0; i < s.Len(); i++ {
		row := i + 2
		w.setAt(spectrumSheet, 1, row, s.Wavelengths[i])
		w.setAt(spectrumSheet, 2, row, s.Radiance[i])
	}
}

func addSpectrumChart(f *excelize.File, tempK float64, samples int) error {
	lastRow := samples + 1

	return f.AddChart(spectrumSheet, "D2", &excelize.Chart{
		Type: excelize.Line,
		Series: []excelize.ChartSeries{{
			Name:       fmt.Sprintf("T = %.0f K", tempK),
			Categories: fmt.Sprintf("%s!$A$2:$A$%d", spectrumSheet, lastRow),
			Values:     fmt.Sprintf("%s!$B$2:$B$%d", spectrumSheet, lastRow),
		}},
		Title: []excelize.RichTextRun{{Text: "Planck spectral distribution"}},
		XAxis: excelize.ChartAxis{
			Title: []excelize.RichTextRun{{Text: "Wavelength (nm)"}},
		},
		YAxis: excelize.ChartAxis{
			Title: []excelize.RichTextRun{{Text: "Radiance (erg s^-1 cm^-2 nm^-1)"}},
		},
		Legend: excelize.ChartLegend{Position: "top"},
	})
}
