package render

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/cwbudde/algo-blackbody/measure/flux"
	"github.com/cwbudde/algo-blackbody/radiation/planck"
	"github.com/cwbudde/algo-blackbody/radiation/star"
	"github.com/cwbudde/algo-blackbody/radiation/wien"
)

// Canvas size of the produced figures.
const (
	canvasWidth  = 12 * vg.Inch
	canvasHeight = 8 * vg.Inch
)

var curveColor = color.RGBA{G: 0x5F, B: 0x99, A: 0xFF}

// spectralBand is a shaded wavelength region with a text label.
type spectralBand struct {
	name    string
	lowerNM float64
	upperNM float64
	fill    color.NRGBA
}

var spectralBands = []spectralBand{
	{"UV", 10, 400, color.NRGBA{R: 0x80, B: 0x80, A: 0x21}},
	{"Visible", 400, 780, color.NRGBA{G: 0x80, A: 0x21}},
	{"NIR", 780, 2500, color.NRGBA{R: 0xFF, A: 0x21}},
	{"MIR", 2500, 4000, color.NRGBA{R: 0xFF, A: 0x33}},
}

// ByTemperature plots the Planck curve for the given temperature with
// a dashed guide line at the Wien peak. The legend carries the
// temperature, peak wavelength, total flux and spectral class.
func ByTemperature(tempK float64) (*plot.Plot, error) {
	s, err := planck.Curve(tempK)
	if err != nil {
		return nil, fmt.Errorf("render: evaluating spectrum: %w", err)
	}

	peak, err := wien.PeakWavelength(tempK)
	if err != nil {
		return nil, fmt.Errorf("render: locating peak: %w", err)
	}

	total, err := flux.Total(tempK)
	if err != nil {
		return nil, fmt.Errorf("render: integrating flux: %w", err)
	}

	p, err := spectrumPlot(s, tempK)
	if err != nil {
		return nil, err
	}

	_, peakRad := s.Peak()

	guide, err := verticalGuide(peak, peakRad*1.05, true)
	if err != nil {
		return nil, fmt.Errorf("render: peak guide: %w", err)
	}

	guide.LineStyle.Color = curveColor
	p.Add(guide)
	p.Legend.Add(fmt.Sprintf("Peak wavelength: %.3e nm", peak), guide)

	if err := legendNote(p, fmt.Sprintf("Flux: %.4e erg s⁻¹ cm⁻²", total)); err != nil {
		return nil, err
	}

	if err := legendNote(p, fmt.Sprintf("Spectral class: %s", star.Classify(tempK))); err != nil {
		return nil, err
	}

	return p, nil
}

// EnergyInRange plots the Planck curve with the [lowerNM, upperNM]
// band bracketed by dashed guides, the characteristic UV/visible/NIR/
// MIR regions shaded, and the in-band energy fraction in the legend.
func EnergyInRange(tempK, lowerNM, upperNM float64) (*plot.Plot, error) {
	pct, err := flux.Fraction(tempK, lowerNM, upperNM)
	if err != nil {
		return nil, fmt.Errorf("render: band fraction: %w", err)
	}

	s, err := planck.Curve(tempK)
	if err != nil {
		return nil, fmt.Errorf("render: evaluating spectrum: %w", err)
	}

	p, err := spectrumPlot(s, tempK)
	if err != nil {
		return nil, err
	}

	_, peakRad := s.Peak()
	top := peakRad * 1.05

	for _, band := range spectralBands {
		shade, err := bandPolygon(band, top)
		if err != nil {
			return nil, fmt.Errorf("render: shading %s band: %w", band.name, err)
		}

		p.Add(shade)
	}

	labels, err := bandLabels(peakRad * 0.92)
	if err != nil {
		return nil, fmt.Errorf("render: band labels: %w", err)
	}

	p.Add(labels)

	for _, bound := range []float64{lowerNM, upperNM} {
		guide, err := verticalGuide(bound, top, true)
		if err != nil {
			return nil, fmt.Errorf("render: range guide: %w", err)
		}

		guide.LineStyle.Color = color.Gray{Y: 0x80}
		p.Add(guide)
	}

	if err := legendNote(p, fmt.Sprintf("Fraction of energy: %.4f %%", pct)); err != nil {
		return nil, err
	}

	if err := legendNote(p, fmt.Sprintf("Spectral class: %s", star.Classify(tempK))); err != nil {
		return nil, err
	}

	return p, nil
}

// Save writes the figure to path; the format follows the extension.
func Save(p *plot.Plot, path string) error {
	if err := p.Save(canvasWidth, canvasHeight, path); err != nil {
		return fmt.Errorf("render: saving figure: %w", err)
	}

	return nil
}

// spectrumPlot builds the shared base figure: labeled axes, grid and
// the Planck curve with its temperature legend entry.
func spectrumPlot(s planck.Spectrum, tempK float64) (*plot.Plot, error) {
	p := plot.New()
	p.X.Label.Text = "Wavelength (nm)"
	p.Y.Label.Text = "Spectral flux (erg s⁻¹ cm⁻² nm⁻¹)"
	p.Add(plotter.NewGrid())

	curve, err := plotter.NewLine(spectrumXYs(s))
	if err != nil {
		return nil, fmt.Errorf("render: spectrum line: %w", err)
	}

	curve.LineStyle.Color = curveColor
	curve.LineStyle.Width = vg.Points(1.5)

	p.Add(curve)
	p.Legend.Add(fmt.Sprintf("Temperature: %.0f K", tempK), curve)
	p.Legend.Top = true

	return p, nil
}

func spectrumXYs(s planck.Spectrum) plotter.XYs {
	xys := make(plotter.XYs, s.Len())
	for i := range xys {
		xys[i].X = s.Wavelengths[i]
		xys[i].Y = s.Radiance[i]
	}

	return xys
}

// verticalGuide returns a vertical line from y=0 to y=top at x.
func verticalGuide(x, top float64, dashed bool) (*plotter.Line, error) {
	guide, err := plotter.NewLine(plotter.XYs{{X: x, Y: 0}, {X: x, Y: top}})
	if err != nil {
		return nil, err
	}

	if dashed {
		guide.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}
	}

	return guide, nil
}

// bandPolygon returns the shaded rectangle for a spectral band.
func bandPolygon(band spectralBand, top float64) (*plotter.Polygon, error) {
	shade, err := plotter.NewPolygon(plotter.XYs{
		{X: band.lowerNM, Y: 0},
		{X: band.upperNM, Y: 0},
		{X: band.upperNM, Y: top},
		{X: band.lowerNM, Y: top},
	})
	if err != nil {
		return nil, err
	}

	shade.Color = band.fill
	shade.LineStyle.Color = color.NRGBA{}

	return shade, nil
}

// bandLabels returns the band name annotations, centered per band.
func bandLabels(y float64) (*plotter.Labels, error) {
	xys := make(plotter.XYs, len(spectralBands))
	names := make([]string, len(spectralBands))

	for i, band := range spectralBands {
		xys[i].X = (band.lowerNM + band.upperNM) / 2
		xys[i].Y = y
		names[i] = band.name
	}

	return plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: names})
}

// legendNote adds a text-only legend entry via a transparent
// thumbnail line.
func legendNote(p *plot.Plot, text string) error {
	blank, err := plotter.NewLine(plotter.XYs{})
	if err != nil {
		return fmt.Errorf("render: legend note: %w", err)
	}

	blank.LineStyle.Color = color.Transparent
	p.Legend.Add(text, blank)

	return nil
}
