// Package render builds black-body spectrum figures.
//
// Figures are returned as *plot.Plot so callers can restyle them
// before writing; Save writes a figure with the format inferred from
// the file extension:
//
//	p, err := render.ByTemperature(5778)
//	err = render.Save(p, "sun.png")
//
// ByTemperature draws the Planck curve with a guide line at the Wien
// peak. EnergyInRange additionally shades the UV, visible, NIR and
// MIR bands and brackets a wavelength range of interest, reporting
// the share of the total flux emitted inside it.
package render
