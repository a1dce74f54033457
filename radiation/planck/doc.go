// Package planck evaluates the Planck spectral distribution of a
// black body.
//
// All physics is carried out in CGS units. Wavelengths cross the API
// in nanometers and spectral radiance in erg s⁻¹ cm⁻² nm⁻¹, so values
// line up one-to-one with the wavelength grid they were evaluated on.
//
// # Usage
//
// Evaluate the default curve for a Sun-like photosphere:
//
//	s, err := planck.Curve(5778)
//	// s.Wavelengths[i] nm ↔ s.Radiance[i] erg s⁻¹ cm⁻² nm⁻¹
//
// Or bring your own grid:
//
//	grid := planck.Grid(200, 1200, 500)
//	s, err := planck.Eval(grid, 9940)
//
// The evaluator is numerically stable for extreme arguments: the
// resonant denominator exp(hc/λkT)−1 is computed with math.Expm1 and
// switches to the exp(−x) asymptotic form for very short wavelengths,
// so the radiance decays to zero instead of overflowing.
package planck
