// Package flux integrates the Planck spectral distribution to obtain
// the total and band-limited energy flux of a black body.
//
// Integration is carried out on the dimensionless form of Planck's
// law. Substituting x = hc/(λ·kB·T) turns the wavelength integral into
//
//	F = 2π (kB·T)⁴ / (h³c²) · ∫ x³/(eˣ−1) dx
//
// which is evaluated with fixed-order Gauss–Legendre quadrature. The
// full-range integral equals π⁴/15, so the total flux recovers the
// Stefan–Boltzmann law σT⁴.
//
// # Usage
//
//	total, err := flux.Total(5778)               // erg s⁻¹ cm⁻²
//	pct, err := flux.Fraction(5778, 400, 780)    // % emitted in the visible
//
// A Calculator with a custom Config controls the node count and the
// dimensionless cutoff; the defaults capture the integrand to well
// below one part in 10²⁰.
package flux
