package planck

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Physical constants in CGS units.
const (
	SpeedOfLight   = 2.9979e10  // cm s^-1
	Boltzmann      = 1.3806e-16 // erg K^-1
	PlanckConstant = 6.626e-27  // erg s
)

// Default sampling grid for Curve.
const (
	DefaultMinWavelength = 1.0    // nm
	DefaultMaxWavelength = 4000.0 // nm
	DefaultGridPoints    = 1000
)

const cmPerNM = 1e-7

// math.Expm1 overflows float64 just above x = 709; beyond this the
// denominator equals exp(x) to double precision anyway.
const asymptoticX = 700.0

var (
	ErrInvalidTemperature = errors.New("planck: temperature must be positive")
	ErrInvalidWavelength  = errors.New("planck: wavelengths must be positive")
)

// Spectrum pairs a wavelength grid with the spectral radiance
// evaluated on it. Both slices have the same length.
type Spectrum struct {
	Wavelengths []float64 // nm
	Radiance    []float64 // erg s^-1 cm^-2 nm^-1
}

// Len returns the number of samples.
func (s Spectrum) Len() int {
	return len(s.Wavelengths)
}

// Peak returns the wavelength and radiance of the largest sample.
// Zero values are returned for an empty spectrum.
func (s Spectrum) Peak() (wavelengthNM, radiance float64) {
	if len(s.Radiance) == 0 || len(s.Radiance) != len(s.Wavelengths) {
		return 0, 0
	}

	best := 0
	for i, v := range s.Radiance {
		if v > s.Radiance[best] {
			best = i
		}
	}

	return s.Wavelengths[best], s.Radiance[best]
}

// Radiance evaluates Planck's law at a single wavelength.
func Radiance(wavelengthNM, tempK float64) (float64, error) {
	if tempK <= 0 {
		return 0, ErrInvalidTemperature
	}

	if wavelengthNM <= 0 {
		return 0, ErrInvalidWavelength
	}

	return radiancePerCM(wavelengthNM*cmPerNM, tempK) * cmPerNM, nil
}

// Eval evaluates Planck's law on a wavelength grid.
// The grid is copied, so the caller may reuse it.
func Eval(wavelengthsNM []float64, tempK float64) (Spectrum, error) {
	if tempK <= 0 {
		return Spectrum{}, ErrInvalidTemperature
	}

	rad := make([]float64, len(wavelengthsNM))

	for i, wl := range wavelengthsNM {
		if wl <= 0 {
			return Spectrum{}, ErrInvalidWavelength
		}

		rad[i] = radiancePerCM(wl*cmPerNM, tempK)
	}

	// Convert the per-cm block to per-nm in one pass.
	vecmath.ScaleBlock(rad, rad, cmPerNM)

	wl := make([]float64, len(wavelengthsNM))
	copy(wl, wavelengthsNM)

	return Spectrum{Wavelengths: wl, Radiance: rad}, nil
}

// Curve evaluates Planck's law on the default grid
// (1..4000 nm, 1000 points).
func Curve(tempK float64) (Spectrum, error) {
	return Eval(Grid(DefaultMinWavelength, DefaultMaxWavelength, DefaultGridPoints), tempK)
}

// Grid returns n evenly spaced wavelengths covering [minNM, maxNM].
// It returns nil for n <= 0 and a single-element grid for n == 1.
func Grid(minNM, maxNM float64, n int) []float64 {
	if n <= 0 {
		return nil
	}

	out := make([]float64, n)
	if n == 1 {
		out[0] = minNM
		return out
	}

	step := (maxNM - minNM) / float64(n-1)
	for i := range out {
		out[i] = minNM + float64(i)*step
	}

	return out
}

// radiancePerCM evaluates 2hc²/λ⁵ · 1/(exp(hc/λkT)−1) with λ in cm.
func radiancePerCM(lambdaCM, tempK float64) float64 {
	x := PlanckConstant * SpeedOfLight / (lambdaCM * Boltzmann * tempK)
	l2 := lambdaCM * lambdaCM
	pre := 2 * PlanckConstant * SpeedOfLight * SpeedOfLight / (l2 * l2 * lambdaCM)

	if x > asymptoticX {
		return pre * math.Exp(-x)
	}

	return pre / math.Expm1(x)
}
