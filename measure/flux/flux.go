package flux

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/integrate/quad"

	"github.com/cwbudde/algo-blackbody/radiation/planck"
)

const (
	defaultNodes = 256

	// x³/(eˣ−1) at x = 60 is below 1e-21 of its peak, so truncating
	// the upper limit there leaves no measurable bias.
	defaultCutoffX = 60.0

	cmPerNM = 1e-7
)

var (
	ErrInvalidTemperature = errors.New("flux: temperature must be positive")
	ErrInvalidWavelength  = errors.New("flux: wavelengths must be positive")
	ErrWavelengthOrder    = errors.New("flux: lower wavelength must not exceed upper wavelength")
)

// Config holds quadrature parameters.
type Config struct {
	Nodes   int     // Gauss-Legendre node count
	CutoffX float64 // upper bound of the dimensionless variable
}

// Calculator integrates the Planck distribution with a fixed
// quadrature configuration.
type Calculator struct {
	cfg Config
}

// NewCalculator creates a calculator, applying defaults for
// unset config fields.
func NewCalculator(cfg Config) *Calculator {
	cfg = normalizeConfig(cfg)
	return &Calculator{cfg: cfg}
}

// Total is a one-shot total flux calculation with default config.
func Total(tempK float64) (float64, error) {
	return NewCalculator(Config{}).Total(tempK)
}

// Band is a one-shot band flux calculation with default config.
func Band(tempK, lowerNM, upperNM float64) (float64, error) {
	return NewCalculator(Config{}).Band(tempK, lowerNM, upperNM)
}

// Fraction is a one-shot band fraction calculation with default config.
func Fraction(tempK, lowerNM, upperNM float64) (float64, error) {
	return NewCalculator(Config{}).Fraction(tempK, lowerNM, upperNM)
}

// Total returns the flux emitted over all wavelengths in
// erg s^-1 cm^-2.
func (c *Calculator) Total(tempK float64) (float64, error) {
	if tempK <= 0 {
		return 0, ErrInvalidTemperature
	}

	integral := quad.Fixed(spectralKernel, 0, c.cfg.CutoffX, c.cfg.Nodes, nil, 0)

	return math.Pi * prefactor(tempK) * integral, nil
}

// Band returns the flux emitted between lowerNM and upperNM
// (nanometers) in erg s^-1 cm^-2.
func (c *Calculator) Band(tempK, lowerNM, upperNM float64) (float64, error) {
	if tempK <= 0 {
		return 0, ErrInvalidTemperature
	}

	if lowerNM <= 0 || upperNM <= 0 {
		return 0, ErrInvalidWavelength
	}

	if lowerNM > upperNM {
		return 0, ErrWavelengthOrder
	}

	if lowerNM == upperNM {
		return 0, nil
	}

	// The substitution reverses the bounds: the upper wavelength maps
	// to the lower dimensionless bound.
	x1 := dimensionless(upperNM, tempK)
	x2 := dimensionless(lowerNM, tempK)

	if x1 >= c.cfg.CutoffX {
		return 0, nil
	}

	if x2 > c.cfg.CutoffX {
		x2 = c.cfg.CutoffX
	}

	integral := quad.Fixed(spectralKernel, x1, x2, c.cfg.Nodes, nil, 0)

	return math.Pi * prefactor(tempK) * integral, nil
}

// Fraction returns the share of the total flux emitted between
// lowerNM and upperNM, as a percentage in [0, 100].
func (c *Calculator) Fraction(tempK, lowerNM, upperNM float64) (float64, error) {
	band, err := c.Band(tempK, lowerNM, upperNM)
	if err != nil {
		return 0, err
	}

	if band == 0 {
		return 0, nil
	}

	total, err := c.Total(tempK)
	if err != nil {
		return 0, err
	}

	return band / total * 100, nil
}

// Integrate returns the trapezoidal integral of a sampled spectrum in
// erg s^-1 cm^-2. It covers only the sampled wavelength range, so it
// underestimates the total flux of a truncated grid.
func Integrate(s planck.Spectrum) float64 {
	if s.Len() < 2 || len(s.Radiance) != s.Len() {
		return 0
	}

	return integrate.Trapezoidal(s.Wavelengths, s.Radiance)
}

// spectralKernel is the dimensionless Planck integrand x³/(eˣ−1).
func spectralKernel(x float64) float64 {
	if x <= 0 {
		return 0
	}

	return x * x * x / math.Expm1(x)
}

// prefactor is 2(kB·T)⁴/(h³c²), the constant restoring physical units
// after the dimensionless substitution.
func prefactor(tempK float64) float64 {
	kt := planck.Boltzmann * tempK
	h := planck.PlanckConstant
	c := planck.SpeedOfLight

	return 2 * kt * kt * kt * kt / (h * h * h * c * c)
}

// dimensionless maps a wavelength in nm to x = hc/(λ·kB·T).
func dimensionless(wavelengthNM, tempK float64) float64 {
	lambdaCM := wavelengthNM * cmPerNM
	return planck.PlanckConstant * planck.SpeedOfLight / (lambdaCM * planck.Boltzmann * tempK)
}

func normalizeConfig(cfg Config) Config {
	if cfg.Nodes <= 0 {
		cfg.Nodes = defaultNodes
	}

	if cfg.CutoffX <= 0 {
		cfg.CutoffX = defaultCutoffX
	}

	return cfg
}
