// Package wien computes the peak emission wavelength of a black body
// via Wien's displacement law.
package wien

import "errors"

// DisplacementConstant is Wien's displacement constant in cm·K.
const DisplacementConstant = 0.2898

const nmPerCM = 1e7

var ErrInvalidTemperature = errors.New("wien: temperature must be positive")

// PeakWavelength returns the wavelength of maximum emission in nm
// for a black body at the given temperature.
func PeakWavelength(tempK float64) (float64, error) {
	if tempK <= 0 {
		return 0, ErrInvalidTemperature
	}

	return DisplacementConstant / tempK * nmPerCM, nil
}
