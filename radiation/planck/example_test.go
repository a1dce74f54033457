package planck_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-blackbody/radiation/planck"
)

func ExampleCurve() {
	s, err := planck.Curve(5778)
	if err != nil {
		panic(err)
	}

	peakWL, _ := s.Peak()

	fmt.Printf("samples: %d\n", s.Len())
	fmt.Printf("grid: %.0f..%.0f nm\n", s.Wavelengths[0], s.Wavelengths[s.Len()-1])
	fmt.Printf("peak near %.0f nm\n", math.Round(peakWL/10)*10)

	// Output:
	// samples: 1000
	// grid: 1..4000 nm
	// peak near 500 nm
}

func ExampleRadiance() {
	// A Sun-like photosphere emits strongly in the visible band.
	visible, err := planck.Radiance(550, 5778)
	if err != nil {
		panic(err)
	}

	infrared, err := planck.Radiance(3500, 5778)
	if err != nil {
		panic(err)
	}

	fmt.Printf("visible emission exceeds mid-infrared: %t\n", visible > infrared)

	// Output:
	// visible emission exceeds mid-infrared: true
}
