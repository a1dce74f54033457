package flux_test

import (
	"fmt"

	"github.com/cwbudde/algo-blackbody/measure/flux"
)

func ExampleTotal() {
	// Stefan-Boltzmann scaling: doubling the temperature multiplies
	// the emitted flux by 2⁴.
	cool, err := flux.Total(2889)
	if err != nil {
		panic(err)
	}

	hot, err := flux.Total(5778)
	if err != nil {
		panic(err)
	}

	fmt.Printf("flux ratio: %.1f\n", hot/cool)

	// Output:
	// flux ratio: 16.0
}

func ExampleFraction() {
	full, err := flux.Fraction(5778, 0.01, 1e9)
	if err != nil {
		panic(err)
	}

	empty, err := flux.Fraction(5778, 502, 502)
	if err != nil {
		panic(err)
	}

	fmt.Printf("full range: %.1f %%\n", full)
	fmt.Printf("degenerate band: %.1f %%\n", empty)

	// Output:
	// full range: 100.0 %
	// degenerate band: 0.0 %
}
