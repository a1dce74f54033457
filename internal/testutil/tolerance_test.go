package testutil

import (
	"math"
	"testing"
)

func TestRequireNear(t *testing.T) {
	RequireNear(t, 1.0, 1.0+1e-12, 1e-9)
}

func TestRequireNearRel(t *testing.T) {
	RequireNearRel(t, 1e10, 1e10*(1+1e-12), 1e-9)
}

func TestRequireFinite(t *testing.T) {
	RequireFinite(t, []float64{0, 1, -1, math.MaxFloat64})
}

func TestRequireNonNegative(t *testing.T) {
	RequireNonNegative(t, []float64{0, 1, math.Inf(1)})
}
