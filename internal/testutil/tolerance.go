// Package testutil provides shared tolerance helpers for numeric
// tests.
package testutil

import (
	"math"
	"testing"
)

// RequireNear fails t unless got is within eps of want (absolute
// tolerance).
func RequireNear(t *testing.T, got, want, eps float64) {
	t.Helper()

	if math.Abs(got-want) > eps {
		t.Fatalf("got %v, want %v (diff %v > eps %v)", got, want, math.Abs(got-want), eps)
	}
}

// RequireNearRel fails t unless got is within rel·|want| of want.
// want must be non-zero.
func RequireNearRel(t *testing.T, got, want, rel float64) {
	t.Helper()

	if want == 0 {
		t.Fatalf("relative comparison against zero (got %v)", got)
	}

	if diff := math.Abs(got - want); diff > rel*math.Abs(want) {
		t.Fatalf("got %v, want %v (rel diff %v > %v)", got, want, diff/math.Abs(want), rel)
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()

	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequireNonNegative fails t if any element is negative.
func RequireNonNegative(t *testing.T, data []float64) {
	t.Helper()

	for i, v := range data {
		if v < 0 {
			t.Fatalf("index %d: negative value %v", i, v)
		}
	}
}
