package flux

import "testing"

func BenchmarkTotal(b *testing.B) {
	c := NewCalculator(Config{})

	for i := 0; i < b.N; i++ {
		if _, err := c.Total(5778); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFraction(b *testing.B) {
	c := NewCalculator(Config{})

	for i := 0; i < b.N; i++ {
		if _, err := c.Fraction(5778, 400, 780); err != nil {
			b.Fatal(err)
		}
	}
}
