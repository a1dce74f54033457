package star

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		tempK float64
		want  Class
	}{
		{50000, ClassO},
		{30000, ClassO},
		{29999, ClassB},
		{10000, ClassB},
		{9940, ClassA}, // Vega
		{7500, ClassA},
		{7499, ClassF},
		{6000, ClassF},
		{5778, ClassG}, // Sun
		{5000, ClassG},
		{4500, ClassK},
		{3500, ClassK},
		{3042, ClassM}, // Proxima Centauri
		{2500, ClassM},
		{2499, ClassUnknown},
		{0, ClassUnknown},
		{-300, ClassUnknown},
	}

	for _, tt := range tests {
		if got := Classify(tt.tempK); got != tt.want {
			t.Errorf("Classify(%g) = %s, want %s", tt.tempK, got, tt.want)
		}
	}
}

func TestClassString(t *testing.T) {
	if ClassG.String() != "G" {
		t.Fatalf("ClassG = %q, want G", ClassG.String())
	}

	if ClassUnknown.String() != "?" {
		t.Fatalf("ClassUnknown = %q, want ?", ClassUnknown.String())
	}

	if Class(99).String() != "?" {
		t.Fatalf("out-of-range class = %q, want ?", Class(99).String())
	}
}
