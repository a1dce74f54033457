package render

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbudde/algo-blackbody/measure/flux"
	"github.com/cwbudde/algo-blackbody/radiation/planck"
)

func TestByTemperature(t *testing.T) {
	p, err := ByTemperature(5778)
	if err != nil {
		t.Fatalf("ByTemperature: %v", err)
	}

	path := filepath.Join(t.TempDir(), "sun.png")
	if err := Save(p, path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}

	if info.Size() == 0 {
		t.Fatal("figure file is empty")
	}
}

func TestByTemperatureInvalidTemperature(t *testing.T) {
	if _, err := ByTemperature(0); !errors.Is(err, planck.ErrInvalidTemperature) {
		t.Fatalf("got %v, want ErrInvalidTemperature", err)
	}
}

func TestEnergyInRange(t *testing.T) {
	p, err := EnergyInRange(5778, 400, 780)
	if err != nil {
		t.Fatalf("EnergyInRange: %v", err)
	}

	path := filepath.Join(t.TempDir(), "visible.png")
	if err := Save(p, path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}

	if info.Size() == 0 {
		t.Fatal("figure file is empty")
	}
}

func TestEnergyInRangeRejectsMisorderedBand(t *testing.T) {
	if _, err := EnergyInRange(5778, 780, 400); !errors.Is(err, flux.ErrWavelengthOrder) {
		t.Fatalf("got %v, want ErrWavelengthOrder", err)
	}
}

func TestSaveSVG(t *testing.T) {
	p, err := ByTemperature(9940)
	if err != nil {
		t.Fatalf("ByTemperature: %v", err)
	}

	path := filepath.Join(t.TempDir(), "vega.svg")
	if err := Save(p, path); err != nil {
		t.Fatalf("Save: %v", err)
	}
}
