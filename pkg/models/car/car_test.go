package car

import (
	"image/color"
	"math"
	"testing"
)

func TestPaletteIndexWraps(t *testing.T) {
	palette, err := NewPalette(DefaultColors()...)
	if err != nil {
		t.Fatalf("NewPalette: %v", err)
	}
	n := palette.Len()

	requests := []int{0, 1, n - 1, n, n + 3, -1, -n, -n - 1, 1000, -1000, math.MaxInt32, math.MinInt32}
	for _, req := range requests {
		got := palette.Index(req)
		if got < 0 || got >= n {
			t.Fatalf("Index(%d) = %d, out of range [0,%d)", req, got, n)
		}
		if (req-got)%n != 0 {
			t.Errorf("Index(%d) = %d, not congruent modulo %d", req, got, n)
		}
		if palette.At(req) != palette.colors[got] {
			t.Errorf("At(%d) does not match entry %d", req, got)
		}
	}
}

func TestPaletteIndexExamples(t *testing.T) {
	palette, _ := NewPalette(
		color.RGBA{1, 0, 0, 255},
		color.RGBA{2, 0, 0, 255},
		color.RGBA{3, 0, 0, 255},
	)

	tests := []struct {
		req  int
		want int
	}{
		{0, 0},
		{2, 2},
		{3, 0},
		{7, 1},
		{-1, 2},
		{-3, 0},
		{-4, 2},
	}
	for _, tt := range tests {
		if got := palette.Index(tt.req); got != tt.want {
			t.Errorf("Index(%d) = %d, want %d", tt.req, got, tt.want)
		}
	}
}

func TestEmptyPaletteRejected(t *testing.T) {
	if _, err := NewPalette(); err == nil {
		t.Error("NewPalette() with no colors should fail")
	}
}

func TestCatalogWraps(t *testing.T) {
	assets := DefaultAssets()
	n := assets.Cars.Len()
	if n != 3 {
		t.Fatalf("expected 3 stock cars, got %d", n)
	}

	if assets.Cars.At(n) != assets.Cars.At(0) {
		t.Error("At(n) should wrap to the first car")
	}
	if assets.Cars.At(-1) != assets.Cars.At(n-1) {
		t.Error("At(-1) should wrap to the last car")
	}
	if assets.Texture(-2) != assets.Cars.At(1).Texture {
		t.Errorf("Texture(-2) = %q, want %q", assets.Texture(-2), assets.Cars.At(1).Texture)
	}
}

func TestCatalogRejectsNil(t *testing.T) {
	if _, err := NewCatalog(); err == nil {
		t.Error("NewCatalog() with no cars should fail")
	}
	if _, err := NewCatalog(NewCar("A", "B", 1000), nil); err == nil {
		t.Error("NewCatalog() with a nil car should fail")
	}
}

func TestBrakeDecelerationBounds(t *testing.T) {
	tests := []struct {
		name string
		car  *Car
	}{
		{"feather", func() *Car { c := NewCar("A", "Light", 100); c.Brakes.StoppingPower = 5; return c }()},
		{"truck", func() *Car { c := NewCar("B", "Heavy", 9000); c.Brakes.Condition = 0.1; return c }()},
		{"no weight", NewCar("C", "Zero", 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.car.BrakeDeceleration()
			if got < 0.01 || got > 0.04 {
				t.Errorf("BrakeDeceleration() = %v, want within [0.01, 0.04]", got)
			}
		})
	}
}

func TestLighterCarsBrakeHarder(t *testing.T) {
	light := NewCar("A", "Light", 1000)
	heavy := NewCar("A", "Heavy", 2000)
	if light.BrakeDeceleration() <= heavy.BrakeDeceleration() {
		t.Errorf("light %v should brake harder than heavy %v",
			light.BrakeDeceleration(), heavy.BrakeDeceleration())
	}
}
