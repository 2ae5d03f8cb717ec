package background

import (
	"bytes"
	"image/color"
	"testing"
)

func TestRoadsideIsDeterministic(t *testing.T) {
	g := NewGenerator(120, 80)
	a := g.Roadside(7, 40)
	b := g.Roadside(7, 40)
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("same seed produced different backdrops")
	}
	if a.Bounds().Dx() != 120 || a.Bounds().Dy() != 80 {
		t.Errorf("bounds = %v, want 120x80", a.Bounds())
	}
}

func TestRoadsideKeepsRoadClear(t *testing.T) {
	g := NewGenerator(200, 100)
	img := g.Roadside(1, 60)

	asphalt := color.RGBA{64, 64, 64, 255}
	// just inside the left edge line, away from the centre dashes
	for y := 0; y < 100; y++ {
		if got := img.RGBAAt(75, y); got != asphalt {
			t.Fatalf("road pixel at y=%d = %v, want asphalt", y, got)
		}
	}
}
