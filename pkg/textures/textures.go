// Package textures generates the stock lane and car textures as PNG files.
// Car bodies are drawn in white so the game can tint them with the player's color.
package textures

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/golangdaddy/racinggame/pkg/models/car"
)

const (
	LaneWidth  = 40
	LaneHeight = 300
	CarWidth   = 30
	CarHeight  = 50
)

// RoadTypes lists the lane letters a texture is generated for
var RoadTypes = []string{"A", "B"}

var (
	asphalt     = color.RGBA{64, 64, 64, 255}
	asphaltDark = color.RGBA{52, 52, 52, 255}
	lineWhite   = color.RGBA{240, 240, 240, 255}
	rumbleRed   = color.RGBA{200, 40, 40, 255}
	bodyWhite   = color.RGBA{255, 255, 255, 255}
	glass       = color.RGBA{90, 90, 110, 255}
	tyre        = color.RGBA{25, 25, 25, 255}
	outline     = color.RGBA{60, 60, 60, 255}
)

func fill(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

// Road draws one lane of road type roadType. Unknown types get plain tarmac.
func Road(roadType string) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, LaneWidth, LaneHeight))
	fill(img, img.Bounds(), asphalt)

	// coarse grain so the scrolling is visible
	for y := 0; y < LaneHeight; y += 6 {
		for x := (y / 6 % 3) * 3; x < LaneWidth; x += 9 {
			img.SetRGBA(x, y, asphaltDark)
		}
	}

	// dashed divider on the right edge
	for y := 0; y < LaneHeight; y += 20 {
		fill(img, image.Rect(LaneWidth-1, y, LaneWidth, y+10), lineWhite)
	}

	if roadType == "B" {
		// rumble strip along the left edge
		for y := 0; y < LaneHeight; y += 10 {
			c := rumbleRed
			if y/10%2 == 1 {
				c = lineWhite
			}
			fill(img, image.Rect(0, y, 5, y+10), c)
		}
	}
	return img
}

// CarStyle picks the body shape of a car texture
type CarStyle int

const (
	Saloon CarStyle = iota
	Sports
	Racer
)

// Car draws a top-down car body, bonnet up
func Car(style CarStyle) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, CarWidth, CarHeight))

	inset := 0
	switch style {
	case Sports:
		inset = 2
	case Racer:
		inset = 4
	}

	// wheels sit outside the body on the racer
	wheelX := inset - 2
	if style != Racer {
		wheelX = inset
	}
	for _, y := range []int{5, CarHeight - 13} {
		fill(img, image.Rect(wheelX, y, wheelX+6, y+8), tyre)
		fill(img, image.Rect(CarWidth-wheelX-6, y, CarWidth-wheelX, y+8), tyre)
	}

	body := image.Rect(inset+2, 0, CarWidth-inset-2, CarHeight)
	fill(img, body, outline)
	fill(img, body.Inset(1), bodyWhite)

	switch style {
	case Saloon:
		fill(img, image.Rect(6, 12, CarWidth-6, 20), glass)
		fill(img, image.Rect(6, CarHeight-14, CarWidth-6, CarHeight-8), glass)
	case Sports:
		fill(img, image.Rect(8, 16, CarWidth-8, 26), glass)
	case Racer:
		fill(img, image.Rect(12, 20, CarWidth-12, 28), glass)
		fill(img, image.Rect(2, CarHeight-4, CarWidth-2, CarHeight), outline)
	}
	return img
}

// Save encodes img as PNG at path, creating parent directories
func Save(img image.Image, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(file, img); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return file.Close()
}

// WriteAll generates every lane texture and one body per stock car into dir
// and returns the written paths. Lane textures go to dir/road/<type>.png.
func WriteAll(dir string, cars []*car.Car) ([]string, error) {
	var written []string
	for _, rt := range RoadTypes {
		path := filepath.Join(dir, "road", rt+".png")
		if err := Save(Road(rt), path); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	for i, c := range cars {
		if c.Texture == "" {
			continue
		}
		path := filepath.Join(dir, c.Texture)
		if err := Save(Car(CarStyle(i%3)), path); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}
