// Package background paints the roadside scenery used behind the menus.
// It draws into a plain RGBA image so it can run before the window exists.
package background

import (
	"image"
	"image/color"
	"math"
	"math/rand"
)

// Generator creates roadside backdrops of a fixed size
type Generator struct {
	Width  int
	Height int
}

// NewGenerator creates a new background generator
func NewGenerator(width, height int) *Generator {
	return &Generator{
		Width:  width,
		Height: height,
	}
}

// Roadside paints a forest with a straight road running up the middle.
// The same seed always yields the same picture.
func (g *Generator) Roadside(seed int64, roadWidth int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	rng := rand.New(rand.NewSource(seed))

	g.fill(img, color.RGBA{30, 100, 30, 255})
	for i := 0; i < g.Width*g.Height/10; i++ {
		shade := uint8(80 + rng.Intn(60))
		img.SetRGBA(rng.Intn(g.Width), rng.Intn(g.Height), color.RGBA{30, shade, 30, 255})
	}

	left := (g.Width - roadWidth) / 2
	right := left + roadWidth

	// top to bottom so lower trees overlap higher ones
	for y := 0; y < g.Height; y += 10 {
		density := 0.5 + 0.3*math.Sin(float64(y)*0.01)
		for x := 0; x < g.Width; x += 5 + rng.Intn(15) {
			if rng.Float64() > density {
				continue
			}
			px := x + rng.Intn(10) - 5
			py := y + rng.Intn(10) - 5
			if px > left-20 && px < right+20 {
				continue
			}
			if rng.Float64() < 0.3 {
				g.tree(img, px, py, rng)
			} else {
				g.bush(img, px, py, rng)
			}
		}
	}

	g.road(img, left, right)
	return img
}

func (g *Generator) fill(img *image.RGBA, c color.RGBA) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

func (g *Generator) set(img *image.RGBA, x, y int, c color.RGBA) {
	if x >= 0 && x < g.Width && y >= 0 && y < g.Height {
		img.SetRGBA(x, y, c)
	}
}

func (g *Generator) road(img *image.RGBA, left, right int) {
	asphalt := color.RGBA{64, 64, 64, 255}
	edge := color.RGBA{230, 230, 230, 255}
	centre := (left + right) / 2
	for y := 0; y < g.Height; y++ {
		for x := left; x < right; x++ {
			c := asphalt
			switch {
			case x < left+3 || x >= right-3:
				c = edge
			case (x == centre || x == centre+1) && y%40 < 20:
				c = edge
			}
			g.set(img, x, y, c)
		}
	}
}

func (g *Generator) tree(img *image.RGBA, x, y int, rng *rand.Rand) {
	height := 40 + rng.Intn(30)
	width := 20 + rng.Intn(15)

	trunk := color.RGBA{60, 40, 20, 255}
	trunkW := 4 + rng.Intn(4)
	for ty := 0; ty < height/3; ty++ {
		for tx := -trunkW / 2; tx < trunkW/2; tx++ {
			g.set(img, x+tx, y-ty, trunk)
		}
	}

	leaves := color.RGBA{
		uint8(20 + rng.Intn(30)),
		uint8(80 + rng.Intn(60)),
		uint8(20 + rng.Intn(30)),
		255,
	}
	for l := 0; l < 3; l++ {
		layerY := y - height/3 - l*height/4
		layerW := max(width-l*5, 5)
		for ly := 0; ly < height/3; ly++ {
			rowW := layerW * (height/3 - ly) / (height / 3)
			for lx := -rowW / 2; lx < rowW/2; lx++ {
				g.set(img, x+lx, layerY-ly, leaves)
			}
		}
	}
}

func (g *Generator) bush(img *image.RGBA, x, y int, rng *rand.Rand) {
	radius := 5 + rng.Intn(10)
	c := color.RGBA{
		uint8(40 + rng.Intn(40)),
		uint8(100 + rng.Intn(50)),
		uint8(40 + rng.Intn(40)),
		255,
	}
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				g.set(img, x+dx, y+dy, c)
			}
		}
	}
}
