package ui

import (
	"errors"
	"image"
	"image/color"
	"io/fs"
	"math"
	"path/filepath"

	"github.com/golangdaddy/racinggame/pkg/background"
	"github.com/golangdaddy/racinggame/pkg/directories"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/rs/zerolog/log"
)

const (
	carWidth  = 30.0
	carHeight = 50.0
)

// textures caches images loaded from the textures directory. A missing file
// is remembered as nil so it is only looked up once.
type textures struct {
	dir    string
	images map[string]*ebiten.Image
}

func newTextures(dirs directories.Directories) *textures {
	return &textures{
		dir:    dirs.Path(directories.Textures),
		images: make(map[string]*ebiten.Image),
	}
}

func (t *textures) get(name string) *ebiten.Image {
	if img, ok := t.images[name]; ok {
		return img
	}
	path := filepath.Join(t.dir, name)
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Warn().Err(err).Str("file", path).Msg("Failed to load texture")
		}
		img = nil
	}
	t.images[name] = img
	return img
}

// road returns the lane texture for a road type letter
func (t *textures) road(roadType string) *ebiten.Image {
	return t.get(filepath.Join("road", roadType+".png"))
}

var backdrops = map[image.Point]*ebiten.Image{}

// drawBackdrop fills the screen with the roadside scenery of the menus
func drawBackdrop(screen *ebiten.Image) {
	size := screen.Bounds().Size()
	img, ok := backdrops[size]
	if !ok {
		g := background.NewGenerator(size.X, size.Y)
		img = ebiten.NewImageFromImage(g.Roadside(42, size.X/4))
		backdrops[size] = img
	}
	screen.DrawImage(img, nil)
	fillRect(screen, 0, 0, float64(size.X), float64(size.Y), color.RGBA{0, 0, 0, 140})
}

var carSprites = map[color.RGBA]*ebiten.Image{}

// carSprite draws the top-down car body in clr, bonnet facing up
func carSprite(clr color.RGBA) *ebiten.Image {
	if img, ok := carSprites[clr]; ok {
		return img
	}
	img := ebiten.NewImage(carWidth, carHeight)
	img.Fill(clr)

	outline := color.RGBA{20, 20, 20, 255}
	fillRect(img, 0, 0, carWidth, 2, outline)
	fillRect(img, 0, carHeight-2, carWidth, 2, outline)
	fillRect(img, 0, 0, 2, carHeight, outline)
	fillRect(img, carWidth-2, 0, 2, carHeight, outline)

	windshieldW, windshieldH := carWidth*0.6, carHeight*0.2
	fillRect(img, (carWidth-windshieldW)/2, 8, windshieldW, windshieldH, color.RGBA{150, 200, 255, 200})

	wheel := color.RGBA{30, 30, 30, 255}
	const wheelW, wheelH = 6.0, 8.0
	fillRect(img, 2, 5, wheelW, wheelH, wheel)
	fillRect(img, carWidth-wheelW-2, 5, wheelW, wheelH, wheel)
	fillRect(img, 2, carHeight-wheelH-5, wheelW, wheelH, wheel)
	fillRect(img, carWidth-wheelW-2, carHeight-wheelH-5, wheelW, wheelH, wheel)

	carSprites[clr] = img
	return img
}

// drawCar renders a car centered on x, y. A texture, when present, is tinted
// with the car color; otherwise the drawn sprite is used. angle is in degrees.
func drawCar(screen *ebiten.Image, tex *ebiten.Image, x, y, angle, scale float64, clr color.RGBA) {
	img := tex
	op := &ebiten.DrawImageOptions{}
	if img == nil {
		img = carSprite(clr)
	} else {
		op.ColorScale.ScaleWithColor(clr)
	}
	w, h := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())
	fit := math.Min(carWidth/w, carHeight/h) * scale

	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Scale(fit, fit)
	op.GeoM.Rotate(angle * math.Pi / 180)
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}
