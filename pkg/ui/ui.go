// Package ui holds the concrete screens of the game. Every screen implements
// app.Screen for the manager and Drawer for the ebiten host.
package ui

import (
	"image/color"

	"github.com/golangdaddy/racinggame/pkg/app"
	"github.com/golangdaddy/racinggame/pkg/input"
	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Drawer is implemented by every screen in this package
type Drawer interface {
	Draw(screen *ebiten.Image)
}

var (
	titleFace = text.NewGoXFace(bitmapfont.Face)
	smallFace = text.NewGoXFace(basicfont.Face7x13)
)

var (
	colorBackground = color.RGBA{20, 20, 30, 255}
	colorTitle      = color.RGBA{255, 200, 50, 255}
	colorText       = color.RGBA{255, 255, 255, 255}
	colorHint       = color.RGBA{150, 150, 150, 255}
	colorButton     = color.RGBA{40, 40, 60, 255}
	colorButtonHi   = color.RGBA{60, 100, 140, 255}
	colorButtonText = color.RGBA{200, 240, 255, 255}
	colorPanel      = color.RGBA{20, 20, 30, 200}
	colorBorder     = color.RGBA{100, 100, 120, 255}
)

// base carries the finished flag every screen needs
type base struct {
	done bool
}

func (b *base) Finished() bool {
	return b.done
}

func (b *base) finish() {
	b.done = true
}

// drawText draws str with its top-left corner at x, y
func drawText(screen *ebiten.Image, str string, x, y, scale float64, clr color.Color, face text.Face) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = face.Metrics().HAscent + face.Metrics().HDescent + 2
	text.Draw(screen, str, face, op)
}

// drawCentered draws str horizontally centered on cx
func drawCentered(screen *ebiten.Image, str string, cx, y, scale float64, clr color.Color, face text.Face) {
	w := text.Advance(str, face) * scale
	drawText(screen, str, cx-w/2, y, scale, clr, face)
}

func drawTitle(screen *ebiten.Image, title string) {
	w := float64(screen.Bounds().Dx())
	drawCentered(screen, title, w/2, 40, 4, colorTitle, titleFace)
}

func drawHint(screen *ebiten.Image, hint string) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	drawCentered(screen, hint, float64(w)/2, float64(h)-40, 1, colorHint, titleFace)
}

func fillRect(screen *ebiten.Image, x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func drawPanel(screen *ebiten.Image, x, y, w, h float64) {
	fillRect(screen, x, y, w, h, colorPanel)
	drawPanelBorder(screen, x, y, w, h)
}

func drawPanelBorder(screen *ebiten.Image, x, y, w, h float64) {
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 2, colorBorder, false)
}

func drawButton(screen *ebiten.Image, label string, x, y, w, h float64, highlighted bool) {
	bg, fg := colorButton, colorText
	if highlighted {
		bg, fg = colorButtonHi, colorButtonText
	}
	fillRect(screen, x, y, w, h, bg)
	drawCentered(screen, label, x+w/2, y+h/2-8, 1, fg, titleFace)
}

// menu is a vertical list of entries navigated with up and down
type menu struct {
	items    []string
	selected int
}

func newMenu(items ...string) menu {
	return menu{items: items}
}

// update moves the selection and reports whether an entry was chosen
func (m *menu) update(ctx *app.Context) bool {
	switch {
	case ctx.Input.JustPressed(input.Up):
		m.selected = (m.selected - 1 + len(m.items)) % len(m.items)
		ctx.Sound.Play(app.SoundHighlight)
	case ctx.Input.JustPressed(input.Down):
		m.selected = (m.selected + 1) % len(m.items)
		ctx.Sound.Play(app.SoundHighlight)
	case ctx.Input.JustPressed(input.Select):
		return true
	}
	return false
}

func (m *menu) draw(screen *ebiten.Image, top float64, labels []string) {
	const (
		buttonWidth   = 300.0
		buttonHeight  = 40.0
		optionSpacing = 52.0
	)
	x := float64(screen.Bounds().Dx())/2 - buttonWidth/2
	if labels == nil {
		labels = m.items
	}
	for i, label := range labels {
		drawButton(screen, label, x, top+float64(i)*optionSpacing, buttonWidth, buttonHeight, i == m.selected)
	}
}
