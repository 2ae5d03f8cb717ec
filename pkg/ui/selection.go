package ui

import (
	"fmt"

	"github.com/golangdaddy/racinggame/pkg/app"
	"github.com/golangdaddy/racinggame/pkg/input"
	"github.com/golangdaddy/racinggame/pkg/models"
	"github.com/golangdaddy/racinggame/pkg/track"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// CarSelection cycles through the car models and colors. The choice is
// written back to the settings when the screen is popped.
type CarSelection struct {
	base
	ctx      *app.Context
	textures *textures
	car      int
	color    int
}

func NewCarSelection() *CarSelection {
	return &CarSelection{}
}

func (c *CarSelection) Kind() app.Kind { return app.KindCarSelection }

func (c *CarSelection) OnEnter(ctx *app.Context) {
	c.ctx = ctx
	c.textures = newTextures(ctx.Dirs)
	c.car = ctx.Assets.Cars.Index(ctx.Settings.CarIndex)
	c.color = ctx.SelectedColor()
}

func (c *CarSelection) OnPop(ctx *app.Context) {
	ctx.Settings.CarIndex = ctx.Assets.Cars.Index(c.car)
	ctx.Settings.ColorIndex = ctx.Assets.Palette.Index(c.color)
}

func (c *CarSelection) Update(ctx *app.Context) error {
	switch {
	case ctx.Input.JustPressed(input.Up):
		c.car = ctx.Assets.Cars.Index(c.car - 1)
		ctx.Sound.Play(app.SoundHighlight)
	case ctx.Input.JustPressed(input.Down):
		c.car = ctx.Assets.Cars.Index(c.car + 1)
		ctx.Sound.Play(app.SoundHighlight)
	case ctx.Input.JustPressed(input.Left):
		c.color = ctx.Assets.Palette.Index(c.color - 1)
		ctx.Sound.Play(app.SoundHighlight)
	case ctx.Input.JustPressed(input.Right):
		c.color = ctx.Assets.Palette.Index(c.color + 1)
		ctx.Sound.Play(app.SoundHighlight)
	case ctx.Input.JustPressed(input.Select), ctx.Input.JustPressed(input.Back):
		c.finish()
	}
	return nil
}

func (c *CarSelection) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	drawTitle(screen, "SELECT CAR")
	if c.ctx == nil {
		return
	}
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	assets := c.ctx.Assets
	selected := assets.Cars.At(c.car)
	clr := assets.Palette.At(c.color)

	// preview
	cx, cy := width/3, height/2
	drawPanel(screen, cx-110, cy-140, 220, 280)
	drawCar(screen, c.textures.get(selected.Texture), cx, cy, 0, 4, clr)

	// stats
	x := width/2 + 20
	y := cy - 130
	drawText(screen, selected.Name(), x, y, 2, colorTitle, titleFace)
	stats := []string{
		fmt.Sprintf("Top speed     %.0f mph", selected.MaxSpeed),
		fmt.Sprintf("Acceleration  %.0f mph/s", selected.Acceleration),
		fmt.Sprintf("Handling      %.0f%%", selected.Handling*100),
		fmt.Sprintf("Weight        %.0f kg", selected.Weight),
		fmt.Sprintf("Brakes        %s", selected.Brakes.Type),
	}
	for i, line := range stats {
		drawText(screen, line, x, y+50+float64(i)*24, 1, colorText, titleFace)
	}
	drawText(screen, fmt.Sprintf("Car %d of %d", assets.Cars.Index(c.car)+1, assets.Cars.Len()), x, y+190, 1, colorHint, titleFace)

	// palette swatches
	const swatch = 28.0
	n := assets.Palette.Len()
	sx := width/2 - float64(n)*(swatch+8)/2
	sy := cy + 170
	for i := 0; i < n; i++ {
		px := sx + float64(i)*(swatch+8)
		fillRect(screen, px, sy, swatch, swatch, assets.Palette.At(i))
		if i == assets.Palette.Index(c.color) {
			vector.StrokeRect(screen, float32(px-3), float32(sy-3), swatch+6, swatch+6, 2, colorTitle, false)
		}
	}

	drawHint(screen, "Up/Down: Car | Left/Right: Color | Enter: Done")
}

// TrackSelection picks the difficulty level, which decides the track and lap count
type TrackSelection struct {
	base
	menu   menu
	tracks map[models.Level]*track.Track
}

func NewTrackSelection() *TrackSelection {
	items := make([]string, len(models.Levels))
	for i, l := range models.Levels {
		items[i] = l.String()
	}
	return &TrackSelection{
		menu:   newMenu(items...),
		tracks: make(map[models.Level]*track.Track),
	}
}

func (t *TrackSelection) Kind() app.Kind { return app.KindTrackSelection }

func (t *TrackSelection) OnEnter(ctx *app.Context) {
	t.menu.selected = int(ctx.Settings.Level.Wrap())
	for _, l := range models.Levels {
		t.tracks[l] = ctx.LoadTrack(l)
	}
}

func (t *TrackSelection) Update(ctx *app.Context) error {
	if ctx.Input.JustPressed(input.Back) {
		t.finish()
		return nil
	}
	if t.menu.update(ctx) {
		ctx.Settings.Level = models.Levels[t.menu.selected]
		t.finish()
	}
	return nil
}

func (t *TrackSelection) Draw(screen *ebiten.Image) {
	drawBackdrop(screen)
	drawTitle(screen, "SELECT TRACK")

	labels := make([]string, len(t.menu.items))
	for i, l := range models.Levels {
		labels[i] = fmt.Sprintf("%s - %d laps", l, l.Laps())
	}
	t.menu.draw(screen, 160, labels)

	level := models.Levels[t.menu.selected]
	if tr := t.tracks[level]; tr != nil {
		width := float64(screen.Bounds().Dx())
		info := fmt.Sprintf("%s: %d segments per lap", tr.Name, len(tr.Segments))
		drawCentered(screen, info, width/2, 360, 1, colorText, titleFace)
	}
	drawHint(screen, "Up/Down: Level | Enter: Select | Esc: Back")
}
