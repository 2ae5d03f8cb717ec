package ui

import (
	"fmt"

	"github.com/golangdaddy/racinggame/pkg/app"
	"github.com/golangdaddy/racinggame/pkg/input"
	"github.com/golangdaddy/racinggame/pkg/models"
	"github.com/hajimehoshi/ebiten/v2"
)

// Highscores lists the best times per level. highlight marks a freshly
// placed entry, -1 for none.
type Highscores struct {
	base
	ctx       *app.Context
	level     models.Level
	highlight int
}

func NewHighscores(level models.Level, highlight int) *Highscores {
	return &Highscores{level: level.Wrap(), highlight: highlight}
}

func (h *Highscores) Kind() app.Kind { return app.KindHighscores }

func (h *Highscores) OnEnter(ctx *app.Context) {
	h.ctx = ctx
}

func (h *Highscores) Update(ctx *app.Context) error {
	switch {
	case ctx.Input.JustPressed(input.Left):
		h.level = (h.level - 1).Wrap()
		h.highlight = -1
		ctx.Sound.Play(app.SoundHighlight)
	case ctx.Input.JustPressed(input.Right):
		h.level = (h.level + 1).Wrap()
		h.highlight = -1
		ctx.Sound.Play(app.SoundHighlight)
	case ctx.Input.JustPressed(input.Select), ctx.Input.JustPressed(input.Back):
		h.finish()
	}
	return nil
}

func (h *Highscores) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	drawTitle(screen, "HIGHSCORES")
	width := float64(screen.Bounds().Dx())
	drawCentered(screen, "< "+h.level.String()+" >", width/2, 110, 2, colorButtonText, titleFace)
	if h.ctx == nil || h.ctx.Settings.Highscores == nil {
		return
	}

	x := width/2 - 260
	drawPanel(screen, x-20, 150, 560, 330)
	for i, e := range h.ctx.Settings.Highscores.Top(h.level) {
		clr := colorText
		if i == h.highlight {
			clr = colorTitle
		}
		line := fmt.Sprintf("%2d. %-12s %9s  %s", i+1, e.Name, models.FormatRaceTime(e.Time), e.Car)
		drawText(screen, line, x, 165+float64(i)*30, 1, clr, titleFace)
	}
	drawHint(screen, "Left/Right: Level | Esc: Back")
}

var helpLines = []string{
	"Up / W            Accelerate",
	"Down / S / Space  Brake",
	"Left / Right      Steer",
	"Esc               Back / abort race",
	"F11               Toggle fullscreen",
	"F12               Screenshot",
	"",
	"Stay on the tarmac: the verge slows you down.",
	"Finish all laps to enter the highscores.",
}

// Help explains the controls
type Help struct {
	base
}

func NewHelp() *Help {
	return &Help{}
}

func (h *Help) Kind() app.Kind { return app.KindHelp }

func (h *Help) Update(ctx *app.Context) error {
	if ctx.Input.JustPressed(input.Select) || ctx.Input.JustPressed(input.Back) {
		h.finish()
	}
	return nil
}

func (h *Help) Draw(screen *ebiten.Image) {
	drawBackdrop(screen)
	drawTitle(screen, "HELP")
	width := float64(screen.Bounds().Dx())
	x := width/2 - 240
	drawPanel(screen, x-20, 120, 520, float64(len(helpLines))*28+30)
	for i, line := range helpLines {
		drawText(screen, line, x, 135+float64(i)*28, 1, colorText, titleFace)
	}
	drawHint(screen, "Enter / Esc: Back")
}
