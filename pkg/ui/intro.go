package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/golangdaddy/racinggame/pkg/app"
	"github.com/golangdaddy/racinggame/pkg/input"
	"github.com/hajimehoshi/ebiten/v2"
)

// LogoDuration is how long the logo stays up unless skipped
const LogoDuration = 2 * time.Second

// Logo shows the studio logo for a fixed time
type Logo struct {
	base
	elapsed time.Duration
}

func NewLogo() *Logo {
	return &Logo{}
}

func (l *Logo) Kind() app.Kind { return app.KindLogo }

func (l *Logo) Update(ctx *app.Context) error {
	l.elapsed += app.FrameTime
	if l.elapsed >= LogoDuration || ctx.Input.JustPressed(input.Select) || ctx.Input.JustPressed(input.Back) {
		l.finish()
	}
	return nil
}

func (l *Logo) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	w, h := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

	// fade in over the first half, out over the second
	t := l.elapsed.Seconds() / LogoDuration.Seconds()
	alpha := math.Sin(math.Min(t, 1) * math.Pi)
	clr := color.RGBA{uint8(255 * alpha), uint8(255 * alpha), uint8(255 * alpha), 255}
	drawCentered(screen, "GOLANGDADDY", w/2, h/2-24, 4, clr, titleFace)
	drawCentered(screen, "presents", w/2, h/2+48, 1.5, clr, titleFace)
}

// Splash is the title screen. Continuing pushes the main menu.
type Splash struct {
	base
	elapsed time.Duration
}

func NewSplash() *Splash {
	return &Splash{}
}

func (s *Splash) Kind() app.Kind { return app.KindSplash }

func (s *Splash) Update(ctx *app.Context) error {
	s.elapsed += app.FrameTime
	switch {
	case ctx.Input.JustPressed(input.Select):
		ctx.Manager.AddGameScreen(NewMainMenu())
		// leaving the main menu leaves the game
		s.finish()
	case ctx.Input.JustPressed(input.Back):
		s.finish()
	}
	return nil
}

func (s *Splash) Draw(screen *ebiten.Image) {
	drawBackdrop(screen)
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	elapsed := s.elapsed.Seconds()

	pulse := 1.0 + 0.1*math.Sin(elapsed*2.0)
	brightness := math.Min(1.0+0.2*math.Sin(elapsed*1.5), 1.0)
	titleColor := color.RGBA{
		uint8(255 * brightness),
		uint8(200 * brightness),
		uint8(50 * brightness),
		255,
	}
	drawCentered(screen, "RACING GAME", width/2, height/3-8, 6*pulse, titleColor, titleFace)
	drawCentered(screen, "Arcade Circuit Racing", width/2, height/3+80, 2, color.RGBA{180, 180, 200, 255}, titleFace)

	// blink every half second
	if int(elapsed*2)%2 == 0 {
		drawCentered(screen, "Press ENTER to Start", width/2, height-100, 1.5, color.RGBA{150, 200, 255, 255}, titleFace)
	}

	line := color.RGBA{50, 60, 80, 100}
	fillRect(screen, 0, height/6, width, 2, line)
	fillRect(screen, 0, height*5/6, width, 2, line)
}
