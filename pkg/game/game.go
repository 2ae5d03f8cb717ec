// Package game adapts the screen manager to ebiten's game loop.
package game

import (
	"github.com/golangdaddy/racinggame/pkg/app"
	"github.com/golangdaddy/racinggame/pkg/input"
	"github.com/golangdaddy/racinggame/pkg/input/ebitenin"
	"github.com/golangdaddy/racinggame/pkg/screenshot"
	"github.com/golangdaddy/racinggame/pkg/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
)

// Game implements the ebiten.Game interface on top of the screen manager
type Game struct {
	manager  *app.Manager
	keyboard *ebitenin.Keyboard

	screenshot bool
}

// New creates the game and pushes the splash screen with the logo on top
func New(manager *app.Manager, keyboard *ebitenin.Keyboard) *Game {
	g := &Game{
		manager:  manager,
		keyboard: keyboard,
	}
	manager.AddGameScreen(ui.NewSplash())
	manager.AddGameScreen(ui.NewLogo())
	return g
}

// Manager returns the screen manager driven by the game
func (g *Game) Manager() *app.Manager {
	return g.manager
}

// Update handles game logic updates
func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		g.manager.Quit()
	}
	if g.manager.Exiting() {
		return ebiten.Termination
	}

	g.keyboard.Poll()
	ctx := g.manager.Context()

	if ctx.Input.JustPressed(input.ToggleFullscreen) {
		ctx.Settings.Fullscreen = !ctx.Settings.Fullscreen
		ebiten.SetFullscreen(ctx.Settings.Fullscreen)
	}
	if ctx.Input.JustPressed(input.Screenshot) {
		g.screenshot = true
	}

	if err := g.manager.Update(); err != nil {
		return err
	}
	if g.manager.Exiting() {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the active screen
func (g *Game) Draw(screen *ebiten.Image) {
	g.manager.Render(func(s app.Screen) {
		if d, ok := s.(ui.Drawer); ok {
			d.Draw(screen)
		}
	})

	if g.screenshot {
		g.screenshot = false
		g.saveScreenshot(screen)
	}
}

func (g *Game) saveScreenshot(screen *ebiten.Image) {
	dir, err := g.manager.Context().Dirs.EnsureScreenshots()
	if err != nil {
		log.Error().Err(err).Msg("Failed to create screenshot directory")
		return
	}
	path, err := screenshot.Save(dir, screen)
	if err != nil {
		log.Error().Err(err).Msg("Failed to save screenshot")
		return
	}
	log.Info().Str("file", path).Msg("Screenshot saved")
}

// Layout returns the resolution the window was opened with
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	r := g.manager.Context().Settings.Applied
	return r.Width, r.Height
}
