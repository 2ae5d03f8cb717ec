package ui

import (
	"github.com/golangdaddy/racinggame/pkg/app"
	"github.com/golangdaddy/racinggame/pkg/input"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	menuRace = iota
	menuCar
	menuTrack
	menuHighscores
	menuOptions
	menuHelp
	menuExit
)

// MainMenu is the hub every other screen returns to
type MainMenu struct {
	base
	menu menu
}

func NewMainMenu() *MainMenu {
	return &MainMenu{
		menu: newMenu("Race", "Car Selection", "Track Selection", "Highscores", "Options", "Help", "Exit"),
	}
}

func (m *MainMenu) Kind() app.Kind { return app.KindMainMenu }

func (m *MainMenu) OnEnter(ctx *app.Context) {
	ctx.Sound.PlayMusic()
}

func (m *MainMenu) Update(ctx *app.Context) error {
	// resumes after a race stopped it
	ctx.Sound.PlayMusic()

	if ctx.Input.JustPressed(input.Back) {
		m.finish()
		return nil
	}
	if !m.menu.update(ctx) {
		return nil
	}

	switch m.menu.selected {
	case menuRace:
		ctx.Sound.StopMusic()
		ctx.Manager.AddGameScreen(NewGameScreen(ctx))
	case menuCar:
		ctx.Manager.AddGameScreen(NewCarSelection())
	case menuTrack:
		ctx.Manager.AddGameScreen(NewTrackSelection())
	case menuHighscores:
		ctx.Manager.AddGameScreen(NewHighscores(ctx.Settings.Level, -1))
	case menuOptions:
		ctx.Manager.AddGameScreen(NewOptions())
	case menuHelp:
		ctx.Manager.AddGameScreen(NewHelp())
	case menuExit:
		m.finish()
	}
	return nil
}

func (m *MainMenu) Draw(screen *ebiten.Image) {
	drawBackdrop(screen)
	drawTitle(screen, "RACING GAME")
	m.menu.draw(screen, 150, nil)
	drawHint(screen, "Arrow Keys: Navigate | Enter: Select | Esc: Exit")
}
