package game

import (
	"github.com/golangdaddy/racinggame/pkg/app"
	"github.com/golangdaddy/racinggame/pkg/config"
	"github.com/golangdaddy/racinggame/pkg/directories"
	"github.com/golangdaddy/racinggame/pkg/input/ebitenin"
	"github.com/golangdaddy/racinggame/pkg/models/car"
	"github.com/golangdaddy/racinggame/pkg/sound"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
)

// WindowTitle is shown in the title bar
const WindowTitle = "Racing Game"

// Play opens the window and runs the game loop until the player exits.
// It reports whether the game has to be relaunched to apply a new resolution.
func Play(settings *config.Settings, dirs directories.Directories) (bool, error) {
	var player app.SoundPlayer = app.Silent{}
	snd, err := sound.Load(dirs.Path(directories.Sounds), settings.SoundVolume, settings.MusicVolume)
	if err != nil {
		log.Warn().Err(err).Msg("Sound disabled")
	} else {
		player = snd
	}

	keyboard := ebitenin.New()
	ctx := app.NewContext(settings, dirs, car.DefaultAssets(), keyboard, player)
	manager := app.NewManager(ctx)
	g := New(manager, keyboard)

	ebiten.SetWindowSize(settings.Applied.Width, settings.Applied.Height)
	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetFullscreen(settings.Fullscreen)
	ebiten.SetWindowClosingHandled(true)

	log.Info().Stringer("resolution", settings.Applied).Bool("fullscreen", settings.Fullscreen).Msg("Starting game loop")
	if err := ebiten.RunGame(g); err != nil {
		return false, err
	}
	return manager.RestartRequested(), nil
}
