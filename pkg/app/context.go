package app

import (
	"errors"
	"io/fs"
	"time"

	"github.com/golangdaddy/racinggame/pkg/config"
	"github.com/golangdaddy/racinggame/pkg/directories"
	"github.com/golangdaddy/racinggame/pkg/input"
	"github.com/golangdaddy/racinggame/pkg/models"
	"github.com/golangdaddy/racinggame/pkg/models/car"
	"github.com/golangdaddy/racinggame/pkg/track"
	"github.com/rs/zerolog/log"
)

// Sound is one of the fixed UI and race sound effects
type Sound int

const (
	SoundClick Sound = iota
	SoundBack
	SoundExit
	SoundHighlight
	SoundCountdown
	SoundGo
	SoundLap
	SoundVictory
	SoundCrash
)

// SoundFiles maps each effect to its file under the sounds directory
var SoundFiles = map[Sound]string{
	SoundClick:     "click.wav",
	SoundBack:      "back.wav",
	SoundExit:      "exit.wav",
	SoundHighlight: "highlight.wav",
	SoundCountdown: "countdown.wav",
	SoundGo:        "go.wav",
	SoundLap:       "lap.wav",
	SoundVictory:   "victory.wav",
	SoundCrash:     "crash.wav",
}

// SoundPlayer plays effects and the menu music
type SoundPlayer interface {
	Play(s Sound)
	PlayMusic()
	StopMusic()
	SetVolumes(sound, music float64)
}

// Silent is a SoundPlayer that plays nothing
type Silent struct{}

func (Silent) Play(Sound)                  {}
func (Silent) PlayMusic()                  {}
func (Silent) StopMusic()                  {}
func (Silent) SetVolumes(float64, float64) {}

// FrameTime is the fixed tick of the game loop
const FrameTime = time.Second / 60

// Context is the explicit application state shared by all screens.
// It is owned by the manager and only touched from the frame loop.
type Context struct {
	Settings *config.Settings
	Dirs     directories.Directories
	Assets   *car.Assets
	Player   *models.Player
	Input    input.Input
	Sound    SoundPlayer

	// Manager lets screens push further screens
	Manager *Manager
}

// NewContext builds a context with a fresh player driving the selected car
func NewContext(settings *config.Settings, dirs directories.Directories, assets *car.Assets, in input.Input, sound SoundPlayer) *Context {
	if in == nil {
		in = input.None
	}
	if sound == nil {
		sound = Silent{}
	}
	return &Context{
		Settings: settings,
		Dirs:     dirs,
		Assets:   assets,
		Player:   models.NewPlayer(assets.Cars.At(settings.CarIndex)),
		Input:    in,
		Sound:    sound,
	}
}

// SelectedCar is the car chosen in car selection
func (c *Context) SelectedCar() *car.Car {
	return c.Assets.Cars.At(c.Settings.CarIndex)
}

// SelectedColor is the palette index chosen in car selection, always valid
func (c *Context) SelectedColor() int {
	return c.Assets.Palette.Index(c.Settings.ColorIndex)
}

// LoadTrack reads the track for level, falling back to the built-in track
func (c *Context) LoadTrack(level models.Level) *track.Track {
	path := c.Dirs.File(directories.Tracks, level.TrackFile())
	t, err := track.Load(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Warn().Err(err).Str("level", level.String()).Msg("Track unreadable, using built-in track")
		}
		return track.Default()
	}
	return t
}

// StartRace puts the player on the start line of the selected level
func (c *Context) StartRace() {
	level := c.Settings.Level
	c.Player.StartRace(c.SelectedCar(), c.SelectedColor(), c.LoadTrack(level), level.Laps())
	log.Info().
		Str("level", level.String()).
		Str("car", c.SelectedCar().Name()).
		Msg("Race started")
}
