package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/golangdaddy/racinggame/pkg/models"
)

// Resolution is a window size in pixels
type Resolution struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

// Valid reports whether both dimensions are positive
func (r Resolution) Valid() bool {
	return r.Width > 0 && r.Height > 0
}

// Resolutions offered in the options screen
var Resolutions = []Resolution{
	{800, 600},
	{1024, 600},
	{1024, 768},
	{1280, 720},
	{1280, 800},
	{1600, 900},
	{1920, 1080},
}

// DefaultResolution is used on first start
var DefaultResolution = Resolution{1024, 600}

// Settings is everything persisted between runs
type Settings struct {
	// Applied is the resolution the window was opened with.
	// Requested is what the options screen asked for; the two differ until
	// the game restarts.
	Applied    Resolution `json:"applied_resolution"`
	Requested  Resolution `json:"requested_resolution"`
	Fullscreen bool       `json:"fullscreen"`

	SoundVolume float64 `json:"sound_volume"`
	MusicVolume float64 `json:"music_volume"`

	PlayerName string       `json:"player_name"`
	CarIndex   int          `json:"car_index"`
	ColorIndex int          `json:"color_index"`
	Level      models.Level `json:"level"`

	Highscores *models.Highscores `json:"highscores"`
}

// Defaults returns the settings used when nothing was saved yet
func Defaults() *Settings {
	return &Settings{
		Applied:     DefaultResolution,
		Requested:   DefaultResolution,
		SoundVolume: 0.8,
		MusicVolume: 0.6,
		PlayerName:  "Player",
		Level:       models.Beginner,
		Highscores:  models.DefaultHighscores(),
	}
}

// Load reads settings from path. A missing file yields the defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Defaults(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	s := Defaults()
	if err := json.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	s.normalize()
	return s, nil
}

// Save writes the settings to path as indented JSON
func (s *Settings) Save(path string) error {
	s.normalize()

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings dir: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// ResolutionChanged reports whether the options screen requested a resolution
// that is not applied yet
func (s *Settings) ResolutionChanged() bool {
	return s.Requested != s.Applied
}

// ApplyResolution makes the requested resolution the applied one
func (s *Settings) ApplyResolution() {
	s.Applied = s.Requested
}

func (s *Settings) normalize() {
	if !s.Applied.Valid() {
		s.Applied = DefaultResolution
	}
	if !s.Requested.Valid() {
		s.Requested = s.Applied
	}
	s.SoundVolume = clamp01(s.SoundVolume)
	s.MusicVolume = clamp01(s.MusicVolume)
	s.Level = s.Level.Wrap()
	if s.PlayerName == "" {
		s.PlayerName = "Player"
	}
	if s.Highscores == nil {
		s.Highscores = models.DefaultHighscores()
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
