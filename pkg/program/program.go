// Package program is the process entry point: it loads the settings, runs the
// game inside a guarded scope, persists the settings and relaunches the
// process when a new resolution has to be applied.
package program

import (
	"errors"
	"io"
	"os"
	"os/exec"

	"github.com/golangdaddy/racinggame/pkg/config"
	"github.com/golangdaddy/racinggame/pkg/directories"
	"github.com/golangdaddy/racinggame/pkg/logging"
	"github.com/rs/zerolog/log"
)

// PlayFunc runs the game loop and reports whether a restart was requested
type PlayFunc func(settings *config.Settings, dirs directories.Directories) (restart bool, err error)

// Options configures Run
type Options struct {
	Dirs directories.Directories
	Play PlayFunc

	// Relaunch starts a new instance of the game; defaults to re-executing
	// the current binary with the same arguments
	Relaunch func() error

	// Log receives console output; defaults to stdout
	Log io.Writer
}

// ErrNoPlay is returned when Options carries no game loop
var ErrNoPlay = errors.New("no game loop to run")

// Run executes the game and returns the process exit code
func Run(opts Options) int {
	return run(opts, func(s *config.Settings, path string) error {
		return s.Save(path)
	})
}

func run(opts Options, save func(*config.Settings, string) error) int {
	if opts.Log == nil {
		opts.Log = os.Stdout
	}
	if opts.Relaunch == nil {
		opts.Relaunch = relaunch
	}
	logging.Setup(opts.Log, debugBuild)

	settingsPath := opts.Dirs.SettingsFile()
	settings, err := config.Load(settingsPath)
	if err != nil {
		log.Warn().Err(err).Str("file", settingsPath).Msg("Settings unreadable, using defaults")
		settings = config.Defaults()
	}
	settings.ApplyResolution()

	restart, err := func() (bool, error) {
		defer func() {
			if err := save(settings, settingsPath); err != nil {
				log.Error().Err(err).Str("file", settingsPath).Msg("Failed to save settings")
			}
		}()
		return catch(func() (bool, error) {
			if opts.Play == nil {
				return false, ErrNoPlay
			}
			return opts.Play(settings, opts.Dirs)
		})
	}()

	if err != nil {
		log.Error().Err(err).Msg("Game terminated")
		if lerr := logging.AppendFatal(opts.Dirs.LogFile(), err); lerr != nil {
			log.Error().Err(lerr).Msg("Failed to write log file")
		}
		return 1
	}

	if restart {
		log.Info().Msg("Relaunching")
		if err := opts.Relaunch(); err != nil {
			log.Error().Err(err).Msg("Failed to relaunch")
			return 1
		}
	}
	return 0
}

func relaunch() error {
	exe, err := os.Executable()
	if err != nil {
		return err
	}
	cmd := exec.Command(exe, os.Args[1:]...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Start()
}
