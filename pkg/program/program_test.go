package program

import (
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/golangdaddy/racinggame/pkg/config"
	"github.com/golangdaddy/racinggame/pkg/directories"
)

type recorder struct {
	events []string
	saves  int
}

func (r *recorder) save(s *config.Settings, path string) error {
	r.saves++
	r.events = append(r.events, "save")
	return s.Save(path)
}

func (r *recorder) relaunch() error {
	r.events = append(r.events, "relaunch")
	return nil
}

func newOptions(t *testing.T, rec *recorder, play PlayFunc) Options {
	t.Helper()
	return Options{
		Dirs:     directories.New(t.TempDir()),
		Play:     play,
		Relaunch: rec.relaunch,
		Log:      io.Discard,
	}
}

func TestRunSavesSettingsOnce(t *testing.T) {
	rec := &recorder{}
	opts := newOptions(t, rec, func(s *config.Settings, _ directories.Directories) (bool, error) {
		s.PlayerName = "Ayrton"
		return false, nil
	})

	if code := run(opts, rec.save); code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if rec.saves != 1 {
		t.Errorf("settings saved %d times, want 1", rec.saves)
	}

	saved, err := config.Load(opts.Dirs.SettingsFile())
	if err != nil {
		t.Fatal(err)
	}
	if saved.PlayerName != "Ayrton" {
		t.Errorf("saved name = %q, want Ayrton", saved.PlayerName)
	}
}

func TestRunRecoversPanic(t *testing.T) {
	rec := &recorder{}
	opts := newOptions(t, rec, func(*config.Settings, directories.Directories) (bool, error) {
		panic("engine blew up")
	})

	if code := run(opts, rec.save); code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if rec.saves != 1 {
		t.Errorf("settings saved %d times after panic, want 1", rec.saves)
	}

	data, err := os.ReadFile(opts.Dirs.LogFile())
	if err != nil {
		t.Fatalf("log file missing: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1 {
		t.Fatalf("log has %d lines, want 1", len(lines))
	}
	if !strings.Contains(lines[0], `"level":"fatal"`) || !strings.Contains(lines[0], "engine blew up") {
		t.Errorf("unexpected log line: %s", lines[0])
	}
}

func TestRunLogsError(t *testing.T) {
	rec := &recorder{}
	opts := newOptions(t, rec, func(*config.Settings, directories.Directories) (bool, error) {
		return false, errors.New("no graphics device")
	})

	if code := run(opts, rec.save); code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if rec.saves != 1 {
		t.Errorf("settings saved %d times, want 1", rec.saves)
	}
	data, _ := os.ReadFile(opts.Dirs.LogFile())
	if !strings.Contains(string(data), "no graphics device") {
		t.Errorf("log file does not mention the error: %s", data)
	}
}

func TestRunRelaunchesAfterSaving(t *testing.T) {
	rec := &recorder{}
	opts := newOptions(t, rec, func(*config.Settings, directories.Directories) (bool, error) {
		return true, nil
	})

	if code := run(opts, rec.save); code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if got := strings.Join(rec.events, ","); got != "save,relaunch" {
		t.Errorf("events = %s, want save,relaunch", got)
	}
}

func TestRunAppliesRequestedResolution(t *testing.T) {
	rec := &recorder{}
	var applied config.Resolution
	opts := newOptions(t, rec, func(s *config.Settings, _ directories.Directories) (bool, error) {
		applied = s.Applied
		return false, nil
	})

	s := config.Defaults()
	s.Requested = config.Resolution{Width: 1280, Height: 720}
	if err := s.Save(opts.Dirs.SettingsFile()); err != nil {
		t.Fatal(err)
	}

	run(opts, rec.save)
	if applied != s.Requested {
		t.Errorf("applied = %v, want %v", applied, s.Requested)
	}
}

func TestRunWithCorruptSettings(t *testing.T) {
	rec := &recorder{}
	played := false
	opts := newOptions(t, rec, func(s *config.Settings, _ directories.Directories) (bool, error) {
		played = true
		if s.Applied != config.DefaultResolution {
			t.Errorf("applied = %v, want defaults", s.Applied)
		}
		return false, nil
	})
	if err := os.WriteFile(opts.Dirs.SettingsFile(), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if code := run(opts, rec.save); code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if !played {
		t.Error("game should start with default settings")
	}
}
