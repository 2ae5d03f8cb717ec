package directories

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPathsAreSiblings(t *testing.T) {
	base := filepath.Join("games", "racing")
	dirs := New(base)

	tests := []struct {
		kind Kind
		want string
	}{
		{Content, filepath.Join(base, "content")},
		{Sounds, filepath.Join(base, "sounds")},
		{Textures, filepath.Join(base, "textures")},
		{Screenshots, filepath.Join(base, "screenshots")},
		{Tracks, filepath.Join(base, "tracks")},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			got := dirs.Path(tt.kind)
			if got != tt.want {
				t.Errorf("Path(%v) = %q, want %q", tt.kind, got, tt.want)
			}
			if filepath.Dir(got) != base {
				t.Errorf("Path(%v) parent = %q, want %q", tt.kind, filepath.Dir(got), base)
			}
		})
	}
}

func TestFilesUnderBase(t *testing.T) {
	dirs := New("root")

	if got, want := dirs.SettingsFile(), filepath.Join("root", "settings.json"); got != want {
		t.Errorf("SettingsFile() = %q, want %q", got, want)
	}
	if got, want := dirs.LogFile(), filepath.Join("root", "racinggame.log"); got != want {
		t.Errorf("LogFile() = %q, want %q", got, want)
	}
	if got, want := dirs.File(Sounds, "click.wav"), filepath.Join("root", "sounds", "click.wav"); got != want {
		t.Errorf("File() = %q, want %q", got, want)
	}
}

func TestEnsureScreenshots(t *testing.T) {
	dirs := New(t.TempDir())

	dir, err := dirs.EnsureScreenshots()
	if err != nil {
		t.Fatalf("EnsureScreenshots() error: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("screenshots dir missing: %v", err)
	}
	if !info.IsDir() {
		t.Errorf("%s is not a directory", dir)
	}

	// Second call must not fail on an existing directory
	if _, err := dirs.EnsureScreenshots(); err != nil {
		t.Errorf("EnsureScreenshots() second call error: %v", err)
	}
}

func TestDefaultIsNotEmpty(t *testing.T) {
	if Default().Base == "" {
		t.Error("Default() returned an empty base")
	}
}
