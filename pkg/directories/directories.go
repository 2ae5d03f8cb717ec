package directories

import (
	"os"
	"path/filepath"
)

// Kind names one of the game's data directories
type Kind int

const (
	Content Kind = iota
	Sounds
	Textures
	Screenshots
	Tracks
)

const (
	settingsFileName = "settings.json"
	logFileName      = "racinggame.log"
)

// String returns the on-disk directory name for the kind
func (k Kind) String() string {
	switch k {
	case Content:
		return "content"
	case Sounds:
		return "sounds"
	case Textures:
		return "textures"
	case Screenshots:
		return "screenshots"
	case Tracks:
		return "tracks"
	}
	return "unknown"
}

// Directories resolves paths relative to the title storage root.
// All data directories are siblings under Base.
type Directories struct {
	Base string
}

// New creates a resolver rooted at base
func New(base string) Directories {
	return Directories{Base: base}
}

// Default roots the directories next to the running executable.
// If the executable cannot be located the working directory is used instead.
func Default() Directories {
	exe, err := os.Executable()
	if err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		return New(filepath.Dir(exe))
	}
	wd, err := os.Getwd()
	if err != nil {
		return New(".")
	}
	return New(wd)
}

// Path returns the directory for kind
func (d Directories) Path(kind Kind) string {
	return filepath.Join(d.Base, kind.String())
}

// File returns the path of name inside the directory for kind
func (d Directories) File(kind Kind, name string) string {
	return filepath.Join(d.Path(kind), name)
}

// SettingsFile is where the player's settings are persisted
func (d Directories) SettingsFile() string {
	return filepath.Join(d.Base, settingsFileName)
}

// LogFile is where fatal errors are appended
func (d Directories) LogFile() string {
	return filepath.Join(d.Base, logFileName)
}

// EnsureScreenshots creates the screenshots directory if it does not exist yet
func (d Directories) EnsureScreenshots() (string, error) {
	dir := d.Path(Screenshots)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}
