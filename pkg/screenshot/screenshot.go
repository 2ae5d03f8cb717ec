// Package screenshot writes numbered PNG captures into the screenshots directory.
package screenshot

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
)

// MaxScreenshots is the highest number tried before giving up
const MaxScreenshots = 9999

// ErrNoFreeName is returned when every screenshot number is taken
var ErrNoFreeName = errors.New("no free screenshot name")

// Name returns the file name for screenshot number n
func Name(n int) string {
	return fmt.Sprintf("screenshot%04d.png", n)
}

// NextPath returns the first unused screenshot path in dir
func NextPath(dir string) (string, error) {
	for n := 1; n <= MaxScreenshots; n++ {
		path := filepath.Join(dir, Name(n))
		_, err := os.Stat(path)
		if errors.Is(err, fs.ErrNotExist) {
			return path, nil
		}
		if err != nil {
			return "", err
		}
	}
	return "", ErrNoFreeName
}

// Save encodes img as PNG under the next free name in dir and returns the path
func Save(dir string, img image.Image) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	path, err := NextPath(dir)
	if err != nil {
		return "", err
	}

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return "", fmt.Errorf("failed to encode screenshot: %w", err)
	}
	return path, f.Close()
}
