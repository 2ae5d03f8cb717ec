package models

import (
	"fmt"
	"strings"
)

// Level identifies one of the tracks
type Level int

const (
	Beginner Level = iota
	Advanced
	Expert
	levelCount
)

// Levels lists every level in menu order
var Levels = []Level{Beginner, Advanced, Expert}

// Wrap maps any value onto a valid level
func (l Level) Wrap() Level {
	m := l % levelCount
	if m < 0 {
		m += levelCount
	}
	return m
}

func (l Level) String() string {
	switch l.Wrap() {
	case Beginner:
		return "Beginner"
	case Advanced:
		return "Advanced"
	default:
		return "Expert"
	}
}

// TrackFile is the file name of the level's track description
func (l Level) TrackFile() string {
	return strings.ToLower(l.String()) + ".track"
}

// Laps is the number of laps raced on the level
func (l Level) Laps() int {
	switch l.Wrap() {
	case Beginner:
		return 2
	case Advanced:
		return 3
	default:
		return 3
	}
}

// MarshalText implements encoding.TextMarshaler so settings store level names
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (l *Level) UnmarshalText(b []byte) error {
	parsed, err := ParseLevel(string(b))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// ParseLevel parses a level name, case insensitive
func ParseLevel(s string) (Level, error) {
	for _, l := range Levels {
		if strings.EqualFold(l.String(), strings.TrimSpace(s)) {
			return l, nil
		}
	}
	return Beginner, fmt.Errorf("unknown level %q", s)
}
