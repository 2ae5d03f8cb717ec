package models

import (
	"fmt"
	"sort"
	"time"

	"github.com/golangdaddy/racinggame/pkg/data"
)

// MaxHighscores is the number of entries kept per level
const MaxHighscores = 10

// Highscore is one finished race
type Highscore struct {
	Name  string        `json:"name"`
	Time  time.Duration `json:"time"`
	Car   string        `json:"car,omitempty"`
	Level Level         `json:"level"`
}

// FormatRaceTime renders a race time as m:ss.hh
func FormatRaceTime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	hundredths := int(d / (10 * time.Millisecond))
	return fmt.Sprintf("%d:%02d.%02d", hundredths/6000, (hundredths/100)%60, hundredths%100)
}

// Highscores keeps the fastest race times per level, fastest first
type Highscores struct {
	Tables map[Level][]Highscore `json:"tables"`
}

// NewHighscores creates empty tables
func NewHighscores() *Highscores {
	return &Highscores{Tables: make(map[Level][]Highscore)}
}

// DefaultHighscores seeds every level with slow times so the table is never empty
func DefaultHighscores() *Highscores {
	h := NewHighscores()
	for _, level := range Levels {
		base := time.Duration(level.Laps()) * 50 * time.Second
		for i := 0; i < MaxHighscores; i++ {
			name := data.DriverNames[(int(level)*MaxHighscores+i)%len(data.DriverNames)]
			h.Add(Highscore{
				Name:  name,
				Time:  base + time.Duration(i)*7*time.Second,
				Level: level,
			})
		}
	}
	return h
}

// Add inserts a result and returns its zero-based rank, or -1 when the result
// is not fast enough to be kept
func (h *Highscores) Add(entry Highscore) int {
	if h.Tables == nil {
		h.Tables = make(map[Level][]Highscore)
	}
	entry.Level = entry.Level.Wrap()
	table := h.Tables[entry.Level]

	rank := sort.Search(len(table), func(i int) bool {
		return table[i].Time > entry.Time
	})
	if rank >= MaxHighscores {
		return -1
	}

	table = append(table, Highscore{})
	copy(table[rank+1:], table[rank:])
	table[rank] = entry
	if len(table) > MaxHighscores {
		table = table[:MaxHighscores]
	}
	h.Tables[entry.Level] = table
	return rank
}

// Rank returns the rank a time would get without inserting it, or -1
func (h *Highscores) Rank(level Level, t time.Duration) int {
	table := h.Tables[level.Wrap()]
	rank := sort.Search(len(table), func(i int) bool {
		return table[i].Time > t
	})
	if rank >= MaxHighscores {
		return -1
	}
	return rank
}

// Top returns a copy of the table for a level
func (h *Highscores) Top(level Level) []Highscore {
	table := h.Tables[level.Wrap()]
	out := make([]Highscore, len(table))
	copy(out, table)
	return out
}
