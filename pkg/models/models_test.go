package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/golangdaddy/racinggame/pkg/input"
	"github.com/golangdaddy/racinggame/pkg/models/car"
	"github.com/golangdaddy/racinggame/pkg/track"
)

const frame = time.Second / 60

func TestLevelWrapAndNames(t *testing.T) {
	tests := []struct {
		level Level
		want  string
		file  string
	}{
		{Beginner, "Beginner", "beginner.track"},
		{Advanced, "Advanced", "advanced.track"},
		{Expert, "Expert", "expert.track"},
		{Level(3), "Beginner", "beginner.track"},
		{Level(-1), "Expert", "expert.track"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", int(tt.level), got, tt.want)
		}
		if got := tt.level.TrackFile(); got != tt.file {
			t.Errorf("Level(%d).TrackFile() = %q, want %q", int(tt.level), got, tt.file)
		}
	}
}

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel(" advanced ")
	if err != nil || l != Advanced {
		t.Errorf("ParseLevel(advanced) = %v, %v", l, err)
	}
	if _, err := ParseLevel("insane"); err == nil {
		t.Error("ParseLevel(insane) should fail")
	}
}

func TestHighscoresAddKeepsOrderAndLimit(t *testing.T) {
	h := NewHighscores()
	for i := 0; i < MaxHighscores; i++ {
		rank := h.Add(Highscore{Name: "slow", Time: time.Duration(100+i) * time.Second, Level: Expert})
		if rank != i {
			t.Fatalf("Add #%d rank = %d, want %d", i, rank, i)
		}
	}

	if rank := h.Add(Highscore{Name: "slowest", Time: 500 * time.Second, Level: Expert}); rank != -1 {
		t.Errorf("too slow result got rank %d, want -1", rank)
	}

	if rank := h.Add(Highscore{Name: "fast", Time: 50 * time.Second, Level: Expert}); rank != 0 {
		t.Errorf("fastest result got rank %d, want 0", rank)
	}

	top := h.Top(Expert)
	if len(top) != MaxHighscores {
		t.Fatalf("table length = %d, want %d", len(top), MaxHighscores)
	}
	if top[0].Name != "fast" {
		t.Errorf("top entry = %q, want fast", top[0].Name)
	}
	for i := 1; i < len(top); i++ {
		if top[i-1].Time > top[i].Time {
			t.Fatalf("table not sorted at %d", i)
		}
	}
	if len(h.Top(Beginner)) != 0 {
		t.Error("other levels must stay empty")
	}
}

func TestHighscoresEqualTimesRankAfterExisting(t *testing.T) {
	h := NewHighscores()
	h.Add(Highscore{Name: "first", Time: time.Minute})
	if rank := h.Add(Highscore{Name: "second", Time: time.Minute}); rank != 1 {
		t.Errorf("equal time rank = %d, want 1", rank)
	}
	if rank := h.Rank(Beginner, 30*time.Second); rank != 0 {
		t.Errorf("Rank() = %d, want 0", rank)
	}
}

func TestDefaultHighscoresJSON(t *testing.T) {
	h := DefaultHighscores()
	for _, level := range Levels {
		if len(h.Top(level)) != MaxHighscores {
			t.Errorf("%v has %d entries, want %d", level, len(h.Top(level)), MaxHighscores)
		}
	}

	data, err := json.Marshal(h)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(data), `"Advanced"`) {
		t.Errorf("expected level names as keys, got %s", data)
	}

	var back Highscores
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got := back.Top(Expert)[0].Name; got != h.Top(Expert)[0].Name {
		t.Errorf("Expert leader = %q, want %q", got, h.Top(Expert)[0].Name)
	}
}

func TestFormatRaceTime(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00.00"},
		{-time.Second, "0:00.00"},
		{61*time.Second + 230*time.Millisecond, "1:01.23"},
		{10*time.Minute + 5*time.Second, "10:05.00"},
	}
	for _, tt := range tests {
		if got := FormatRaceTime(tt.d); got != tt.want {
			t.Errorf("FormatRaceTime(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestPlayerIdleTick(t *testing.T) {
	p := NewPlayer(car.DefaultCars()[0])

	for i := 0; i < 60; i++ {
		p.Update(input.None, frame)
	}

	if p.GameTime < 990*time.Millisecond {
		t.Errorf("GameTime = %v, want about 1s", p.GameTime)
	}
	if p.Camera.Rotation <= 0 {
		t.Error("idle camera should rotate")
	}
	if p.Speed != 0 || p.Distance != 0 {
		t.Errorf("idle player moved: speed %v distance %v", p.Speed, p.Distance)
	}
	if p.Racing() {
		t.Error("player should not be racing")
	}
}

func TestPlayerCountdownHoldsCar(t *testing.T) {
	p := NewPlayer(nil)
	tr, _ := track.Parse(strings.NewReader("XA\n"))
	p.StartRace(car.DefaultCars()[2], 0, tr, 1)

	var in input.State
	in.Hold(input.Accelerate)
	for i := 0; i < 60; i++ {
		p.Update(&in, frame)
	}

	if p.Distance != 0 || p.RaceTime() != 0 {
		t.Errorf("car moved during countdown: distance %v race time %v", p.Distance, p.RaceTime())
	}
	if p.Countdown() <= 0 {
		t.Error("countdown should still be running")
	}
}

func TestPlayerFinishesRace(t *testing.T) {
	p := NewPlayer(nil)
	tr, _ := track.Parse(strings.NewReader("XA\n"))
	raceCar := car.DefaultCars()[2]
	p.StartRace(raceCar, 1, tr, 2)

	var in input.State
	in.Hold(input.Accelerate)

	for i := 0; i < 60*120 && !p.Finished(); i++ {
		p.Update(&in, frame)
		if p.Speed > raceCar.MaxSpeed {
			t.Fatalf("speed %v exceeds max %v", p.Speed, raceCar.MaxSpeed)
		}
	}

	if !p.Finished() {
		t.Fatal("race did not finish")
	}
	laps := p.LapTimes()
	if len(laps) != 2 {
		t.Fatalf("got %d lap times, want 2", len(laps))
	}
	var sum time.Duration
	for _, l := range laps {
		sum += l
	}
	if sum != p.RaceTime() {
		t.Errorf("lap times sum %v != race time %v", sum, p.RaceTime())
	}
	if lap, total := p.Lap(); lap != 2 || total != 2 {
		t.Errorf("Lap() = %d/%d, want 2/2", lap, total)
	}

	finishedAt := p.RaceTime()
	p.Update(&in, frame)
	if p.RaceTime() != finishedAt {
		t.Error("race clock must stop after the finish")
	}
}

func TestPlayerStaysOnRoad(t *testing.T) {
	p := NewPlayer(nil)
	tr, _ := track.Parse(strings.NewReader("XA\n"))
	p.StartRace(car.DefaultCars()[1], 0, tr, 5)

	var in input.State
	in.Hold(input.Accelerate)
	in.Hold(input.Right)

	for i := 0; i < 60*10; i++ {
		p.Update(&in, frame)
	}

	left, right := tr.Segments[0].Bounds()
	if p.Lateral < left || p.Lateral > right {
		t.Errorf("lateral %v outside road [%v, %v]", p.Lateral, left, right)
	}
	if !p.OffRoad {
		t.Error("holding right should end up scraping the edge")
	}
	if p.Steering != 1 {
		t.Errorf("Steering = %v, want 1", p.Steering)
	}
}

func TestPlayerBrakes(t *testing.T) {
	p := NewPlayer(nil)
	tr := track.Default()
	p.StartRace(car.DefaultCars()[0], 0, tr, 3)
	p.countdown = 0
	p.Speed = 100

	var in input.State
	in.Hold(input.Brake)
	p.Update(&in, frame)

	if p.Speed >= 100 {
		t.Errorf("braking did not slow the car: %v", p.Speed)
	}
	for i := 0; i < 60*30; i++ {
		p.Update(&in, frame)
	}
	if p.Speed != 0 {
		t.Errorf("car should come to a stop, speed %v", p.Speed)
	}
}

func TestPlayerResetKeepsClock(t *testing.T) {
	p := NewPlayer(nil)
	p.StartRace(car.DefaultCars()[0], 0, track.Default(), 1)
	p.Update(input.None, time.Second)
	p.Reset()

	if p.Racing() || p.Track() != nil {
		t.Error("Reset should end the race")
	}
	if p.GameTime != time.Second {
		t.Errorf("GameTime = %v, want 1s", p.GameTime)
	}
}
