package models

import (
	"time"

	"github.com/golangdaddy/racinggame/pkg/input"
	"github.com/golangdaddy/racinggame/pkg/models/car"
	"github.com/golangdaddy/racinggame/pkg/track"
)

const (
	// UnitsPerSecondPerMPH converts mph into world units per second.
	// At 60 FPS 1 unit per frame is 12.5 mph.
	UnitsPerSecondPerMPH = 60.0 / 12.5

	// StartCountdown is the time between StartRace and the green light
	StartCountdown = 3 * time.Second

	// IdleCameraSpeed is the rotation of the menu camera in radians per second
	IdleCameraSpeed = 0.25

	coastDrag      = 6.0  // mph lost per second without throttle
	offRoadDrag    = 0.97 // speed multiplier per frame while scraping the edge
	steeringRate   = 3.0  // steering units per second
	steeringReturn = 6.0  // steering units per second back to center
	turnRate       = 160.0
)

// Camera is the chase camera state
type Camera struct {
	Rotation float64 // radians around the car, animated while idle
	Distance float64
	Height   float64
}

// Player holds the car physics state, the camera and the race timing.
// It is created once and ticked every frame.
type Player struct {
	Car   *car.Car
	Color int

	Speed    float64 // mph
	Steering float64 // -1 (left) to 1 (right)
	Lateral  float64 // offset from the racing line in world units
	Distance float64 // world units driven since the start line
	OffRoad  bool

	Camera   Camera
	GameTime time.Duration // total time ticked since creation

	track     *track.Track
	laps      int
	lap       int
	countdown time.Duration
	raceTime  time.Duration
	lapStart  time.Duration
	lapTimes  []time.Duration
	racing    bool
	finished  bool
}

// NewPlayer creates the player driving c
func NewPlayer(c *car.Car) *Player {
	return &Player{
		Car:    c,
		Camera: Camera{Distance: 12, Height: 4},
	}
}

// StartRace places the player on the start line of t
func (p *Player) StartRace(c *car.Car, color int, t *track.Track, laps int) {
	if laps < 1 {
		laps = 1
	}
	p.Reset()
	p.Car = c
	p.Color = color
	p.track = t
	p.laps = laps
	p.countdown = StartCountdown
	p.racing = true
}

// Reset drops any race in progress. GameTime keeps running.
func (p *Player) Reset() {
	p.Speed = 0
	p.Steering = 0
	p.Lateral = 0
	p.Distance = 0
	p.OffRoad = false
	p.track = nil
	p.laps = 0
	p.lap = 0
	p.countdown = 0
	p.raceTime = 0
	p.lapStart = 0
	p.lapTimes = nil
	p.racing = false
	p.finished = false
	p.Camera.Rotation = 0
}

// Racing reports whether a race was started and not reset
func (p *Player) Racing() bool {
	return p.racing
}

// Finished reports whether the last lap has been completed
func (p *Player) Finished() bool {
	return p.finished
}

// Countdown is the time left before the green light
func (p *Player) Countdown() time.Duration {
	return p.countdown
}

// RaceTime is the time since the green light
func (p *Player) RaceTime() time.Duration {
	return p.raceTime
}

// Lap returns the current lap (1-based) and the total number of laps
func (p *Player) Lap() (int, int) {
	if p.lap >= p.laps {
		return p.laps, p.laps
	}
	return p.lap + 1, p.laps
}

// LapTimes returns the completed lap times
func (p *Player) LapTimes() []time.Duration {
	out := make([]time.Duration, len(p.lapTimes))
	copy(out, p.lapTimes)
	return out
}

// Track returns the track being raced, nil while idle
func (p *Player) Track() *track.Track {
	return p.track
}

// Update advances the player by dt. It runs every frame whatever screen is
// active; without a race only the clock and the idle camera move.
func (p *Player) Update(in input.Input, dt time.Duration) {
	if dt <= 0 {
		return
	}
	p.GameTime += dt
	secs := dt.Seconds()

	if !p.racing || p.finished || p.Car == nil || p.track == nil {
		p.Camera.Rotation += IdleCameraSpeed * secs
		p.coast(secs)
		return
	}

	if p.countdown > 0 {
		p.countdown -= dt
		if p.countdown > 0 {
			return
		}
		// carry the overshoot into the race clock
		dt = -p.countdown
		secs = dt.Seconds()
		p.countdown = 0
	}
	p.raceTime += dt

	p.throttle(in, secs)
	p.steer(in, secs)
	p.move(secs)
	p.countLaps()
}

func (p *Player) coast(secs float64) {
	p.Speed -= coastDrag * secs
	if p.Speed < 0 {
		p.Speed = 0
	}
}

func (p *Player) throttle(in input.Input, secs float64) {
	switch {
	case in.Pressed(input.Accelerate):
		p.Speed += p.Car.Acceleration * secs
		if p.Speed > p.Car.MaxSpeed {
			p.Speed = p.Car.MaxSpeed
		}
	case in.Pressed(input.Brake):
		frames := secs * 60
		p.Speed -= p.Speed*p.Car.BrakeDeceleration()*frames + coastDrag*secs
		if p.Speed < 0 {
			p.Speed = 0
		}
	default:
		p.coast(secs)
	}
}

func (p *Player) steer(in input.Input, secs float64) {
	switch {
	case in.Pressed(input.Left):
		p.Steering -= steeringRate * secs
	case in.Pressed(input.Right):
		p.Steering += steeringRate * secs
	case p.Steering > 0:
		p.Steering -= steeringReturn * secs
		if p.Steering < 0 {
			p.Steering = 0
		}
	case p.Steering < 0:
		p.Steering += steeringReturn * secs
		if p.Steering > 0 {
			p.Steering = 0
		}
	}
	if p.Steering > 1 {
		p.Steering = 1
	}
	if p.Steering < -1 {
		p.Steering = -1
	}
}

func (p *Player) move(secs float64) {
	speedFactor := 0.0
	if p.Car.MaxSpeed > 0 {
		speedFactor = p.Speed / p.Car.MaxSpeed
	}
	p.Lateral += p.Steering * turnRate * speedFactor * p.Car.Handling * secs

	seg := p.track.SegmentAt(p.Distance)
	left, right := seg.Bounds()
	const margin = 10.0
	p.OffRoad = false
	if p.Lateral < left+margin {
		p.Lateral = left + margin
		p.OffRoad = true
	}
	if p.Lateral > right-margin {
		p.Lateral = right - margin
		p.OffRoad = true
	}
	if p.OffRoad {
		p.Speed *= offRoadDrag
	}

	p.Distance += p.Speed * UnitsPerSecondPerMPH * secs
}

func (p *Player) countLaps() {
	lapLength := p.track.Length()
	for !p.finished && p.Distance >= lapLength*float64(p.lap+1) {
		p.lapTimes = append(p.lapTimes, p.raceTime-p.lapStart)
		p.lapStart = p.raceTime
		p.lap++
		if p.lap >= p.laps {
			p.finished = true
		}
	}
}
