// Package input abstracts player controls from the underlying input backend.
package input

// Action is a logical control the game reacts to
type Action int

const (
	Up Action = iota
	Down
	Left
	Right
	Accelerate
	Brake
	Select
	Back
	Screenshot
	ToggleFullscreen
	actionCount
)

var actionNames = [...]string{
	Up:               "up",
	Down:             "down",
	Left:             "left",
	Right:            "right",
	Accelerate:       "accelerate",
	Brake:            "brake",
	Select:           "select",
	Back:             "back",
	Screenshot:       "screenshot",
	ToggleFullscreen: "toggle_fullscreen",
}

func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return "unknown"
	}
	return actionNames[a]
}

// Input reports the state of the player's controls for the current frame
type Input interface {
	// Pressed reports whether the action is held down
	Pressed(a Action) bool
	// JustPressed reports whether the action went down this frame
	JustPressed(a Action) bool
}

// State is an in-memory Input. Backends fill it once per frame;
// tests drive it directly.
type State struct {
	held [actionCount]bool
	just [actionCount]bool
}

// Pressed implements Input
func (s *State) Pressed(a Action) bool {
	if a < 0 || a >= actionCount {
		return false
	}
	return s.held[a]
}

// JustPressed implements Input
func (s *State) JustPressed(a Action) bool {
	if a < 0 || a >= actionCount {
		return false
	}
	return s.just[a]
}

// Set records the state of an action for this frame
func (s *State) Set(a Action, held, just bool) {
	if a < 0 || a >= actionCount {
		return
	}
	s.held[a] = held
	s.just[a] = just
}

// Press marks an action as held and just pressed
func (s *State) Press(a Action) {
	s.Set(a, true, true)
}

// Hold marks an action as held without a new press
func (s *State) Hold(a Action) {
	s.Set(a, true, false)
}

// Reset releases every action
func (s *State) Reset() {
	*s = State{}
}

// None is an Input with nothing pressed
var None Input = &State{}
