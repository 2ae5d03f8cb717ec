package input

import "testing"

func TestStatePressAndReset(t *testing.T) {
	var s State

	s.Press(Select)
	if !s.Pressed(Select) || !s.JustPressed(Select) {
		t.Error("Press(Select) should set held and just pressed")
	}

	s.Hold(Accelerate)
	if !s.Pressed(Accelerate) {
		t.Error("Hold(Accelerate) should set held")
	}
	if s.JustPressed(Accelerate) {
		t.Error("Hold(Accelerate) should not set just pressed")
	}

	s.Reset()
	for a := Up; a < actionCount; a++ {
		if s.Pressed(a) || s.JustPressed(a) {
			t.Errorf("%v still active after Reset", a)
		}
	}
}

func TestOutOfRangeActions(t *testing.T) {
	var s State
	s.Set(Action(-1), true, true)
	s.Set(actionCount, true, true)

	if s.Pressed(Action(-1)) || s.JustPressed(actionCount) {
		t.Error("out of range actions must never report pressed")
	}
	if Action(99).String() != "unknown" {
		t.Errorf("Action(99).String() = %q", Action(99).String())
	}
	if Brake.String() != "brake" {
		t.Errorf("Brake.String() = %q", Brake.String())
	}
}
