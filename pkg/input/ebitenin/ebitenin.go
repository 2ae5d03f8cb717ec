// Package ebitenin feeds keyboard and gamepad state from ebiten into input.State.
package ebitenin

import (
	"github.com/golangdaddy/racinggame/pkg/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyBindings = map[input.Action][]ebiten.Key{
	input.Up:               {ebiten.KeyArrowUp, ebiten.KeyW},
	input.Down:             {ebiten.KeyArrowDown, ebiten.KeyS},
	input.Left:             {ebiten.KeyArrowLeft, ebiten.KeyA},
	input.Right:            {ebiten.KeyArrowRight, ebiten.KeyD},
	input.Accelerate:       {ebiten.KeyArrowUp, ebiten.KeyW},
	input.Brake:            {ebiten.KeyArrowDown, ebiten.KeyS, ebiten.KeySpace},
	input.Select:           {ebiten.KeyEnter, ebiten.KeySpace},
	input.Back:             {ebiten.KeyEscape, ebiten.KeyBackspace},
	input.Screenshot:       {ebiten.KeyPrintScreen, ebiten.KeyF12},
	input.ToggleFullscreen: {ebiten.KeyF11},
}

var padBindings = map[input.Action][]ebiten.StandardGamepadButton{
	input.Up:         {ebiten.StandardGamepadButtonLeftTop},
	input.Down:       {ebiten.StandardGamepadButtonLeftBottom},
	input.Left:       {ebiten.StandardGamepadButtonLeftLeft},
	input.Right:      {ebiten.StandardGamepadButtonLeftRight},
	input.Accelerate: {ebiten.StandardGamepadButtonFrontBottomRight, ebiten.StandardGamepadButtonRightBottom},
	input.Brake:      {ebiten.StandardGamepadButtonFrontBottomLeft, ebiten.StandardGamepadButtonRightLeft},
	input.Select:     {ebiten.StandardGamepadButtonRightBottom, ebiten.StandardGamepadButtonCenterRight},
	input.Back:       {ebiten.StandardGamepadButtonRightRight, ebiten.StandardGamepadButtonCenterLeft},
}

// Keyboard polls ebiten once per frame and exposes the result as input.Input
type Keyboard struct {
	state   input.State
	gamepad []ebiten.GamepadID
}

// New creates a keyboard and gamepad reader
func New() *Keyboard {
	return &Keyboard{}
}

// Poll refreshes the state. Call it once at the start of every Update.
func (k *Keyboard) Poll() {
	k.gamepad = ebiten.AppendGamepadIDs(k.gamepad[:0])

	for a := input.Up; a <= input.ToggleFullscreen; a++ {
		held, just := false, false
		for _, key := range keyBindings[a] {
			held = held || ebiten.IsKeyPressed(key)
			just = just || inpututil.IsKeyJustPressed(key)
		}
		for _, id := range k.gamepad {
			if !ebiten.IsStandardGamepadLayoutAvailable(id) {
				continue
			}
			for _, b := range padBindings[a] {
				held = held || ebiten.IsStandardGamepadButtonPressed(id, b)
				just = just || inpututil.IsStandardGamepadButtonJustPressed(id, b)
			}
		}
		k.state.Set(a, held, just)
	}
}

// Pressed implements input.Input
func (k *Keyboard) Pressed(a input.Action) bool {
	return k.state.Pressed(a)
}

// JustPressed implements input.Input
func (k *Keyboard) JustPressed(a input.Action) bool {
	return k.state.JustPressed(a)
}
