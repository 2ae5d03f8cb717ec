package ui

import (
	"fmt"
	"math"
	"unicode"

	"github.com/golangdaddy/racinggame/pkg/app"
	"github.com/golangdaddy/racinggame/pkg/config"
	"github.com/golangdaddy/racinggame/pkg/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MaxNameLength limits the player name typed in the options screen
const MaxNameLength = 12

const (
	optResolution = iota
	optFullscreen
	optSound
	optMusic
	optName
	optBack
)

// Options edits display, audio and player settings in place. A changed
// resolution only takes effect after the restart triggered by leaving this
// screen.
type Options struct {
	base
	ctx     *app.Context
	menu    menu
	editing bool
	name    []rune
	chars   []rune
}

func NewOptions() *Options {
	return &Options{
		menu: newMenu("Resolution", "Fullscreen", "Sound", "Music", "Name", "Back"),
	}
}

func (o *Options) Kind() app.Kind { return app.KindOptions }

// EditsDisplay marks the options screen as able to request a new resolution
func (o *Options) EditsDisplay() bool { return true }

func (o *Options) OnEnter(ctx *app.Context) {
	o.ctx = ctx
}

func (o *Options) Update(ctx *app.Context) error {
	if o.editing {
		o.editName(ctx)
		return nil
	}

	s := ctx.Settings
	if ctx.Input.JustPressed(input.Back) {
		o.finish()
		return nil
	}

	step := 0
	switch {
	case ctx.Input.JustPressed(input.Left):
		step = -1
	case ctx.Input.JustPressed(input.Right):
		step = 1
	case o.menu.update(ctx):
		switch o.menu.selected {
		case optResolution, optFullscreen:
			step = 1
		case optName:
			o.editing = true
			o.name = []rune(s.PlayerName)
			ctx.Sound.Play(app.SoundClick)
		case optBack:
			o.finish()
		}
	}
	if step == 0 {
		return nil
	}

	switch o.menu.selected {
	case optResolution:
		i := resolutionIndex(s.Requested) + step
		n := len(config.Resolutions)
		s.Requested = config.Resolutions[(i%n+n)%n]
	case optFullscreen:
		s.Fullscreen = !s.Fullscreen
		ebiten.SetFullscreen(s.Fullscreen)
	case optSound:
		s.SoundVolume = stepVolume(s.SoundVolume, step)
		ctx.Sound.SetVolumes(s.SoundVolume, s.MusicVolume)
	case optMusic:
		s.MusicVolume = stepVolume(s.MusicVolume, step)
		ctx.Sound.SetVolumes(s.SoundVolume, s.MusicVolume)
	default:
		return nil
	}
	ctx.Sound.Play(app.SoundHighlight)
	return nil
}

// editName reads typed characters straight from ebiten; the logical input
// binds backspace and space to menu actions.
func (o *Options) editName(ctx *app.Context) {
	o.chars = ebiten.AppendInputChars(o.chars[:0])
	for _, r := range o.chars {
		if len(o.name) < MaxNameLength && unicode.IsPrint(r) {
			o.name = append(o.name, r)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && len(o.name) > 0 {
		o.name = o.name[:len(o.name)-1]
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		if name := string(o.name); name != "" {
			ctx.Settings.PlayerName = name
		}
		o.editing = false
		ctx.Sound.Play(app.SoundClick)
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		o.editing = false
		ctx.Sound.Play(app.SoundBack)
	}
}

func resolutionIndex(r config.Resolution) int {
	for i, res := range config.Resolutions {
		if res == r {
			return i
		}
	}
	return 0
}

func stepVolume(v float64, step int) float64 {
	v = math.Round(v*10+float64(step)) / 10
	return math.Max(0, math.Min(1, v))
}

func onOff(b bool) string {
	if b {
		return "On"
	}
	return "Off"
}

func (o *Options) Draw(screen *ebiten.Image) {
	drawBackdrop(screen)
	drawTitle(screen, "OPTIONS")
	if o.ctx == nil {
		return
	}
	s := o.ctx.Settings

	name := s.PlayerName
	if o.editing {
		name = string(o.name) + "_"
	}
	labels := []string{
		fmt.Sprintf("Resolution  < %s >", s.Requested),
		fmt.Sprintf("Fullscreen  %s", onOff(s.Fullscreen)),
		fmt.Sprintf("Sound  %3.0f%%", s.SoundVolume*100),
		fmt.Sprintf("Music  %3.0f%%", s.MusicVolume*100),
		fmt.Sprintf("Name  %s", name),
		"Back",
	}
	o.menu.draw(screen, 140, labels)

	width := float64(screen.Bounds().Dx())
	if s.ResolutionChanged() {
		drawCentered(screen, "The game restarts to apply the new resolution", width/2, 460, 1, colorTitle, titleFace)
	}
	if o.editing {
		drawHint(screen, "Type your name | Enter: Confirm | Esc: Cancel")
		return
	}
	drawHint(screen, "Up/Down: Navigate | Left/Right: Change | Esc: Back")
}
