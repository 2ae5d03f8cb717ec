package app

import (
	"github.com/rs/zerolog/log"
)

// Manager owns the screen stack and dispatches each frame to the active
// screen. The shared player is ticked every frame regardless of which
// screen is on top.
type Manager struct {
	ctx     *Context
	screens Stack

	exiting bool
	restart bool
}

// NewManager creates a manager for ctx and links ctx back to it
func NewManager(ctx *Context) *Manager {
	m := &Manager{ctx: ctx}
	ctx.Manager = m
	return m
}

// Context returns the shared application context
func (m *Manager) Context() *Context {
	return m.ctx
}

// AddGameScreen pushes s and makes it the active screen
func (m *Manager) AddGameScreen(s Screen) {
	if m.exiting {
		return
	}
	m.screens.Push(s)
	m.ctx.Sound.Play(SoundClick)
	log.Debug().Stringer("screen", s.Kind()).Int("depth", m.screens.Len()).Msg("Screen pushed")
	if e, ok := s.(Enterer); ok {
		e.OnEnter(m.ctx)
	}
}

// Active returns the top of the stack, nil when empty
func (m *Manager) Active() Screen {
	return m.screens.Top()
}

// Depth returns the number of screens on the stack
func (m *Manager) Depth() int {
	return m.screens.Len()
}

// InGame reports whether the race screen is on the stack
func (m *Manager) InGame() bool {
	return m.screens.Contains(KindGame)
}

// Update ticks the player, then the active screen
func (m *Manager) Update() error {
	m.ctx.Player.Update(m.ctx.Input, FrameTime)

	if m.exiting {
		return nil
	}
	if s := m.screens.Top(); s != nil {
		return s.Update(m.ctx)
	}
	return nil
}

// Render hands the active screen to draw, then pops it if it reports it is
// finished. Only the top of the stack is drawn.
func (m *Manager) Render(draw func(Screen)) {
	s := m.screens.Top()
	if s == nil {
		return
	}
	if draw != nil {
		draw(s)
	}
	if s.Finished() {
		m.pop()
	}
}

func (m *Manager) pop() {
	s := m.screens.Pop()
	if s == nil {
		return
	}
	log.Debug().Stringer("screen", s.Kind()).Int("depth", m.screens.Len()).Msg("Screen popped")

	if p, ok := s.(Popper); ok {
		p.OnPop(m.ctx)
	}

	if d, ok := s.(DisplayEditor); ok && d.EditsDisplay() && m.ctx.Settings.ResolutionChanged() {
		log.Info().
			Stringer("applied", m.ctx.Settings.Applied).
			Stringer("requested", m.ctx.Settings.Requested).
			Msg("Resolution changed, restarting")
		m.restart = true
		m.exit()
		return
	}

	if m.screens.Empty() {
		m.exit()
		return
	}
	m.ctx.Sound.Play(SoundBack)
}

// Quit runs the exit sequence, for example when the window is closed
func (m *Manager) Quit() {
	m.exit()
}

// exit stops the music and plays the exit sound. It runs at most once.
func (m *Manager) exit() {
	if m.exiting {
		return
	}
	m.exiting = true
	m.ctx.Sound.StopMusic()
	m.ctx.Sound.Play(SoundExit)
	log.Info().Bool("restart", m.restart).Msg("Exiting game")
}

// Exiting reports whether the exit sequence has run
func (m *Manager) Exiting() bool {
	return m.exiting
}

// RestartRequested reports whether the process must relaunch after exit
func (m *Manager) RestartRequested() bool {
	return m.restart
}
