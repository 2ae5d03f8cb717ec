package app

// Kind identifies a screen for logging and menus
type Kind int

const (
	KindLogo Kind = iota
	KindSplash
	KindMainMenu
	KindCarSelection
	KindTrackSelection
	KindOptions
	KindHighscores
	KindHelp
	KindGame
)

func (k Kind) String() string {
	switch k {
	case KindLogo:
		return "logo"
	case KindSplash:
		return "splash"
	case KindMainMenu:
		return "main_menu"
	case KindCarSelection:
		return "car_selection"
	case KindTrackSelection:
		return "track_selection"
	case KindOptions:
		return "options"
	case KindHighscores:
		return "highscores"
	case KindHelp:
		return "help"
	case KindGame:
		return "game"
	}
	return "unknown"
}

// Screen is one UI or gameplay mode on the screen stack.
// Drawing is done by the host; after each draw the manager asks Finished to
// decide whether the screen leaves the stack.
type Screen interface {
	Kind() Kind
	Update(ctx *Context) error
	Finished() bool
}

// Enterer is implemented by screens that need setup when pushed
type Enterer interface {
	OnEnter(ctx *Context)
}

// Popper is implemented by screens that commit state when they are removed
type Popper interface {
	OnPop(ctx *Context)
}

// DisplayEditor is implemented by screens that can request a new resolution.
// When such a screen is popped and the requested resolution differs from the
// applied one the game restarts.
type DisplayEditor interface {
	EditsDisplay() bool
}
