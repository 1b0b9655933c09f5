package input

// Mode is the coarse game phase gating which handlers are eligible.
// ModeGlobal is a handler scope, not a phase: handlers registered under it
// run in every mode.
type Mode int

const (
	ModeGlobal Mode = iota
	ModeMenu
	ModePlaying
	ModePaused
)

// String returns the mode name used by the console.
func (m Mode) String() string {
	switch m {
	case ModeGlobal:
		return "global"
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	case ModePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// ParseMode returns the game mode with the given name.
// "global" is rejected since it is not a phase the game can be in.
func ParseMode(name string) (Mode, bool) {
	switch name {
	case "menu":
		return ModeMenu, true
	case "playing":
		return ModePlaying, true
	case "paused":
		return ModePaused, true
	}
	return ModeGlobal, false
}

// ModeListener is notified after a mode transition.
type ModeListener func(from, to Mode)

// ModeController holds the single current game mode.
// Any mode may transition to any other; there is no transition graph.
type ModeController struct {
	current   Mode
	listeners []ModeListener
}

// NewModeController creates a controller starting in the given mode.
func NewModeController(initial Mode) *ModeController {
	if initial == ModeGlobal {
		initial = ModeMenu
	}
	return &ModeController{current: initial}
}

// Current returns the active mode.
func (c *ModeController) Current() Mode {
	return c.current
}

// Is reports whether m is the active mode.
func (c *ModeController) Is(m Mode) bool {
	return c.current == m
}

// Set swaps the active mode. Setting the current mode is a valid no-op and
// does not notify listeners. ModeGlobal is ignored.
func (c *ModeController) Set(m Mode) {
	if m == ModeGlobal || m == c.current {
		return
	}
	from := c.current
	c.current = m
	for _, l := range c.listeners {
		l(from, m)
	}
}

// OnChange registers a listener for future transitions.
func (c *ModeController) OnChange(l ModeListener) {
	c.listeners = append(c.listeners, l)
}
