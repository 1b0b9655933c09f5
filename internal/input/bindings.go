package input

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-quest/internal/core"
)

// Action is a semantic game action, abstracted from physical keys.
type Action string

// Built-in actions. Config files may add more.
const (
	ActionUp      Action = "up"
	ActionDown    Action = "down"
	ActionLeft    Action = "left"
	ActionRight   Action = "right"
	ActionConfirm Action = "confirm"
	ActionPause   Action = "pause"
	ActionBack    Action = "back"
	ActionRestart Action = "restart"
	ActionQuit    Action = "quit"
)

var (
	// ErrEmptyBinding is returned when an action would map to no keys.
	ErrEmptyBinding = errors.New("input: binding needs at least one key")
	// ErrUnknownAction is returned when rebinding an action that was never bound.
	ErrUnknownAction = errors.New("input: unknown action")
)

// KeyState answers level- and edge-triggered queries for physical keys.
// Router implements it.
type KeyState interface {
	IsDown(k Key) bool
	WasPressed(k Key) bool
}

// Bindings maps actions to ordered sets of physical keys.
// The same key may back several actions.
type Bindings struct {
	keys  map[Action][]Key
	order []Action
}

// NewBindings creates an empty binding table.
func NewBindings() *Bindings {
	return &Bindings{keys: make(map[Action][]Key)}
}

// DefaultBindings returns the built-in table used when no config overrides it.
func DefaultBindings() *Bindings {
	b := NewBindings()
	defaults := []struct {
		action Action
		keys   []Key
	}{
		{ActionUp, []Key{"w", "up"}},
		{ActionDown, []Key{"s", "down"}},
		{ActionLeft, []Key{"a", "left"}},
		{ActionRight, []Key{"d", "right"}},
		{ActionConfirm, []Key{"enter", " "}},
		{ActionPause, []Key{"p", "esc"}},
		{ActionBack, []Key{"b", "esc"}},
		{ActionRestart, []Key{"r"}},
		{ActionQuit, []Key{"q"}},
	}
	for _, d := range defaults {
		//nolint:errcheck // static table, never empty
		b.Bind(d.action, d.keys...)
	}
	return b
}

// Bind replaces the key set for action, creating the action if needed.
// Duplicate and empty keys are dropped; order of first appearance is kept.
func (b *Bindings) Bind(action Action, keys ...Key) error {
	set := make([]Key, 0, len(keys))
	seen := make(map[Key]bool, len(keys))
	for _, k := range keys {
		if k == KeyNone || seen[k] {
			continue
		}
		seen[k] = true
		set = append(set, k)
	}
	if len(set) == 0 {
		return fmt.Errorf("%w: %q", ErrEmptyBinding, action)
	}

	if _, exists := b.keys[action]; !exists {
		b.order = append(b.order, action)
	}
	b.keys[action] = set
	return nil
}

// Rebind replaces the key set of an existing action.
func (b *Bindings) Rebind(action Action, keys ...Key) error {
	if _, exists := b.keys[action]; !exists {
		return fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}
	return b.Bind(action, keys...)
}

// Has reports whether action is bound.
func (b *Bindings) Has(action Action) bool {
	_, ok := b.keys[action]
	return ok
}

// Keys returns a copy of the keys bound to action.
func (b *Bindings) Keys(action Action) []Key {
	return append([]Key(nil), b.keys[action]...)
}

// Actions returns all bound actions in the order they were first bound.
func (b *Bindings) Actions() []Action {
	return append([]Action(nil), b.order...)
}

// ActionsFor returns every action the key backs.
func (b *Bindings) ActionsFor(k Key) []Action {
	var out []Action
	for _, a := range b.order {
		for _, bk := range b.keys[a] {
			if bk == k {
				out = append(out, a)
				break
			}
		}
	}
	return out
}

// IsActive reports whether any key bound to action is held down.
func (b *Bindings) IsActive(s KeyState, action Action) bool {
	for _, k := range b.keys[action] {
		if s.IsDown(k) {
			return true
		}
	}
	return false
}

// WasPressed reports whether any key bound to action went down this frame.
func (b *Bindings) WasPressed(s KeyState, action Action) bool {
	for _, k := range b.keys[action] {
		if s.WasPressed(k) {
			return true
		}
	}
	return false
}

// Directions names the four actions composed by MovementVector.
type Directions struct {
	Up, Down, Left, Right Action
}

// DefaultDirections uses the built-in directional actions.
var DefaultDirections = Directions{
	Up:    ActionUp,
	Down:  ActionDown,
	Left:  ActionLeft,
	Right: ActionRight,
}

// MovementVector composes the four directional actions into a vector with
// screen orientation (down is +Y). Diagonals are normalized so they are not
// faster than axis movement. Outside ModePlaying the zero vector is returned.
func (b *Bindings) MovementVector(s KeyState, mode Mode, d Directions) core.Vec2 {
	if mode != ModePlaying {
		return core.Vec2{}
	}

	var v core.Vec2
	if b.IsActive(s, d.Up) {
		v.Y--
	}
	if b.IsActive(s, d.Down) {
		v.Y++
	}
	if b.IsActive(s, d.Left) {
		v.X--
	}
	if b.IsActive(s, d.Right) {
		v.X++
	}

	if v.X != 0 && v.Y != 0 {
		return v.Normalize()
	}
	return v
}
