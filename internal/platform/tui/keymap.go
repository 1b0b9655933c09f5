package tui

import (
	"sort"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-quest/internal/input"
)

// keyEvent translates a Bubble Tea key message. Key names are Bubble Tea's
// own ("a", "up", "ctrl+c", " "). A bracketed paste becomes one KeyPaste
// event carrying the pasted text.
func keyEvent(msg tea.KeyMsg) input.Event {
	if msg.Paste {
		return input.Event{Kind: input.KeyDown, Key: input.KeyPaste, Text: string(msg.Runes)}
	}

	ev := input.Event{Kind: input.KeyDown, Key: input.Key(msg.String())}
	switch {
	case msg.Type == tea.KeyRunes && !msg.Alt:
		ev.Text = string(msg.Runes)
	case msg.Type == tea.KeySpace:
		ev.Text = " "
	}
	return ev
}

// mouseEvent translates a Bubble Tea mouse message. The wheel becomes a
// Scroll event with a one-line delta.
func mouseEvent(msg tea.MouseMsg) (input.Event, bool) {
	ev := input.Event{X: msg.X, Y: msg.Y}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		ev.Kind, ev.Key, ev.DY = input.Scroll, input.KeyScrollWheel, -1
		return ev, msg.Action == tea.MouseActionPress
	case tea.MouseButtonWheelDown:
		ev.Kind, ev.Key, ev.DY = input.Scroll, input.KeyScrollWheel, 1
		return ev, msg.Action == tea.MouseActionPress
	case tea.MouseButtonWheelLeft:
		ev.Kind, ev.Key, ev.DX = input.Scroll, input.KeyScrollWheel, -1
		return ev, msg.Action == tea.MouseActionPress
	case tea.MouseButtonWheelRight:
		ev.Kind, ev.Key, ev.DX = input.Scroll, input.KeyScrollWheel, 1
		return ev, msg.Action == tea.MouseActionPress
	case tea.MouseButtonLeft:
		ev.Key = input.ButtonLeft
	case tea.MouseButtonMiddle:
		ev.Key = input.ButtonMiddle
	case tea.MouseButtonRight:
		ev.Key = input.ButtonRight
	}

	switch msg.Action {
	case tea.MouseActionPress:
		ev.Kind = input.PointerDown
	case tea.MouseActionRelease:
		ev.Kind = input.PointerUp
	case tea.MouseActionMotion:
		ev.Kind, ev.Key = input.PointerMove, input.KeyNone
	default:
		return ev, false
	}
	return ev, true
}

// keyReleaser synthesizes key releases. Terminals only report presses and
// auto-repeats, so a key counts as held until it has not repeated for hold
// ticks.
type keyReleaser struct {
	hold uint64
	seen map[input.Key]uint64
}

func newKeyReleaser(hold int) *keyReleaser {
	return &keyReleaser{hold: uint64(max(hold, 1)), seen: make(map[input.Key]uint64)}
}

// Observe records a key press at tick.
func (r *keyReleaser) Observe(ev input.Event, tick uint64) {
	if ev.Kind == input.KeyDown && ev.Key != input.KeyPaste {
		r.seen[ev.Key] = tick
	}
}

// Expired returns release events for keys not seen for hold ticks, sorted
// by key, and forgets them.
func (r *keyReleaser) Expired(tick uint64) []input.Event {
	var keys []input.Key
	for k, last := range r.seen {
		if tick-last >= r.hold {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	events := make([]input.Event, 0, len(keys))
	for _, k := range keys {
		delete(r.seen, k)
		events = append(events, input.KeyRelease(k))
	}
	return events
}
