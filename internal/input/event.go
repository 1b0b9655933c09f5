// Package input routes raw device events to game handlers.
//
// Events are dispatched through two tiers: global handlers, which are always
// active, and handlers scoped to the current Mode. The first handler that
// reports the event as handled stops the chain. Key state (held keys, keys
// pressed this frame, pointer position, scroll delta) is tracked alongside so
// the game can poll semantic actions through a Bindings table.
package input

// Key names a physical key or pointer button. Keyboard names follow Bubble
// Tea's KeyMsg.String() vocabulary ("a", "up", "enter", "ctrl+c", " ").
type Key string

// Pointer and scroll keys. Buttons have their own names so they never
// share key state with the arrow keys.
const (
	KeyNone        Key = ""
	ButtonLeft     Key = "mouse.left"
	ButtonMiddle   Key = "mouse.middle"
	ButtonRight    Key = "mouse.right"
	KeyScrollWheel Key = "wheel"
	KeyPaste       Key = "paste"
)

// EventKind is the kind of raw device event.
type EventKind int

const (
	KeyDown EventKind = iota
	KeyUp
	PointerDown
	PointerUp
	PointerMove
	Scroll
)

// String returns the kind name used in logs and the keys listing.
func (k EventKind) String() string {
	switch k {
	case KeyDown:
		return "keydown"
	case KeyUp:
		return "keyup"
	case PointerDown:
		return "pointerdown"
	case PointerUp:
		return "pointerup"
	case PointerMove:
		return "pointermove"
	case Scroll:
		return "scroll"
	default:
		return "unknown"
	}
}

// Event is a single raw device event.
//
// For key events Text carries the typed characters, if any; a paste arrives
// as one KeyDown with the whole pasted string. Pointer and scroll events carry
// coordinates in screen cells; the router fills X and Y with the current
// pointer position before any handler sees the event.
type Event struct {
	Kind EventKind
	Key  Key
	Text string
	X, Y int
	DX   int
	DY   int
}

// KeyPress builds a KeyDown event. Single printable characters also become
// the event text.
func KeyPress(k Key) Event {
	ev := Event{Kind: KeyDown, Key: k}
	if r := []rune(string(k)); len(r) == 1 && r[0] >= ' ' {
		ev.Text = string(k)
	}
	return ev
}

// KeyRelease builds a KeyUp event.
func KeyRelease(k Key) Event {
	return Event{Kind: KeyUp, Key: k}
}
