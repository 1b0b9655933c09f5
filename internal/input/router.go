package input

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-quest/internal/core"
)

// Handler receives a routed event and reports whether it consumed it.
type Handler interface {
	Handle(ev Event) (bool, error)
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ev Event) (bool, error)

// Handle calls f(ev).
func (f HandlerFunc) Handle(ev Event) (bool, error) {
	return f(ev)
}

// TextInput is the debug console as seen by the router: a visibility flag,
// its toggle, and a line editor fed with unclaimed keys.
type TextInput interface {
	Visible() bool
	Toggle()
	HandleKey(ev Event)
}

type handlerKey struct {
	scope Mode
	kind  EventKind
	key   Key
}

// Router dispatches raw events through global then mode-scoped handlers and
// tracks key and pointer state for polling.
type Router struct {
	modes    *ModeController
	bindings *Bindings
	handlers map[handlerKey]Handler

	down     map[Key]bool
	pressed  map[Key]bool
	pointerX int
	pointerY int
	scrollX  int
	scrollY  int

	console   TextInput
	toggleKey Key
	capture   bool

	boundary bool
	logger   *log.Logger
}

// Option configures a Router.
type Option func(*Router)

// WithConsole attaches the debug console and the key that toggles it. The
// toggle key is consumed before any handler sees it.
func WithConsole(c TextInput, toggle Key) Option {
	return func(r *Router) {
		r.console = c
		r.toggleKey = toggle
	}
}

// WithConsoleCapture makes a visible console own the keyboard: after the
// global tier, key events go straight to the console, skipping mode handlers
// and key-state tracking.
func WithConsoleCapture(on bool) Option {
	return func(r *Router) {
		r.capture = on
	}
}

// WithErrorBoundary isolates handlers from each other: a handler error or
// panic is logged and dispatch continues with the next tier as if the event
// was not handled.
func WithErrorBoundary(logger *log.Logger) Option {
	return func(r *Router) {
		r.boundary = true
		r.logger = logger
	}
}

// NewRouter creates a router reading the current mode from modes and action
// bindings from bindings.
func NewRouter(modes *ModeController, bindings *Bindings, opts ...Option) *Router {
	r := &Router{
		modes:    modes,
		bindings: bindings,
		handlers: make(map[handlerKey]Handler),
		down:     make(map[Key]bool),
		pressed:  make(map[Key]bool),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register binds h to (scope, kind, key). Re-registration overwrites.
// Pointer-move handlers use KeyNone; scroll handlers use KeyScrollWheel.
func (r *Router) Register(scope Mode, kind EventKind, key Key, h Handler) {
	r.handlers[handlerKey{scope: scope, kind: kind, key: key}] = h
}

// RegisterFunc is Register for a plain function.
func (r *Router) RegisterFunc(scope Mode, kind EventKind, key Key, fn func(Event) (bool, error)) {
	r.Register(scope, kind, key, HandlerFunc(fn))
}

// RegisterAction registers h for every key currently bound to action.
// Rebinding later requires re-registration.
func (r *Router) RegisterAction(scope Mode, kind EventKind, action Action, h Handler) {
	for _, k := range r.bindings.Keys(action) {
		r.Register(scope, kind, k, h)
	}
}

// Reset drops every handler. Key and pointer state are kept.
func (r *Router) Reset() {
	r.handlers = make(map[handlerKey]Handler)
}

// HandlerCount returns the number of registered handlers.
func (r *Router) HandlerCount() int {
	return len(r.handlers)
}

// BeginFrame clears the pressed-this-frame set and the scroll accumulator.
// Call it once per tick before dispatching that tick's events.
func (r *Router) BeginFrame() {
	clear(r.pressed)
	r.scrollX, r.scrollY = 0, 0
}

// Dispatch routes one event. A handler error is returned to the caller
// unless an error boundary is installed.
func (r *Router) Dispatch(ev Event) error {
	switch ev.Kind {
	case KeyDown:
		return r.dispatchKeyDown(ev)
	case KeyUp:
		delete(r.down, ev.Key)
		_, err := r.chain(ev)
		return err
	case PointerDown:
		r.movePointer(&ev)
		r.markDown(ev.Key)
		_, err := r.chain(ev)
		return err
	case PointerUp:
		r.movePointer(&ev)
		delete(r.down, ev.Key)
		_, err := r.chain(ev)
		return err
	case PointerMove:
		r.movePointer(&ev)
		_, err := r.chain(ev)
		return err
	case Scroll:
		r.movePointer(&ev)
		r.scrollX += ev.DX
		r.scrollY += ev.DY
		_, err := r.chain(ev)
		return err
	default:
		return fmt.Errorf("input: unknown event kind %d", ev.Kind)
	}
}

func (r *Router) dispatchKeyDown(ev Event) error {
	if r.console != nil && r.toggleKey != KeyNone && ev.Key == r.toggleKey {
		r.console.Toggle()
		return nil
	}

	consoleOpen := r.console != nil && r.console.Visible()
	if consoleOpen && r.capture {
		handled, err := r.invoke(ModeGlobal, ev)
		if err != nil || handled {
			return err
		}
		r.console.HandleKey(ev)
		return nil
	}

	// A paste has no release, so it never counts as held.
	if ev.Key != KeyPaste {
		r.markDown(ev.Key)
	}
	handled, err := r.chain(ev)
	if err != nil {
		return err
	}
	if !handled && consoleOpen {
		r.console.HandleKey(ev)
	}
	return nil
}

// chain runs the global tier, then the current mode's tier.
func (r *Router) chain(ev Event) (bool, error) {
	handled, err := r.invoke(ModeGlobal, ev)
	if err != nil || handled {
		return handled, err
	}
	return r.invoke(r.modes.Current(), ev)
}

func (r *Router) invoke(scope Mode, ev Event) (handled bool, err error) {
	h, ok := r.handlers[handlerKey{scope: scope, kind: ev.Kind, key: lookupKey(ev)}]
	if !ok {
		return false, nil
	}
	if !r.boundary {
		return h.Handle(ev)
	}

	defer func() {
		if p := recover(); p != nil {
			r.logHandlerFailure(scope, ev, fmt.Errorf("panic: %v", p))
			handled, err = false, nil
		}
	}()
	handled, err = h.Handle(ev)
	if err != nil {
		r.logHandlerFailure(scope, ev, err)
		return false, nil
	}
	return handled, nil
}

func (r *Router) logHandlerFailure(scope Mode, ev Event, err error) {
	if r.logger == nil {
		return
	}
	r.logger.Error("input handler failed",
		"scope", scope,
		"kind", ev.Kind,
		"key", string(ev.Key),
		"error", err,
	)
}

func lookupKey(ev Event) Key {
	switch ev.Kind {
	case PointerMove:
		return KeyNone
	case Scroll:
		return KeyScrollWheel
	default:
		return ev.Key
	}
}

func (r *Router) markDown(k Key) {
	if !r.down[k] {
		r.pressed[k] = true
	}
	r.down[k] = true
}

func (r *Router) movePointer(ev *Event) {
	r.pointerX, r.pointerY = ev.X, ev.Y
}

// IsDown reports whether k is held.
func (r *Router) IsDown(k Key) bool {
	return r.down[k]
}

// WasPressed reports whether k went down during the current frame.
func (r *Router) WasPressed(k Key) bool {
	return r.pressed[k]
}

// HeldKeys returns the number of keys currently held.
func (r *Router) HeldKeys() int {
	return len(r.down)
}

// Pointer returns the last known pointer position.
func (r *Router) Pointer() (x, y int) {
	return r.pointerX, r.pointerY
}

// ScrollDelta returns the scroll accumulated during the current frame.
func (r *Router) ScrollDelta() (dx, dy int) {
	return r.scrollX, r.scrollY
}

// Mode returns the current game mode.
func (r *Router) Mode() Mode {
	return r.modes.Current()
}

// Bindings returns the action binding table.
func (r *Router) Bindings() *Bindings {
	return r.bindings
}

// IsActionActive reports whether any key bound to action is held.
func (r *Router) IsActionActive(action Action) bool {
	return r.bindings.IsActive(r, action)
}

// WasActionPressed reports whether any key bound to action went down this frame.
func (r *Router) WasActionPressed(action Action) bool {
	return r.bindings.WasPressed(r, action)
}

// MovementVector returns the normalized movement intent for the current mode.
func (r *Router) MovementVector() core.Vec2 {
	return r.bindings.MovementVector(r, r.modes.Current(), DefaultDirections)
}
