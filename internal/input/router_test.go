package input

import (
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
)

type fakeConsole struct {
	visible bool
	toggles int
	keys    []Key
}

func (c *fakeConsole) Visible() bool { return c.visible }
func (c *fakeConsole) Toggle() {
	c.visible = !c.visible
	c.toggles++
}
func (c *fakeConsole) HandleKey(ev Event) { c.keys = append(c.keys, ev.Key) }

// recorder returns a handler that logs its name and answers handled.
func recorder(calls *[]string, name string, handled bool) Handler {
	return HandlerFunc(func(Event) (bool, error) {
		*calls = append(*calls, name)
		return handled, nil
	})
}

func newTestRouter(opts ...Option) (*Router, *ModeController) {
	modes := NewModeController(ModePlaying)
	return NewRouter(modes, DefaultBindings(), opts...), modes
}

func TestDispatchPrecedence(t *testing.T) {
	tests := []struct {
		name          string
		global        bool
		globalHandles bool
		expected      []string
	}{
		{"global handles", true, true, []string{"global"}},
		{"global declines", true, false, []string{"global", "mode"}},
		{"no global", false, false, []string{"mode"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, _ := newTestRouter()
			var calls []string
			if tc.global {
				r.Register(ModeGlobal, KeyDown, "x", recorder(&calls, "global", tc.globalHandles))
			}
			r.Register(ModePlaying, KeyDown, "x", recorder(&calls, "mode", true))

			if err := r.Dispatch(KeyPress("x")); err != nil {
				t.Fatalf("Dispatch() failed: %v", err)
			}
			if len(calls) != len(tc.expected) {
				t.Fatalf("calls = %v, expected %v", calls, tc.expected)
			}
			for i := range calls {
				if calls[i] != tc.expected[i] {
					t.Errorf("calls = %v, expected %v", calls, tc.expected)
				}
			}
		})
	}
}

func TestDispatchOnlyCurrentMode(t *testing.T) {
	r, modes := newTestRouter()
	var calls []string
	r.Register(ModeMenu, KeyDown, "enter", recorder(&calls, "menu", true))
	r.Register(ModePlaying, KeyDown, "enter", recorder(&calls, "playing", true))

	//nolint:errcheck
	r.Dispatch(KeyPress("enter"))
	modes.Set(ModeMenu)
	//nolint:errcheck
	r.Dispatch(KeyPress("enter"))

	if len(calls) != 2 || calls[0] != "playing" || calls[1] != "menu" {
		t.Errorf("calls = %v, expected [playing menu]", calls)
	}
}

func TestReRegistrationOverwrites(t *testing.T) {
	r, _ := newTestRouter()
	var calls []string
	r.Register(ModePlaying, KeyDown, "x", recorder(&calls, "first", true))
	r.Register(ModePlaying, KeyDown, "x", recorder(&calls, "second", true))

	//nolint:errcheck
	r.Dispatch(KeyPress("x"))
	if len(calls) != 1 || calls[0] != "second" {
		t.Errorf("calls = %v, expected [second]", calls)
	}
	if r.HandlerCount() != 1 {
		t.Errorf("HandlerCount() = %d, expected 1", r.HandlerCount())
	}
}

func TestHandlerCanSwitchMode(t *testing.T) {
	r, modes := newTestRouter()
	var calls []string
	r.RegisterFunc(ModePlaying, KeyDown, "p", func(Event) (bool, error) {
		modes.Set(ModePaused)
		return true, nil
	})
	r.Register(ModePaused, KeyDown, "p", recorder(&calls, "paused", true))

	//nolint:errcheck
	r.Dispatch(KeyPress("p"))
	if !modes.Is(ModePaused) {
		t.Fatalf("mode = %v, expected paused", modes.Current())
	}
	if len(calls) != 0 {
		t.Errorf("paused handler ran during the transition dispatch: %v", calls)
	}
}

func TestGlobalErrorPropagates(t *testing.T) {
	r, _ := newTestRouter()
	boom := errors.New("boom")
	var calls []string
	r.RegisterFunc(ModeGlobal, KeyDown, "x", func(Event) (bool, error) { return false, boom })
	r.Register(ModePlaying, KeyDown, "x", recorder(&calls, "mode", true))

	if err := r.Dispatch(KeyPress("x")); !errors.Is(err, boom) {
		t.Errorf("Dispatch() = %v, expected boom", err)
	}
	if len(calls) != 0 {
		t.Errorf("mode handler ran after a global error: %v", calls)
	}
}

func TestErrorBoundaryContinues(t *testing.T) {
	r, _ := newTestRouter(WithErrorBoundary(log.New(io.Discard)))
	var calls []string
	r.RegisterFunc(ModeGlobal, KeyDown, "x", func(Event) (bool, error) { return true, errors.New("boom") })
	r.RegisterFunc(ModeGlobal, KeyDown, "y", func(Event) (bool, error) { panic("kaboom") })
	r.Register(ModePlaying, KeyDown, "x", recorder(&calls, "x", true))
	r.Register(ModePlaying, KeyDown, "y", recorder(&calls, "y", true))

	if err := r.Dispatch(KeyPress("x")); err != nil {
		t.Errorf("Dispatch(x) = %v, expected nil", err)
	}
	if err := r.Dispatch(KeyPress("y")); err != nil {
		t.Errorf("Dispatch(y) = %v, expected nil", err)
	}
	if len(calls) != 2 {
		t.Errorf("calls = %v, expected mode handlers to run", calls)
	}
}

func TestConsoleToggleKeyIsIntercepted(t *testing.T) {
	c := &fakeConsole{}
	r, _ := newTestRouter(WithConsole(c, "`"))
	var calls []string
	r.Register(ModeGlobal, KeyDown, "`", recorder(&calls, "global", true))
	r.Register(ModePlaying, KeyDown, "`", recorder(&calls, "mode", true))

	//nolint:errcheck
	r.Dispatch(KeyPress("`"))
	//nolint:errcheck
	r.Dispatch(KeyPress("`"))

	if c.toggles != 2 || c.visible {
		t.Errorf("toggles = %d visible = %v, expected 2/false", c.toggles, c.visible)
	}
	if len(calls) != 0 || len(c.keys) != 0 {
		t.Errorf("toggle key leaked: handlers %v, console %v", calls, c.keys)
	}
}

func TestUnclaimedKeysReachVisibleConsole(t *testing.T) {
	c := &fakeConsole{visible: true}
	r, _ := newTestRouter(WithConsole(c, "`"))
	var calls []string
	r.Register(ModePlaying, KeyDown, "p", recorder(&calls, "pause", true))
	r.Register(ModePlaying, KeyDown, "w", recorder(&calls, "declines", false))

	for _, k := range []Key{"p", "w", "h"} {
		//nolint:errcheck
		r.Dispatch(KeyPress(k))
	}

	if len(c.keys) != 2 || c.keys[0] != "w" || c.keys[1] != "h" {
		t.Errorf("console keys = %v, expected [w h]", c.keys)
	}

	c.visible = false
	//nolint:errcheck
	r.Dispatch(KeyPress("z"))
	if len(c.keys) != 2 {
		t.Errorf("hidden console received %v", c.keys)
	}
}

func TestConsoleCapture(t *testing.T) {
	c := &fakeConsole{visible: true}
	r, _ := newTestRouter(WithConsole(c, "`"), WithConsoleCapture(true))
	var calls []string
	r.Register(ModeGlobal, KeyDown, "ctrl+c", recorder(&calls, "quit", true))
	r.Register(ModePlaying, KeyDown, "p", recorder(&calls, "pause", true))

	//nolint:errcheck
	r.Dispatch(KeyPress("p"))
	//nolint:errcheck
	r.Dispatch(KeyPress("ctrl+c"))

	if len(calls) != 1 || calls[0] != "quit" {
		t.Errorf("calls = %v, expected only the global handler", calls)
	}
	if len(c.keys) != 1 || c.keys[0] != "p" {
		t.Errorf("console keys = %v, expected [p]", c.keys)
	}
	if r.IsDown("p") {
		t.Error("captured key should not be tracked as held")
	}
}

func TestEdgeTriggeredPress(t *testing.T) {
	r, _ := newTestRouter()

	r.BeginFrame()
	//nolint:errcheck
	r.Dispatch(KeyPress("w"))
	if !r.WasPressed("w") || !r.WasActionPressed(ActionUp) {
		t.Fatal("w should be pressed on the frame it went down")
	}

	r.BeginFrame()
	//nolint:errcheck
	r.Dispatch(KeyPress("w")) // key repeat while held
	if r.WasPressed("w") {
		t.Error("repeat while held should not be a new press")
	}
	if !r.IsDown("w") || !r.IsActionActive(ActionUp) {
		t.Error("w should still be held")
	}

	//nolint:errcheck
	r.Dispatch(KeyRelease("w"))
	if r.IsDown("w") {
		t.Error("w should be released")
	}
}

func TestRouterMovementVectorDiagonal(t *testing.T) {
	r, _ := newTestRouter()
	//nolint:errcheck
	r.Dispatch(KeyPress("up"))
	//nolint:errcheck
	r.Dispatch(KeyPress("right"))

	if l := r.MovementVector().Len(); l < 0.999999 || l > 1.000001 {
		t.Errorf("|MovementVector()| = %v, expected 1", l)
	}
}

func TestPointerAndScroll(t *testing.T) {
	r, _ := newTestRouter()
	var got []Event
	rec := HandlerFunc(func(ev Event) (bool, error) {
		got = append(got, ev)
		return true, nil
	})
	r.Register(ModePlaying, PointerDown, ButtonLeft, rec)
	r.Register(ModePlaying, PointerMove, KeyNone, rec)
	r.Register(ModeGlobal, Scroll, KeyScrollWheel, rec)

	r.BeginFrame()
	for _, ev := range []Event{
		{Kind: PointerMove, X: 3, Y: 4},
		{Kind: PointerDown, Key: ButtonLeft, X: 5, Y: 6},
		{Kind: Scroll, Key: KeyScrollWheel, X: 5, Y: 6, DY: -1},
		{Kind: Scroll, Key: KeyScrollWheel, X: 5, Y: 6, DY: -1},
	} {
		if err := r.Dispatch(ev); err != nil {
			t.Fatalf("Dispatch() failed: %v", err)
		}
	}

	if len(got) != 4 {
		t.Fatalf("handlers saw %d events, expected 4", len(got))
	}
	if got[1].X != 5 || got[1].Y != 6 {
		t.Errorf("pointer down at (%d, %d), expected (5, 6)", got[1].X, got[1].Y)
	}
	if x, y := r.Pointer(); x != 5 || y != 6 {
		t.Errorf("Pointer() = (%d, %d)", x, y)
	}
	if !r.IsDown(ButtonLeft) {
		t.Error("left button should be held")
	}
	if _, dy := r.ScrollDelta(); dy != -2 {
		t.Errorf("ScrollDelta() dy = %d, expected -2", dy)
	}

	r.BeginFrame()
	if _, dy := r.ScrollDelta(); dy != 0 {
		t.Errorf("ScrollDelta() after BeginFrame = %d, expected 0", dy)
	}
}

func TestPointerButtonsKeepOwnKeyState(t *testing.T) {
	r, _ := newTestRouter()
	r.BeginFrame()

	//nolint:errcheck
	r.Dispatch(Event{Kind: PointerDown, Key: ButtonLeft})
	if r.IsActionActive(ActionLeft) || r.WasActionPressed(ActionLeft) {
		t.Error("a mouse press must not activate a keyboard action")
	}
	if v := r.MovementVector(); !v.IsZero() {
		t.Errorf("MovementVector() with the mouse held = %+v, expected zero", v)
	}

	//nolint:errcheck
	r.Dispatch(KeyPress("left"))
	//nolint:errcheck
	r.Dispatch(KeyRelease("left"))
	if !r.IsDown(ButtonLeft) {
		t.Error("releasing the left arrow must not release the mouse button")
	}
	if r.IsActionActive(ActionLeft) {
		t.Error("left action should be inactive after the arrow is released")
	}
}

func TestPasteIsNeverHeld(t *testing.T) {
	r, _ := newTestRouter()
	//nolint:errcheck
	r.Dispatch(Event{Kind: KeyDown, Key: KeyPaste, Text: "tp 1 1"})
	if r.IsDown(KeyPaste) || r.HeldKeys() != 0 {
		t.Errorf("paste left %d held keys", r.HeldKeys())
	}
}

func TestRegisterActionAndReset(t *testing.T) {
	r, _ := newTestRouter()
	var calls []string
	r.RegisterAction(ModePlaying, KeyDown, ActionPause, recorder(&calls, "pause", true))

	//nolint:errcheck
	r.Dispatch(KeyPress("p"))
	//nolint:errcheck
	r.Dispatch(KeyPress("esc"))
	if len(calls) != 2 {
		t.Errorf("calls = %v, expected both pause keys to dispatch", calls)
	}

	r.Reset()
	if r.HandlerCount() != 0 {
		t.Errorf("HandlerCount() after Reset = %d", r.HandlerCount())
	}
}

func TestDispatchUnknownKind(t *testing.T) {
	r, _ := newTestRouter()
	if err := r.Dispatch(Event{Kind: EventKind(99)}); err == nil {
		t.Error("expected an error for an unknown event kind")
	}
}
