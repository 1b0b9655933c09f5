package ui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-quest/internal/core"
)

// drawOnly implements Drawable and nothing else.
type drawOnly struct{ drawn *int }

func (d drawOnly) Draw(*core.Screen) { *d.drawn++ }

func TestManagerCapabilities(t *testing.T) {
	var drawn int
	clicks := 0
	btn := NewButton("Go", func() { clicks++ })
	btn.MoveTo(2, 1)

	m := NewManager()
	m.Add(drawOnly{drawn: &drawn}, btn, "not a widget")

	m.Update(0.1)
	m.Draw(core.NewScreen(20, 5))
	if drawn != 1 {
		t.Errorf("drawn = %d, expected 1", drawn)
	}

	if m.Click(0, 0) {
		t.Error("click on empty space was consumed")
	}
	if !m.Click(3, 1) || clicks != 1 {
		t.Errorf("click on button: clicks = %d", clicks)
	}

	if !m.Remove(btn) || m.Len() != 2 {
		t.Errorf("Remove() left %d widgets", m.Len())
	}
}

func TestManagerClicksTopmostFirst(t *testing.T) {
	var order []string
	under := NewButton("Under", func() { order = append(order, "under") })
	over := NewButton("Over", func() { order = append(order, "over") })

	m := NewManager()
	m.Add(under, over)
	m.Click(0, 0)

	if len(order) != 1 || order[0] != "over" {
		t.Errorf("click order = %v, expected only the topmost", order)
	}
}

func TestButtonDrawAndFlash(t *testing.T) {
	b := NewButton("Start", nil)
	screen := core.NewScreen(20, 1)

	b.Draw(screen)
	if got := strings.TrimRight(screen.Row(0), " "); got != "[ Start ]" {
		t.Errorf("row = %q", got)
	}

	b.SetFocused(true)
	screen.Clear()
	b.Draw(screen)
	if got := strings.TrimRight(screen.Row(0), " "); got != "> Start <" {
		t.Errorf("focused row = %q", got)
	}

	b.Activate()
	if !b.Pressed() {
		t.Fatal("Activate() should flash the button")
	}
	b.Update(1)
	if b.Pressed() {
		t.Error("flash should fade")
	}
}

func TestFocusGroup(t *testing.T) {
	var hit string
	a := NewButton("A", func() { hit = "a" })
	b := NewButton("B", func() { hit = "b" })
	g := NewFocusGroup(a, b)

	if g.Focused() != a || !a.Focused() || b.Focused() {
		t.Fatal("first button should start focused")
	}
	g.Next()
	g.Activate()
	if hit != "b" {
		t.Errorf("hit = %q, expected b", hit)
	}
	g.Next()
	if g.Focused() != a {
		t.Error("Next() should wrap")
	}
	g.Prev()
	if g.Focused() != b {
		t.Error("Prev() should wrap")
	}

	empty := NewFocusGroup()
	empty.Next()
	empty.Activate()
	if empty.Focused() != nil {
		t.Error("empty group has no focus")
	}
}

func TestDialog(t *testing.T) {
	var choice string
	d := NewDialog("Paused", "Game paused",
		NewButton("Resume", func() { choice = "resume" }),
		NewButton("Menu", func() { choice = "menu" }),
	)
	d.Layout(40, 12)
	screen := core.NewScreen(40, 12)

	d.Draw(screen)
	if strings.TrimSpace(screen.String()) != "" {
		t.Error("hidden dialog drew")
	}
	if d.Click(0, 0) {
		t.Error("hidden dialog took a click")
	}

	d.Show()
	d.Draw(screen)
	if !strings.Contains(screen.String(), "Game paused") || !strings.Contains(screen.String(), "Resume") {
		t.Errorf("dialog not drawn:\n%s", screen.String())
	}

	if !d.Click(0, 0) || choice != "" {
		t.Error("visible dialog should swallow outside clicks without pressing buttons")
	}
	menu := d.Buttons[1]
	d.Click(menu.Rect.X, menu.Rect.Y)
	if choice != "menu" {
		t.Errorf("choice = %q, expected menu", choice)
	}

	d.Focus.Activate()
	if choice != "resume" {
		t.Errorf("keyboard choice = %q, expected resume", choice)
	}

	if !d.Rect.Contains(d.Buttons[0].Rect.X, d.Buttons[0].Rect.Y) {
		t.Error("buttons should be laid out inside the dialog")
	}
}

func TestBar(t *testing.T) {
	b := NewBar("HP", 10, 3, 3, core.ColorRed)
	if b.Filled() != 10 {
		t.Errorf("full bar filled = %d", b.Filled())
	}
	if got := b.String(); got != "HP [██████████] 3/3" {
		t.Errorf("String() = %q", got)
	}

	b.Set(0, 3)
	b.Update(0.01)
	if b.Filled() == 0 || b.Filled() == 10 {
		t.Errorf("easing bar filled = %d, expected in between", b.Filled())
	}
	b.Update(1)
	if b.Filled() != 0 {
		t.Errorf("settled bar filled = %d", b.Filled())
	}

	b.Set(1, 0)
	if b.Filled() != 0 {
		t.Error("zero max should show an empty gauge")
	}
}
