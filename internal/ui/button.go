package ui

import (
	"github.com/rivo/uniseg"

	"github.com/vovakirdan/tui-quest/internal/core"
)

// flashSeconds is how long a pressed button stays highlighted.
const flashSeconds = 0.15

// Button is a one-line clickable label.
type Button struct {
	Rect    core.Rect
	Label   string
	OnClick func()

	focused bool
	flash   float64
}

// NewButton creates a button sized to its label.
func NewButton(label string, onClick func()) *Button {
	b := &Button{Label: label, OnClick: onClick}
	b.Rect = core.NewRect(0, 0, uniseg.StringWidth(label)+4, 1)
	return b
}

// MoveTo positions the button's top-left corner.
func (b *Button) MoveTo(x, y int) {
	b.Rect.X, b.Rect.Y = x, y
}

// SetFocused marks the button as the keyboard selection.
func (b *Button) SetFocused(on bool) {
	b.focused = on
}

// Focused reports whether the button is selected.
func (b *Button) Focused() bool {
	return b.focused
}

// Pressed reports whether the press highlight is showing.
func (b *Button) Pressed() bool {
	return b.flash > 0
}

// Activate presses the button.
func (b *Button) Activate() {
	b.flash = flashSeconds
	if b.OnClick != nil {
		b.OnClick()
	}
}

// Update fades the press highlight.
func (b *Button) Update(dt float64) {
	b.flash = max(0, b.flash-dt)
}

// Contains reports whether x, y is on the button.
func (b *Button) Contains(x, y int) bool {
	return b.Rect.Contains(x, y)
}

// Click presses the button when x, y is on it.
func (b *Button) Click(x, y int) bool {
	if !b.Contains(x, y) {
		return false
	}
	b.Activate()
	return true
}

// Draw renders "[ Label ]", or "> Label <" when focused.
func (b *Button) Draw(dst *core.Screen) {
	text, color := "[ "+b.Label+" ]", core.ColorWhite
	if b.focused {
		text, color = "> "+b.Label+" <", core.ColorFocus
	}
	if b.Pressed() {
		color = core.ColorBrightYellow
	}
	dst.DrawTextColor(b.Rect.X, b.Rect.Y, text, color)
}

// FocusGroup moves a keyboard selection across buttons.
type FocusGroup struct {
	buttons []*Button
	index   int
}

// NewFocusGroup focuses the first button.
func NewFocusGroup(buttons ...*Button) *FocusGroup {
	g := &FocusGroup{buttons: buttons}
	g.focus(0)
	return g
}

// Next focuses the following button, wrapping around.
func (g *FocusGroup) Next() {
	g.focus(g.index + 1)
}

// Prev focuses the preceding button, wrapping around.
func (g *FocusGroup) Prev() {
	g.focus(g.index - 1)
}

// Reset focuses the first button.
func (g *FocusGroup) Reset() {
	g.focus(0)
}

// Buttons returns the group's buttons in focus order.
func (g *FocusGroup) Buttons() []*Button {
	return g.buttons
}

// Focused returns the selected button, or nil for an empty group.
func (g *FocusGroup) Focused() *Button {
	if len(g.buttons) == 0 {
		return nil
	}
	return g.buttons[g.index]
}

// Activate presses the selected button.
func (g *FocusGroup) Activate() {
	if b := g.Focused(); b != nil {
		b.Activate()
	}
}

func (g *FocusGroup) focus(i int) {
	n := len(g.buttons)
	if n == 0 {
		return
	}
	g.index = ((i % n) + n) % n
	for j, b := range g.buttons {
		b.SetFocused(j == g.index)
	}
}
