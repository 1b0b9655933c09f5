package ui

import (
	"strings"

	"github.com/rivo/uniseg"

	"github.com/vovakirdan/tui-quest/internal/core"
)

// Dialog is a modal panel with a message and a row of buttons. Hidden
// dialogs neither draw nor take clicks; visible ones swallow every click.
type Dialog struct {
	Panel
	Message string
	Buttons []*Button
	Focus   *FocusGroup

	visible bool
}

// NewDialog creates a hidden dialog.
func NewDialog(title, message string, buttons ...*Button) *Dialog {
	d := &Dialog{
		Panel:   Panel{Title: title},
		Message: message,
		Buttons: buttons,
		Focus:   NewFocusGroup(buttons...),
	}
	for _, b := range buttons {
		d.Panel.Add(b)
	}
	return d
}

// Visible reports whether the dialog is shown.
func (d *Dialog) Visible() bool {
	return d.visible
}

// Show displays the dialog with the first button focused.
func (d *Dialog) Show() {
	d.visible = true
	d.Focus.Reset()
}

// Hide hides the dialog.
func (d *Dialog) Hide() {
	d.visible = false
}

// Layout centers the dialog on a w by h screen and spaces the buttons.
func (d *Dialog) Layout(w, h int) {
	lines := strings.Split(d.Message, "\n")
	width := uniseg.StringWidth(d.Title) + 6
	for _, l := range lines {
		width = max(width, uniseg.StringWidth(l)+4)
	}
	row := 0
	for _, b := range d.Buttons {
		row += b.Rect.W + 2
	}
	width = max(width, row+2)
	height := len(lines) + 4

	d.Rect = core.NewRect((w-width)/2, (h-height)/2, width, height)

	x := d.Rect.X + (width-row+2)/2
	for _, b := range d.Buttons {
		b.MoveTo(x, d.Rect.Bottom()-2)
		x += b.Rect.W + 2
	}
}

// Update advances the buttons while visible.
func (d *Dialog) Update(dt float64) {
	if d.visible {
		d.Panel.Update(dt)
	}
}

// Draw renders the dialog while visible.
func (d *Dialog) Draw(dst *core.Screen) {
	if !d.visible {
		return
	}
	d.Panel.Draw(dst)
	for i, l := range strings.Split(d.Message, "\n") {
		x := d.Rect.X + (d.Rect.W-uniseg.StringWidth(l))/2
		dst.DrawTextColor(x, d.Rect.Y+1+i, l, core.ColorWhite)
	}
}

// Contains reports whether the dialog is visible. A visible dialog covers
// the whole screen for input purposes.
func (d *Dialog) Contains(x, y int) bool {
	return d.visible
}

// Click forwards to the buttons while visible.
func (d *Dialog) Click(x, y int) bool {
	if !d.visible {
		return false
	}
	d.Panel.Click(x, y)
	return true
}
