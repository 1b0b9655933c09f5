// Package ui is a small retained widget set drawn into a core.Screen.
// Widgets implement only the capabilities they need; the Manager discovers
// them with type assertions.
package ui

import "github.com/vovakirdan/tui-quest/internal/core"

// Updatable widgets advance over time.
type Updatable interface {
	Update(dt float64)
}

// Drawable widgets render themselves.
type Drawable interface {
	Draw(dst *core.Screen)
}

// Clickable widgets accept pointer clicks. Click reports whether the click
// was consumed.
type Clickable interface {
	Contains(x, y int) bool
	Click(x, y int) bool
}

// Manager holds top-level widgets. Update and Draw run in insertion order;
// clicks go to the most recently added widget first.
type Manager struct {
	widgets []any
}

// NewManager creates an empty manager.
func NewManager() *Manager {
	return &Manager{}
}

// Add appends widgets.
func (m *Manager) Add(ws ...any) {
	m.widgets = append(m.widgets, ws...)
}

// Remove drops w and reports whether it was present.
func (m *Manager) Remove(w any) bool {
	for i, x := range m.widgets {
		if x == w {
			m.widgets = append(m.widgets[:i], m.widgets[i+1:]...)
			return true
		}
	}
	return false
}

// Clear drops every widget.
func (m *Manager) Clear() {
	m.widgets = nil
}

// Len returns the number of widgets.
func (m *Manager) Len() int {
	return len(m.widgets)
}

// Update advances every Updatable widget.
func (m *Manager) Update(dt float64) {
	for _, w := range m.widgets {
		if u, ok := w.(Updatable); ok {
			u.Update(dt)
		}
	}
}

// Draw renders every Drawable widget.
func (m *Manager) Draw(dst *core.Screen) {
	for _, w := range m.widgets {
		if d, ok := w.(Drawable); ok {
			d.Draw(dst)
		}
	}
}

// Click offers a click to Clickable widgets, topmost first.
func (m *Manager) Click(x, y int) bool {
	return clickTopmost(m.widgets, x, y)
}

func clickTopmost(widgets []any, x, y int) bool {
	for i := len(widgets) - 1; i >= 0; i-- {
		c, ok := widgets[i].(Clickable)
		if !ok || !c.Contains(x, y) {
			continue
		}
		if c.Click(x, y) {
			return true
		}
	}
	return false
}
