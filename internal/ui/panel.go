package ui

import "github.com/vovakirdan/tui-quest/internal/core"

// Panel is a titled box that owns child widgets. Children use absolute
// screen coordinates.
type Panel struct {
	Rect     core.Rect
	Title    string
	Children []any
}

// NewPanel creates a panel.
func NewPanel(r core.Rect, title string, children ...any) *Panel {
	return &Panel{Rect: r, Title: title, Children: children}
}

// Add appends children.
func (p *Panel) Add(ws ...any) {
	p.Children = append(p.Children, ws...)
}

// Update advances Updatable children.
func (p *Panel) Update(dt float64) {
	for _, w := range p.Children {
		if u, ok := w.(Updatable); ok {
			u.Update(dt)
		}
	}
}

// Draw clears the panel area, frames it and draws the children.
func (p *Panel) Draw(dst *core.Screen) {
	dst.DrawRect(p.Rect, ' ', core.ColorDefault)
	dst.DrawBox(p.Rect, core.ColorFrame)
	if p.Title != "" {
		dst.DrawTextColor(p.Rect.X+2, p.Rect.Y, " "+p.Title+" ", core.ColorBrightCyan)
	}
	for _, w := range p.Children {
		if d, ok := w.(Drawable); ok {
			d.Draw(dst)
		}
	}
}

// Contains reports whether x, y is inside the panel.
func (p *Panel) Contains(x, y int) bool {
	return p.Rect.Contains(x, y)
}

// Click offers the click to children, topmost first. A click on the panel
// background is consumed.
func (p *Panel) Click(x, y int) bool {
	clickTopmost(p.Children, x, y)
	return p.Contains(x, y)
}
