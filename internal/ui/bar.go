package ui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-quest/internal/core"
)

// barRate is how fast the displayed fill approaches the value, per second.
const barRate = 10.0

// Bar is a labelled horizontal gauge, e.g. health or collected coins.
// The fill eases toward Value.
type Bar struct {
	X, Y  int
	Width int // gauge cells, excluding label and numbers
	Label string
	Value int
	Max   int
	Color core.Color

	shown float64
}

// NewBar creates a bar showing value out of maxValue.
func NewBar(label string, width int, value, maxValue int, color core.Color) *Bar {
	return &Bar{Label: label, Width: width, Value: value, Max: maxValue, Color: color, shown: float64(value)}
}

// Set changes the value and maximum.
func (b *Bar) Set(value, maxValue int) {
	b.Value, b.Max = value, maxValue
}

// Snap shows the current value immediately.
func (b *Bar) Snap() {
	b.shown = float64(b.Value)
}

// Update eases the displayed fill.
func (b *Bar) Update(dt float64) {
	b.shown += (float64(b.Value) - b.shown) * min(1, barRate*dt)
}

// Filled returns how many gauge cells are filled.
func (b *Bar) Filled() int {
	if b.Max <= 0 || b.Width <= 0 {
		return 0
	}
	n := int(b.shown/float64(b.Max)*float64(b.Width) + 0.5)
	return core.Clamp(n, 0, b.Width)
}

// String renders "Label [####    ] v/max".
func (b *Bar) String() string {
	filled := b.Filled()
	return fmt.Sprintf("%s [%s%s] %d/%d", b.Label,
		strings.Repeat("█", filled), strings.Repeat("░", b.Width-filled), b.Value, b.Max)
}

// Draw renders the bar at X, Y.
func (b *Bar) Draw(dst *core.Screen) {
	dst.DrawTextColor(b.X, b.Y, b.String(), b.Color)
}
