package console

import "fmt"

// Color is an RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float64
}

// Line colors.
var (
	ColorText    = Color{R: 0.90, G: 0.90, B: 0.90, A: 1}
	ColorCommand = Color{R: 0.55, G: 0.75, B: 1.00, A: 1}
	ColorError   = Color{R: 1.00, G: 0.40, B: 0.40, A: 1}
	ColorInfo    = Color{R: 0.70, G: 0.70, B: 0.50, A: 1}
)

// Hex returns the color as "#rrggbb". Alpha is ignored.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
}

func channel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Line is one scrollback entry. Lines are never mutated after creation.
type Line struct {
	Text  string
	Color Color
}
