package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/rivo/uniseg"

	"github.com/vovakirdan/tui-quest/internal/console"
	"github.com/vovakirdan/tui-quest/internal/core"
)

// palette maps core.Color to lipgloss styles for one renderer. SSH sessions
// each get their own renderer so colors follow the client terminal.
type palette map[core.Color]lipgloss.Style

func newPalette(r *lipgloss.Renderer) palette {
	fg := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}
	return palette{
		core.ColorDefault:      r.NewStyle(),
		core.ColorRed:          fg("1"),
		core.ColorGreen:        fg("2"),
		core.ColorYellow:       fg("3"),
		core.ColorBlue:         fg("4"),
		core.ColorMagenta:      fg("5"),
		core.ColorCyan:         fg("6"),
		core.ColorWhite:        fg("7"),
		core.ColorBrightRed:    fg("9"),
		core.ColorBrightGreen:  fg("10"),
		core.ColorBrightYellow: fg("11"),
		core.ColorBrightCyan:   fg("14"),
		core.ColorOrange:       fg("208"),
		core.ColorGray:         fg("245"),
	}
}

// renderScreen converts a Screen buffer to styled lines. Adjacent cells with
// the same color share one style run.
func (p palette) renderScreen(s *core.Screen) []string {
	lines := make([]string, s.Height())
	for y := range s.Height() {
		var sb strings.Builder
		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := p[start]
			if !ok {
				style = p[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
		lines[y] = sb.String()
	}
	return lines
}

// consoleView renders the expanded console as exactly height lines of
// width cells: scrollback, a rule, then the input line with a blinking
// cursor.
func consoleView(r *lipgloss.Renderer, c *console.Console, width, height int, now time.Time) []string {
	if height <= 0 {
		return nil
	}
	bg := lipgloss.Color("#10161c")
	base := r.NewStyle().Background(bg).Width(width).MaxWidth(width)
	rule := r.NewStyle().Foreground(lipgloss.Color("#3a4a5a")).Background(bg)

	out := make([]string, 0, height)
	body := height - 2
	if body > 0 {
		window := c.Window(body)
		for i := len(window); i < body; i++ {
			out = append(out, base.Render(""))
		}
		for _, l := range window {
			out = append(out, base.Foreground(lipgloss.Color(l.Color.Hex())).Render(clip(l.Text, width)))
		}
	}

	label := ""
	if off := c.ScrollOffset(); off > 0 {
		label = " scrolled " + strconv.Itoa(off) + " "
	}
	out = append(out, rule.Render(clip(label+strings.Repeat("─", width), width)))

	in := c.Input()
	prompt := base.Foreground(lipgloss.Color(console.ColorCommand.Hex()))
	under := " "
	after := in.After()
	if after != "" {
		g := uniseg.NewGraphemes(after)
		g.Next()
		under = g.Str()
		after = after[len(under):]
	}
	cursor := r.NewStyle().Background(bg).Foreground(lipgloss.Color(console.ColorText.Hex()))
	if console.CursorOn(now) {
		cursor = cursor.Reverse(true)
	}
	line := prompt.UnsetWidth().Render("> "+in.Before()) + cursor.Render(under) + prompt.UnsetWidth().Render(after)
	out = append(out, base.Render(line))

	if len(out) > height {
		out = out[len(out)-height:]
	}
	return out
}

// overlayColor maps console line colors onto the screen palette.
func overlayColor(c console.Color) core.Color {
	switch c {
	case console.ColorError:
		return core.ColorBrightRed
	case console.ColorInfo:
		return core.ColorYellow
	case console.ColorCommand:
		return core.ColorBrightCyan
	default:
		return core.ColorWhite
	}
}

// drawOverlay writes the collapsed-console lines into the top-right corner.
func drawOverlay(s *core.Screen, lines []console.Line, top int) {
	for i, l := range lines {
		text := clip(l.Text, s.Width())
		s.DrawTextColor(s.Width()-uniseg.StringWidth(text)-1, top+i, text, overlayColor(l.Color))
	}
}

// clip truncates text to width cells on grapheme boundaries.
func clip(text string, width int) string {
	if uniseg.StringWidth(text) <= width {
		return text
	}
	var sb strings.Builder
	w := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		gw := g.Width()
		if w+gw > width {
			break
		}
		sb.WriteString(g.Str())
		w += gw
	}
	return sb.String()
}
