package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-quest/internal/input"
)

// fpsSmoothing weights each new frame-rate sample.
const fpsSmoothing = 0.1

// Model is the Bubble Tea model for one App. Key and mouse messages are
// only queued; each tick dispatches the queue and steps the game.
type Model struct {
	app      *App
	renderer *lipgloss.Renderer
	palette  palette
	help     help.Model

	queue    []input.Event
	releaser *keyReleaser
	slide    consoleSlide

	tick     uint64
	lastTick time.Time
	fps      float64
	width    int
	height   int
}

// NewModel creates the model. renderer decides the color profile; use
// lipgloss.DefaultRenderer() for a local terminal.
func NewModel(app *App, renderer *lipgloss.Renderer) *Model {
	h := help.New()
	h.ShortSeparator = "  "
	return &Model{
		app:      app,
		renderer: renderer,
		palette:  newPalette(renderer),
		help:     h,
		releaser: newKeyReleaser(app.Config().KeyHoldTicks),
		width:    app.Screen().Width(),
		height:   app.Screen().Height() + 1,
	}
}

// Init starts the tick loop.
func (m *Model) Init() tea.Cmd {
	return tickCmd(m.app.Config().TickRate)
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		ev := keyEvent(msg)
		m.releaser.Observe(ev, m.tick)
		m.queue = append(m.queue, ev)

	case tea.MouseMsg:
		if ev, ok := mouseEvent(msg); ok {
			m.queue = append(m.queue, ev)
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.app.Resize(msg.Width, msg.Height)

	case TickMsg:
		return m, m.handleTick(time.Time(msg))
	}
	return m, nil
}

func (m *Model) handleTick(now time.Time) tea.Cmd {
	if !m.lastTick.IsZero() {
		if elapsed := now.Sub(m.lastTick).Seconds(); elapsed > 0 {
			sample := 1 / elapsed
			if m.fps == 0 {
				m.fps = sample
			} else {
				m.fps += (sample - m.fps) * fpsSmoothing
			}
		}
	}
	m.lastTick = now

	// Releases go first: a key that repeated this tick is not expired.
	events := append(m.releaser.Expired(m.tick), m.queue...)
	m.queue = m.queue[:0]

	cfg := m.app.Config()
	dt := 1 / float64(max(cfg.TickRate, 1))
	m.app.Frame(events, now, dt, m.fps)
	m.slide.Update(m.app.Console.Visible(), m.consoleRows(), dt)
	m.tick++

	if m.app.Quitting() {
		return tea.Quit
	}
	return tickCmd(cfg.TickRate)
}

// consoleRows is the open console height: two fifths of the screen.
func (m *Model) consoleRows() int {
	return max(m.app.Screen().Height()*2/5, 6)
}

// View renders the frame: the game screen, the console panel sliding over
// its top, and the key help footer.
func (m *Model) View() string {
	a := m.app
	if a.Quitting() {
		return ""
	}

	a.Draw()
	rows := m.slide.Rows()
	if rows == 0 {
		drawOverlay(a.Screen(), a.Console.Overlay(a.Config().ConsoleOverlay(), a.FPS()), hudRows)
	}

	lines := m.palette.renderScreen(a.Screen())
	if n := min(rows, len(lines)); n > 0 {
		copy(lines, consoleView(m.renderer, a.Console, a.Screen().Width(), n, time.Now()))
	}

	footer := m.help.View(hudBindings(a.Bindings, a.Modes.Current(), a.Config().Console.Toggle))
	return strings.Join(lines, "\n") + "\n" + footer
}

// Run plays the quest in the local terminal until the player quits.
func Run(app *App) error {
	p := tea.NewProgram(
		NewModel(app, lipgloss.DefaultRenderer()),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
