package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-quest/internal/config"
	"github.com/vovakirdan/tui-quest/internal/console"
	"github.com/vovakirdan/tui-quest/internal/core"
	"github.com/vovakirdan/tui-quest/internal/game"
	"github.com/vovakirdan/tui-quest/internal/input"
	"github.com/vovakirdan/tui-quest/internal/storage"
	"github.com/vovakirdan/tui-quest/internal/ui"
)

// AppOptions configures one App.
type AppOptions struct {
	Config    config.Config
	Level     config.LevelFile
	Store     *storage.Store // nil disables score saving
	Logger    *log.Logger
	Clipboard console.Clipboard
	ScreenW   int
	ScreenH   int
}

// App is the context object for one player: every subsystem of a running
// quest hangs off it, so several sessions can share a process.
type App struct {
	cfg    config.Config
	store  *storage.Store
	logger *log.Logger

	Modes    *input.ModeController
	Bindings *input.Bindings
	Router   *input.Router
	Console  *console.Console
	World    *game.World
	UI       *ui.Manager

	screen    *core.Screen
	menu      *ui.Panel
	menuFocus *ui.FocusGroup
	pause     *ui.Dialog
	over      *ui.Dialog
	health    *ui.Bar
	coins     *ui.Bar

	watchGate *console.Throttle
	fps       float64
	quit      bool
}

// hudRows is the status line above the level; the help footer is drawn
// below the screen buffer.
const hudRows = 1

// NewApp wires a complete quest session.
func NewApp(opts AppOptions) (*App, error) {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	cfg := opts.Config

	bindings, err := cfg.InputBindings()
	if err != nil {
		return nil, err
	}
	lvl, err := game.NewLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	a := &App{
		cfg:       cfg,
		store:     opts.Store,
		logger:    opts.Logger,
		Modes:     input.NewModeController(input.ModeMenu),
		Bindings:  bindings,
		UI:        ui.NewManager(),
		screen:    core.NewScreen(max(opts.ScreenW, 1), max(opts.ScreenH-1, 1)),
		watchGate: console.NewThrottle(cfg.Console.WatchInterval),
	}

	var history console.HistoryStore
	if cfg.Console.PersistHistory && opts.Store != nil {
		history = opts.Store
	}
	a.Console = console.New(console.Options{
		Scrollback: cfg.Console.Scrollback,
		Recall:     cfg.Console.Recall,
		Store:      history,
		Clipboard:  opts.Clipboard,
		Logger:     opts.Logger,
	})

	a.Router = input.NewRouter(a.Modes, a.Bindings,
		input.WithConsole(a.Console, input.Key(cfg.Console.Toggle)),
		input.WithConsoleCapture(cfg.Console.Capture),
		input.WithErrorBoundary(opts.Logger),
	)

	a.World = game.NewWorld(lvl, cfg.Player, a.screen.Width(), a.viewRows())
	a.World.OnEnd(a.runEnded)

	a.buildWidgets()
	a.Resize(opts.ScreenW, opts.ScreenH)
	a.Modes.OnChange(a.modeChanged)
	a.modeChanged(input.ModeGlobal, a.Modes.Current())

	a.registerHandlers()
	game.RegisterCommands(a.Console, &a.World)
	a.registerCommands()
	a.World.PushWatches(a.Console.Watches())
	return a, nil
}

func (a *App) viewRows() int {
	return max(a.screen.Height()-hudRows, 1)
}

// Resize adapts the layout to a w by h terminal.
func (a *App) Resize(w, h int) {
	w, h = max(w, 1), max(h-1, 1)
	a.screen.Resize(w, h)
	a.World.Resize(w, a.viewRows())

	a.menu.Rect = core.NewRect((w-30)/2, (h-9)/2, 30, 9)
	for i, b := range a.menuFocus.Buttons() {
		b.MoveTo(a.menu.Rect.X+(30-b.Rect.W)/2, a.menu.Rect.Y+4+2*i)
	}
	a.pause.Layout(w, h)
	a.over.Layout(w, h)

	barW := max(min(10, (w-30)/2), 3)
	a.health.X, a.health.Y, a.health.Width = 1, 0, barW
	a.coins.X, a.coins.Y, a.coins.Width = w/2, 0, barW
}

func (a *App) buildWidgets() {
	start := ui.NewButton("Start", a.startRun)
	quit := ui.NewButton("Quit", a.Quit)
	a.menuFocus = ui.NewFocusGroup(start, quit)
	a.menu = ui.NewPanel(core.Rect{}, "QUEST", start, quit)

	a.pause = ui.NewDialog("Paused", "The dungeon waits.",
		ui.NewButton("Resume", func() { a.Modes.Set(input.ModePlaying) }),
		ui.NewButton("Menu", func() { a.Modes.Set(input.ModeMenu) }),
	)
	a.over = ui.NewDialog("Game Over", "",
		ui.NewButton("Retry", a.startRun),
		ui.NewButton("Menu", func() { a.Modes.Set(input.ModeMenu) }),
	)

	p := a.World.Player
	a.health = ui.NewBar("HP", 10, p.Health, p.MaxHealth, core.ColorBrightRed)
	taken, total := a.World.Level.Coins()
	a.coins = ui.NewBar("Coins", 10, taken, total, core.ColorCoin)
}

func (a *App) startRun() {
	a.World.Reset()
	p := a.World.Player
	a.health.Set(p.Health, p.MaxHealth)
	a.health.Snap()
	a.Modes.Set(input.ModePlaying)
}

// modeChanged swaps the widget set to match the mode.
func (a *App) modeChanged(from, to input.Mode) {
	a.logger.Debug("mode changed", "from", from, "to", to)
	a.UI.Clear()

	switch to {
	case input.ModeMenu:
		a.pause.Hide()
		a.over.Hide()
		a.menuFocus.Reset()
		a.UI.Add(a.menu)
	case input.ModePlaying:
		a.pause.Hide()
		a.over.Hide()
		a.UI.Add(a.health, a.coins)
	case input.ModePaused:
		if !a.over.Visible() {
			a.pause.Show()
		}
		a.UI.Add(a.health, a.coins, a.pause, a.over)
	}
}

// dialog returns the modal dialog that owns paused-mode input.
func (a *App) dialog() *ui.Dialog {
	if a.over.Visible() {
		return a.over
	}
	return a.pause
}

func (a *App) runEnded(state core.GameState, coins int) {
	verdict := "You fell in the dark."
	if state.Won {
		verdict = "You escaped!"
	}
	a.over.Message = fmt.Sprintf("%s\nScore %d", verdict, state.Score)
	a.over.Layout(a.screen.Width(), a.screen.Height())
	a.over.Show()

	a.logger.Info("run ended", "level", a.World.Level.Name, "score", state.Score, "won", state.Won)
	if a.store != nil {
		if _, err := a.store.SaveScore(a.World.Level.Name, state.Score, coins, state.Won); err != nil {
			a.logger.Warn("could not save score", "error", err)
		}
	}
	a.Modes.Set(input.ModePaused)
}

// Quit asks the program to exit after the current frame.
func (a *App) Quit() {
	a.quit = true
}

// Quitting reports whether Quit was called.
func (a *App) Quitting() bool {
	return a.quit
}

// FPS returns the measured frame rate.
func (a *App) FPS() float64 {
	return a.fps
}

// Config returns the configuration the app was built with.
func (a *App) Config() config.Config {
	return a.cfg
}

// Screen returns the frame buffer.
func (a *App) Screen() *core.Screen {
	return a.screen
}

// Frame runs one tick: reset per-frame input state, dispatch the queued
// events in order, then update the simulation and widgets.
func (a *App) Frame(events []input.Event, now time.Time, dt, fps float64) {
	a.fps = fps
	a.Router.BeginFrame()
	for _, ev := range events {
		if err := a.Router.Dispatch(ev); err != nil {
			a.logger.Error("dispatch failed", "kind", ev.Kind, "key", ev.Key, "error", err)
		}
	}

	if a.Modes.Is(input.ModePlaying) {
		a.World.Update(a.Router.MovementVector(), dt)
	}

	p := a.World.Player
	a.health.Set(p.Health, p.MaxHealth)
	a.coins.Set(a.World.Level.Coins())
	a.UI.Update(dt)

	if a.watchGate.Ready(now) {
		a.World.PushWatches(a.Console.Watches())
	}
}

// Draw renders the world and widgets into the frame buffer.
func (a *App) Draw() {
	a.screen.Clear()
	if !a.Modes.Is(input.ModeMenu) {
		a.World.Render(a.screen, core.NewRect(0, hudRows, a.screen.Width(), a.viewRows()))
	} else {
		a.screen.DrawTextCentered(a.menu.Rect.Y-2, a.World.Level.Name, core.ColorGray)
	}
	a.UI.Draw(a.screen)

	if a.Modes.Is(input.ModePlaying) || a.Modes.Is(input.ModePaused) {
		score := fmt.Sprintf("Score %d", a.World.State().Score)
		a.screen.DrawTextColor(a.screen.Width()-len(score)-1, 0, score, core.ColorWhite)
	}
}

// registerHandlers installs every input handler from the current bindings.
// It starts from an empty table so it can run again after a rebind.
func (a *App) registerHandlers() {
	r := a.Router
	r.Reset()

	on := func(fn func()) input.Handler {
		return input.HandlerFunc(func(input.Event) (bool, error) {
			fn()
			return true, nil
		})
	}

	r.RegisterFunc(input.ModeGlobal, input.KeyDown, "ctrl+c", func(input.Event) (bool, error) {
		a.Quit()
		return true, nil
	})
	r.RegisterFunc(input.ModeGlobal, input.PointerDown, input.ButtonLeft, func(ev input.Event) (bool, error) {
		return a.UI.Click(ev.X, ev.Y), nil
	})
	r.RegisterFunc(input.ModeGlobal, input.Scroll, input.KeyScrollWheel, func(ev input.Event) (bool, error) {
		if !a.Console.Visible() {
			return false, nil
		}
		a.Console.Scroll(-ev.DY)
		return true, nil
	})

	r.RegisterAction(input.ModeMenu, input.KeyDown, input.ActionUp, on(a.menuFocus.Prev))
	r.RegisterAction(input.ModeMenu, input.KeyDown, input.ActionDown, on(a.menuFocus.Next))
	r.RegisterAction(input.ModeMenu, input.KeyDown, input.ActionConfirm, on(a.menuFocus.Activate))
	r.RegisterAction(input.ModeMenu, input.KeyDown, input.ActionQuit, on(a.Quit))

	r.RegisterAction(input.ModePlaying, input.KeyDown, input.ActionPause, on(func() { a.Modes.Set(input.ModePaused) }))
	r.RegisterAction(input.ModePlaying, input.KeyDown, input.ActionRestart, on(a.startRun))
	r.RegisterAction(input.ModePlaying, input.KeyDown, input.ActionQuit, on(func() { a.Modes.Set(input.ModeMenu) }))

	for _, act := range []input.Action{input.ActionUp, input.ActionLeft} {
		r.RegisterAction(input.ModePaused, input.KeyDown, act, on(func() { a.dialog().Focus.Prev() }))
	}
	for _, act := range []input.Action{input.ActionDown, input.ActionRight} {
		r.RegisterAction(input.ModePaused, input.KeyDown, act, on(func() { a.dialog().Focus.Next() }))
	}
	r.RegisterAction(input.ModePaused, input.KeyDown, input.ActionConfirm, on(func() { a.dialog().Focus.Activate() }))
	r.RegisterAction(input.ModePaused, input.KeyDown, input.ActionRestart, on(a.startRun))
	r.RegisterAction(input.ModePaused, input.KeyDown, input.ActionPause, input.HandlerFunc(func(input.Event) (bool, error) {
		if a.over.Visible() {
			return false, nil
		}
		a.Modes.Set(input.ModePlaying)
		return true, nil
	}))
}

// registerCommands adds the console commands that act on the app itself.
func (a *App) registerCommands() {
	a.Console.RegisterFunc("mode", "mode [menu|playing|paused]", func(args []string) (string, error) {
		if len(args) == 0 {
			return "mode " + a.Modes.Current().String(), nil
		}
		m, ok := input.ParseMode(args[0])
		if !ok {
			return "", fmt.Errorf("unknown mode %q", args[0])
		}
		a.Modes.Set(m)
		return "mode " + m.String(), nil
	})

	a.Console.RegisterFunc("bind", "bind <action> <keys...>", func(args []string) (string, error) {
		if len(args) < 2 {
			return "usage: bind <action> <keys...>", nil
		}
		keys := make([]input.Key, 0, len(args)-1)
		for _, k := range args[1:] {
			keys = append(keys, input.Key(keyArg(k)))
		}
		if err := a.Bindings.Rebind(input.Action(args[0]), keys...); err != nil {
			return "", err
		}
		a.registerHandlers()
		return fmt.Sprintf("%s = %s", args[0], formatKeys(a.Bindings.Keys(input.Action(args[0])))), nil
	})

	a.Console.RegisterFunc("keys", "Show the key bindings", func([]string) (string, error) {
		return BindingTable(a.Bindings), nil
	})

	a.Console.RegisterFunc("quit", "Exit the game", func([]string) (string, error) {
		a.Quit()
		return "bye", nil
	})
}

// keyArg lets console users type keys that whitespace tokenizing would eat.
func keyArg(k string) string {
	if k == "space" {
		return " "
	}
	return k
}

func formatKeys(keys []input.Key) string {
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = keyLabel(k)
	}
	return strings.Join(names, ", ")
}

// keyLabel names a key for display.
func keyLabel(k input.Key) string {
	if k == " " {
		return "space"
	}
	return string(k)
}

// BindingTable renders every action and its keys, one per line.
func BindingTable(b *input.Bindings) string {
	lines := make([]string, 0, len(b.Actions()))
	for _, act := range b.Actions() {
		lines = append(lines, fmt.Sprintf("%-8s %s", act, formatKeys(b.Keys(act))))
	}
	return strings.Join(lines, "\n")
}
