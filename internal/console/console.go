// Package console implements the in-game debug console: a scrollback of
// colored lines, an editable input line with shell-style recall, a command
// registry and a set of watched runtime values.
//
// Commands run inside an error boundary. A failing or panicking command
// becomes one error-colored line; it never reaches the host.
package console

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/sahilm/fuzzy"

	"github.com/vovakirdan/tui-quest/internal/input"
)

// Default buffer sizes.
const (
	DefaultScrollback = 100
	DefaultRecall     = 50
	pageLines         = 10
)

// Command is the capability a console command implements. The returned
// string, when non-empty, is printed as a normal line.
type Command interface {
	Run(args []string) (string, error)
}

// CommandFunc adapts a function to Command.
type CommandFunc func(args []string) (string, error)

// Run calls f(args).
func (f CommandFunc) Run(args []string) (string, error) {
	return f(args)
}

// CommandSpec is a registered command.
type CommandSpec struct {
	Name        string
	Description string
	Handler     Command
}

// HistoryStore persists submitted command lines across runs.
type HistoryStore interface {
	LoadRecall(limit int) ([]string, error)
	AppendRecall(line string) error
}

// Options configures a Console. Zero values select defaults.
type Options struct {
	Scrollback int
	Recall     int
	Store      HistoryStore
	Clipboard  Clipboard
	Logger     *log.Logger
}

// Console is the debug console. It is not safe for concurrent use; the game
// loop owns it.
type Console struct {
	visible bool
	lines   *Ring[Line]
	scroll  int

	input       LineEditor
	recall      *Ring[string]
	recallIndex int

	commands map[string]CommandSpec
	watches  *Watches

	store     HistoryStore
	clipboard Clipboard
	logger    *log.Logger
}

// New creates a console with the built-in commands registered.
func New(opts Options) *Console {
	if opts.Scrollback <= 0 {
		opts.Scrollback = DefaultScrollback
	}
	if opts.Recall <= 0 {
		opts.Recall = DefaultRecall
	}

	c := &Console{
		lines:     NewRing[Line](opts.Scrollback),
		recall:    NewRing[string](opts.Recall),
		commands:  make(map[string]CommandSpec),
		watches:   NewWatches(),
		store:     opts.Store,
		clipboard: opts.Clipboard,
		logger:    opts.Logger,
	}
	c.registerBuiltins()

	if c.store != nil {
		saved, err := c.store.LoadRecall(opts.Recall)
		if err != nil {
			c.warn("could not load console history", err)
		}
		for _, line := range saved {
			c.recall.Push(line)
		}
	}
	c.recallIndex = c.recall.Len()
	return c
}

// Visible reports whether the console is open.
func (c *Console) Visible() bool {
	return c.visible
}

// Toggle opens or closes the console.
func (c *Console) Toggle() {
	c.visible = !c.visible
}

// SetVisible opens or closes the console.
func (c *Console) SetVisible(v bool) {
	c.visible = v
}

// Print appends text in the normal color. Each line of text becomes one
// scrollback line.
func (c *Console) Print(text string) {
	c.PrintColor(text, ColorText)
}

// Printf formats and prints in the normal color.
func (c *Console) Printf(format string, args ...any) {
	c.PrintColor(fmt.Sprintf(format, args...), ColorText)
}

// Errorf formats and prints in the error color.
func (c *Console) Errorf(format string, args ...any) {
	c.PrintColor(fmt.Sprintf(format, args...), ColorError)
}

// PrintColor appends text in the given color.
func (c *Console) PrintColor(text string, color Color) {
	for _, l := range strings.Split(text, "\n") {
		c.lines.Push(Line{Text: l, Color: color})
	}
}

// Lines returns the scrollback, oldest first.
func (c *Console) Lines() []Line {
	return c.lines.Items()
}

// ClearLines empties the scrollback.
func (c *Console) ClearLines() {
	c.lines.Clear()
	c.scroll = 0
}

// Window returns up to n scrollback lines ending at the current scroll offset.
func (c *Console) Window(n int) []Line {
	end := c.lines.Len() - c.scroll
	start := max(end-n, 0)
	out := make([]Line, 0, end-start)
	for i := start; i < end; i++ {
		out = append(out, c.lines.At(i))
	}
	return out
}

// Scroll moves the scrollback view by delta lines; positive scrolls back.
func (c *Console) Scroll(delta int) {
	c.scroll = max(0, min(c.scroll+delta, c.lines.Len()-1))
}

// ScrollOffset returns how many lines the view is scrolled back.
func (c *Console) ScrollOffset() int {
	return c.scroll
}

// Input returns the input line.
func (c *Console) Input() *LineEditor {
	return &c.input
}

// Recall returns the submitted command lines, oldest first.
func (c *Console) Recall() []string {
	return c.recall.Items()
}

// Watches returns the watched-variable set.
func (c *Console) Watches() *Watches {
	return c.watches
}

// Register adds or replaces a command.
func (c *Console) Register(name, description string, h Command) {
	c.commands[name] = CommandSpec{Name: name, Description: description, Handler: h}
}

// RegisterFunc is Register for a plain function.
func (c *Console) RegisterFunc(name, description string, fn func(args []string) (string, error)) {
	c.Register(name, description, CommandFunc(fn))
}

// Deregister removes a command and reports whether it existed.
func (c *Console) Deregister(name string) bool {
	_, ok := c.commands[name]
	delete(c.commands, name)
	return ok
}

// Commands returns the registered commands sorted by name.
func (c *Console) Commands() []CommandSpec {
	out := make([]CommandSpec, 0, len(c.commands))
	for _, spec := range c.commands {
		out = append(out, spec)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

// Submit executes the input line and resets it.
func (c *Console) Submit() {
	text := c.input.Text()
	if strings.TrimSpace(text) == "" {
		return
	}
	c.Execute(text)
	c.input.Clear()
	c.recallIndex = c.recall.Len()
	c.scroll = 0
}

// Execute runs one command line as if it had been submitted: it is recorded
// in the recall buffer, echoed, tokenized on whitespace and dispatched.
func (c *Console) Execute(text string) {
	if strings.TrimSpace(text) == "" {
		return
	}

	c.recall.Push(text)
	c.recallIndex = c.recall.Len()
	if c.store != nil {
		if err := c.store.AppendRecall(text); err != nil {
			c.warn("could not save console history", err)
		}
	}
	c.PrintColor("> "+text, ColorCommand)

	fields := strings.Fields(text)
	name, args := fields[0], fields[1:]

	spec, ok := c.commands[name]
	if !ok {
		c.PrintColor("Unknown command: "+name, ColorError)
		return
	}

	if c.logger != nil {
		c.logger.Debug("console command", "name", name, "args", args)
	}
	out, err := run(spec.Handler, args)
	if err != nil {
		c.PrintColor("Error: "+err.Error(), ColorError)
		return
	}
	if out != "" {
		c.Print(out)
	}
}

// run invokes h, converting a panic into an error.
func run(h Command, args []string) (out string, err error) {
	defer func() {
		if p := recover(); p != nil {
			out, err = "", fmt.Errorf("%v", p)
		}
	}()
	return h.Run(args)
}

// RecallUp steps back through submitted lines.
func (c *Console) RecallUp() {
	if c.recallIndex == 0 || c.recall.Len() == 0 {
		return
	}
	c.recallIndex--
	c.input.Set(c.recall.At(c.recallIndex))
}

// RecallDown steps forward; stepping past the newest line clears the input.
func (c *Console) RecallDown() {
	if c.recallIndex >= c.recall.Len() {
		return
	}
	c.recallIndex++
	if c.recallIndex == c.recall.Len() {
		c.input.Clear()
		return
	}
	c.input.Set(c.recall.At(c.recallIndex))
}

// Complete extends the input to the single command name it prefixes, or
// lists the candidates when there are several. Without a prefix match the
// input is matched fuzzily, best first.
func (c *Console) Complete() {
	text := c.input.Text()
	if strings.ContainsAny(text, " \t") {
		return
	}

	var names, matches []string
	for _, spec := range c.Commands() {
		names = append(names, spec.Name)
		if strings.HasPrefix(spec.Name, text) {
			matches = append(matches, spec.Name)
		}
	}
	if len(matches) == 0 && text != "" {
		for _, m := range fuzzy.Find(text, names) {
			matches = append(matches, m.Str)
		}
	}

	switch len(matches) {
	case 0:
	case 1:
		c.input.Set(matches[0] + " ")
	default:
		c.PrintColor(strings.Join(matches, "  "), ColorInfo)
	}
}

// Paste inserts the clipboard contents as a single edit.
func (c *Console) Paste() {
	if c.clipboard == nil {
		return
	}
	text, err := c.clipboard.ReadAll()
	if err != nil {
		c.PrintColor("Paste failed: "+err.Error(), ColorError)
		return
	}
	c.insert(text)
}

func (c *Console) insert(text string) {
	text = strings.Map(func(r rune) rune {
		switch {
		case r == '\n' || r == '\r' || r == '\t':
			return ' '
		case r < ' ':
			return -1
		}
		return r
	}, text)
	c.input.Insert(text)
}

// HandleKey applies one key to the line editor.
func (c *Console) HandleKey(ev input.Event) {
	switch ev.Key {
	case "enter":
		c.Submit()
	case "backspace", "ctrl+h":
		c.input.Backspace()
	case "delete", "ctrl+d":
		c.input.Delete()
	case "left", "ctrl+b":
		c.input.Left()
	case "right", "ctrl+f":
		c.input.Right()
	case "home", "ctrl+a":
		c.input.Home()
	case "end", "ctrl+e":
		c.input.End()
	case "up":
		c.RecallUp()
	case "down":
		c.RecallDown()
	case "pgup":
		c.Scroll(pageLines)
	case "pgdown":
		c.Scroll(-pageLines)
	case "tab":
		c.Complete()
	case "ctrl+u":
		c.input.Clear()
	case "ctrl+v":
		c.Paste()
	default:
		if ev.Text != "" {
			c.insert(ev.Text)
		}
	}
}

func (c *Console) warn(msg string, err error) {
	if c.logger != nil {
		c.logger.Warn(msg, "error", err)
	}
}
