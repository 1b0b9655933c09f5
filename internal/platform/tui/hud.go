package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/tui-quest/internal/input"
)

// hudKeys is the footer's help.KeyMap, rebuilt from the live bindings each
// frame so runtime rebinds show up immediately.
type hudKeys []key.Binding

func (k hudKeys) ShortHelp() []key.Binding {
	return k
}

func (k hudKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k}
}

type hudEntry struct {
	actions []input.Action
	desc    string
}

var hudEntries = map[input.Mode][]hudEntry{
	input.ModeMenu: {
		{[]input.Action{input.ActionUp, input.ActionDown}, "select"},
		{[]input.Action{input.ActionConfirm}, "choose"},
		{[]input.Action{input.ActionQuit}, "quit"},
	},
	input.ModePlaying: {
		{[]input.Action{input.ActionUp, input.ActionLeft, input.ActionDown, input.ActionRight}, "move"},
		{[]input.Action{input.ActionPause}, "pause"},
		{[]input.Action{input.ActionRestart}, "restart"},
		{[]input.Action{input.ActionQuit}, "menu"},
	},
	input.ModePaused: {
		{[]input.Action{input.ActionLeft, input.ActionRight}, "select"},
		{[]input.Action{input.ActionConfirm}, "choose"},
		{[]input.Action{input.ActionRestart}, "restart"},
	},
}

// hudBindings lists the current mode's actions and the console key. A group
// of actions is labelled with the first key of each.
func hudBindings(b *input.Bindings, mode input.Mode, toggle string) hudKeys {
	var out hudKeys
	for _, e := range hudEntries[mode] {
		var all, first []string
		for _, act := range e.actions {
			keys := b.Keys(act)
			for _, k := range keys {
				all = append(all, string(k))
			}
			if len(keys) > 0 {
				first = append(first, keyLabel(keys[0]))
			}
		}
		if len(all) == 0 {
			continue
		}
		out = append(out, key.NewBinding(key.WithKeys(all...), key.WithHelp(strings.Join(first, "/"), e.desc)))
	}
	out = append(out, key.NewBinding(key.WithKeys(toggle), key.WithHelp(toggle, "console")))
	return out
}
