package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-quest/internal/input"
)

func TestKeyEvent(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want input.Event
	}{
		{
			name: "rune",
			msg:  tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")},
			want: input.Event{Kind: input.KeyDown, Key: "a", Text: "a"},
		},
		{
			name: "space",
			msg:  tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")},
			want: input.Event{Kind: input.KeyDown, Key: " ", Text: " "},
		},
		{
			name: "alt rune has no text",
			msg:  tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x"), Alt: true},
			want: input.Event{Kind: input.KeyDown, Key: "alt+x"},
		},
		{
			name: "arrow",
			msg:  tea.KeyMsg{Type: tea.KeyUp},
			want: input.Event{Kind: input.KeyDown, Key: "up"},
		},
		{
			name: "ctrl",
			msg:  tea.KeyMsg{Type: tea.KeyCtrlC},
			want: input.Event{Kind: input.KeyDown, Key: "ctrl+c"},
		},
		{
			name: "paste",
			msg:  tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("tp 3 4"), Paste: true},
			want: input.Event{Kind: input.KeyDown, Key: input.KeyPaste, Text: "tp 3 4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keyEvent(tt.msg); got != tt.want {
				t.Errorf("keyEvent() = %+v, expected %+v", got, tt.want)
			}
		})
	}
}

func TestMouseEvent(t *testing.T) {
	tests := []struct {
		name   string
		msg    tea.MouseMsg
		want   input.Event
		wantOK bool
	}{
		{
			name:   "wheel up",
			msg:    tea.MouseMsg{X: 3, Y: 4, Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress},
			want:   input.Event{Kind: input.Scroll, Key: input.KeyScrollWheel, X: 3, Y: 4, DY: -1},
			wantOK: true,
		},
		{
			name:   "wheel right",
			msg:    tea.MouseMsg{Button: tea.MouseButtonWheelRight, Action: tea.MouseActionPress},
			want:   input.Event{Kind: input.Scroll, Key: input.KeyScrollWheel, DX: 1},
			wantOK: true,
		},
		{
			name:   "wheel release is dropped",
			msg:    tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionRelease},
			wantOK: false,
		},
		{
			name:   "left press",
			msg:    tea.MouseMsg{X: 1, Y: 2, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress},
			want:   input.Event{Kind: input.PointerDown, Key: input.ButtonLeft, X: 1, Y: 2},
			wantOK: true,
		},
		{
			name:   "right release",
			msg:    tea.MouseMsg{Button: tea.MouseButtonRight, Action: tea.MouseActionRelease},
			want:   input.Event{Kind: input.PointerUp, Key: input.ButtonRight},
			wantOK: true,
		},
		{
			name:   "motion",
			msg:    tea.MouseMsg{X: 9, Y: 9, Button: tea.MouseButtonLeft, Action: tea.MouseActionMotion},
			want:   input.Event{Kind: input.PointerMove, X: 9, Y: 9},
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := mouseEvent(tt.msg)
			if ok != tt.wantOK {
				t.Fatalf("mouseEvent() ok = %v, expected %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("mouseEvent() = %+v, expected %+v", got, tt.want)
			}
		})
	}
}

func TestKeyReleaser(t *testing.T) {
	r := newKeyReleaser(3)
	r.Observe(input.KeyPress("d"), 0)
	r.Observe(input.KeyPress("a"), 1)
	r.Observe(input.Event{Kind: input.KeyDown, Key: input.KeyPaste, Text: "x"}, 1)

	if got := r.Expired(2); len(got) != 0 {
		t.Fatalf("Expired(2) = %v, expected none", got)
	}

	// A repeat keeps the key alive.
	r.Observe(input.KeyPress("d"), 2)
	if got := r.Expired(4); len(got) != 1 || got[0] != input.KeyRelease("a") {
		t.Fatalf("Expired(4) = %v, expected release of a", got)
	}
	if got := r.Expired(5); len(got) != 1 || got[0] != input.KeyRelease("d") {
		t.Fatalf("Expired(5) = %v, expected release of d", got)
	}
	if got := r.Expired(100); len(got) != 0 {
		t.Errorf("released keys must be forgotten, got %v", got)
	}
}

func TestKeyReleaserSortsReleases(t *testing.T) {
	r := newKeyReleaser(1)
	for _, k := range []input.Key{"s", "d", "a", "w"} {
		r.Observe(input.KeyPress(k), 0)
	}

	got := r.Expired(1)
	want := []input.Key{"a", "d", "s", "w"}
	if len(got) != len(want) {
		t.Fatalf("Expired() returned %d events, expected %d", len(got), len(want))
	}
	for i, k := range want {
		if got[i].Key != k || got[i].Kind != input.KeyUp {
			t.Errorf("event %d = %+v, expected KeyUp %q", i, got[i], k)
		}
	}
}
