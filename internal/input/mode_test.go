package input

import "testing"

func TestModeControllerSet(t *testing.T) {
	c := NewModeController(ModeMenu)

	var transitions [][2]Mode
	c.OnChange(func(from, to Mode) {
		transitions = append(transitions, [2]Mode{from, to})
	})

	c.Set(ModePlaying)
	c.Set(ModePlaying) // idempotent
	c.Set(ModePaused)
	c.Set(ModeMenu) // any to any
	c.Set(ModeGlobal)

	if !c.Is(ModeMenu) {
		t.Errorf("Current() = %v, expected menu", c.Current())
	}
	if len(transitions) != 3 {
		t.Fatalf("listener saw %d transitions, expected 3: %v", len(transitions), transitions)
	}
	if transitions[1] != [2]Mode{ModePlaying, ModePaused} {
		t.Errorf("second transition = %v", transitions[1])
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range []Mode{ModeMenu, ModePlaying, ModePaused} {
		got, ok := ParseMode(m.String())
		if !ok || got != m {
			t.Errorf("ParseMode(%q) = %v, %v", m.String(), got, ok)
		}
	}
	if _, ok := ParseMode("global"); ok {
		t.Error("global is not a game mode")
	}
}

func TestNewModeControllerRejectsGlobal(t *testing.T) {
	if c := NewModeController(ModeGlobal); !c.Is(ModeMenu) {
		t.Errorf("Current() = %v, expected menu", c.Current())
	}
}
