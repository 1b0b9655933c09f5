package console

import (
	"math/rand"
	"testing"
)

func TestLineEditorEditing(t *testing.T) {
	var e LineEditor

	e.Insert("hllo")
	e.Home()
	e.Right()
	e.Insert("e")
	if e.Text() != "hello" || e.Cursor() != 2 {
		t.Fatalf("Text() = %q cursor %d, expected hello/2", e.Text(), e.Cursor())
	}

	e.End()
	e.Insert(" world")
	if e.Cursor() != 11 {
		t.Errorf("multi-character insert should advance by its length, cursor = %d", e.Cursor())
	}

	e.Backspace()
	if e.Text() != "hello worl" || e.Cursor() != 10 {
		t.Errorf("after Backspace: %q/%d", e.Text(), e.Cursor())
	}

	e.Home()
	if e.Backspace() {
		t.Error("Backspace at 0 should be a no-op")
	}
	e.Delete()
	if e.Text() != "ello worl" || e.Cursor() != 0 {
		t.Errorf("after Delete: %q/%d", e.Text(), e.Cursor())
	}

	e.End()
	if e.Delete() {
		t.Error("Delete at end should be a no-op")
	}
	e.Right()
	if e.Cursor() != e.Len() {
		t.Errorf("Right past end moved the cursor to %d", e.Cursor())
	}
}

func TestLineEditorGraphemes(t *testing.T) {
	var e LineEditor
	e.Insert("ab")
	e.Left()
	e.Insert("e\u0301") // e + combining acute is one cluster

	if e.Len() != 3 || e.Cursor() != 2 {
		t.Fatalf("Len() = %d cursor %d, expected 3/2", e.Len(), e.Cursor())
	}
	e.Backspace()
	if e.Text() != "ab" {
		t.Errorf("Backspace should remove the whole cluster, got %q", e.Text())
	}
}

func TestLineEditorSetMovesCursorToEnd(t *testing.T) {
	var e LineEditor
	e.Set("tp 3 4")
	if e.Cursor() != 6 || e.Before() != "tp 3 4" || e.After() != "" {
		t.Errorf("Set() left cursor at %d", e.Cursor())
	}
}

func TestLineEditorCursorInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	var e LineEditor

	for i := 0; i < 5000; i++ {
		switch rng.Intn(8) {
		case 0:
			e.Insert("x")
		case 1:
			e.Insert("yz")
		case 2:
			e.Backspace()
		case 3:
			e.Delete()
		case 4:
			e.Left()
		case 5:
			e.Right()
		case 6:
			e.Home()
		case 7:
			e.End()
		}
		if e.Cursor() < 0 || e.Cursor() > e.Len() {
			t.Fatalf("step %d: cursor %d outside [0, %d]", i, e.Cursor(), e.Len())
		}
	}
}
