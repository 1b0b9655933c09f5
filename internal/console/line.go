package console

import (
	"strings"

	"github.com/rivo/uniseg"
)

// LineEditor is the console's editable input line. Positions count grapheme
// clusters, so a cursor never lands inside a combined character.
// The cursor always satisfies 0 <= Cursor() <= Len().
type LineEditor struct {
	clusters []string
	cursor   int
}

func splitGraphemes(s string) []string {
	var out []string
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		out = append(out, gr.Str())
	}
	return out
}

// Text returns the current line.
func (e *LineEditor) Text() string {
	return strings.Join(e.clusters, "")
}

// Len returns the line length in grapheme clusters.
func (e *LineEditor) Len() int {
	return len(e.clusters)
}

// Cursor returns the cursor position.
func (e *LineEditor) Cursor() int {
	return e.cursor
}

// Before returns the text left of the cursor.
func (e *LineEditor) Before() string {
	return strings.Join(e.clusters[:e.cursor], "")
}

// After returns the text from the cursor to the end.
func (e *LineEditor) After() string {
	return strings.Join(e.clusters[e.cursor:], "")
}

// Set replaces the line and moves the cursor to its end.
func (e *LineEditor) Set(text string) {
	e.clusters = splitGraphemes(text)
	e.cursor = len(e.clusters)
}

// Clear empties the line.
func (e *LineEditor) Clear() {
	e.clusters = nil
	e.cursor = 0
}

// Insert places s at the cursor as one edit and advances past it.
func (e *LineEditor) Insert(s string) {
	add := splitGraphemes(s)
	if len(add) == 0 {
		return
	}
	next := make([]string, 0, len(e.clusters)+len(add))
	next = append(next, e.clusters[:e.cursor]...)
	next = append(next, add...)
	next = append(next, e.clusters[e.cursor:]...)
	e.clusters = next
	e.cursor += len(add)
}

// Backspace deletes the cluster before the cursor. No-op at position 0.
func (e *LineEditor) Backspace() bool {
	if e.cursor == 0 {
		return false
	}
	e.clusters = append(e.clusters[:e.cursor-1], e.clusters[e.cursor:]...)
	e.cursor--
	return true
}

// Delete removes the cluster at the cursor. No-op at the end of the line.
func (e *LineEditor) Delete() bool {
	if e.cursor >= len(e.clusters) {
		return false
	}
	e.clusters = append(e.clusters[:e.cursor], e.clusters[e.cursor+1:]...)
	return true
}

// Left moves the cursor one cluster left.
func (e *LineEditor) Left() {
	if e.cursor > 0 {
		e.cursor--
	}
}

// Right moves the cursor one cluster right.
func (e *LineEditor) Right() {
	if e.cursor < len(e.clusters) {
		e.cursor++
	}
}

// Home jumps to the start of the line.
func (e *LineEditor) Home() {
	e.cursor = 0
}

// End jumps to the end of the line.
func (e *LineEditor) End() {
	e.cursor = len(e.clusters)
}
