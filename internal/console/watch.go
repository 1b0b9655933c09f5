package console

import (
	"errors"
	"fmt"
)

// ErrUnknownVariable is returned for a watched-variable name that was never set.
var ErrUnknownVariable = errors.New("console: unknown variable")

// Variable is a named snapshot pushed by an external collaborator.
type Variable struct {
	Name    string
	Value   any
	Watched bool
}

// Watches holds watched variables in registration order. The console only
// reads and formats values; callers own the updates.
type Watches struct {
	vars  map[string]*Variable
	order []string
}

// NewWatches creates an empty variable set.
func NewWatches() *Watches {
	return &Watches{vars: make(map[string]*Variable)}
}

// Set registers name or replaces its snapshot. The watched flag is kept.
func (w *Watches) Set(name string, value any) {
	if v, ok := w.vars[name]; ok {
		v.Value = value
		return
	}
	w.vars[name] = &Variable{Name: name, Value: value}
	w.order = append(w.order, name)
}

// Get returns the snapshot for name.
func (w *Watches) Get(name string) (any, bool) {
	v, ok := w.vars[name]
	if !ok {
		return nil, false
	}
	return v.Value, true
}

// Watch flags name for the collapsed overlay.
func (w *Watches) Watch(name string) error {
	return w.flag(name, true)
}

// Unwatch clears the overlay flag of name.
func (w *Watches) Unwatch(name string) error {
	return w.flag(name, false)
}

func (w *Watches) flag(name string, on bool) error {
	v, ok := w.vars[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownVariable, name)
	}
	v.Watched = on
	return nil
}

// All returns every variable in registration order.
func (w *Watches) All() []Variable {
	out := make([]Variable, 0, len(w.order))
	for _, name := range w.order {
		out = append(out, *w.vars[name])
	}
	return out
}

// Watched returns the flagged variables in registration order.
func (w *Watches) Watched() []Variable {
	var out []Variable
	for _, name := range w.order {
		if v := w.vars[name]; v.Watched {
			out = append(out, *v)
		}
	}
	return out
}

// Len returns the number of registered variables.
func (w *Watches) Len() int {
	return len(w.order)
}
