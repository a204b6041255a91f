// Package wizard implements a generic finite-state controller over an ordered
// sequence of form steps. It knows nothing about step content or validation
// rules; guards are supplied by the caller.
package wizard

import (
	"errors"
	"fmt"
)

// StepID names a single step of a multi-step form.
type StepID string

// ErrNoSteps is returned when constructing a wizard with an empty step list.
var ErrNoSteps = errors.New("wizard requires at least one step")

// Wizard tracks the active step over a fixed, ordered step list.
//
// The invariant 0 <= index < len(steps) holds after every operation: failed
// transitions are no-ops. The zero value is not usable; use New.
type Wizard struct {
	steps []StepID
	index int
}

// New creates a wizard positioned at the first step.
func New(steps ...StepID) (*Wizard, error) {
	if len(steps) == 0 {
		return nil, ErrNoSteps
	}
	w := &Wizard{steps: make([]StepID, len(steps))}
	copy(w.steps, steps)
	return w, nil
}

// Current returns the active step.
func (w *Wizard) Current() StepID {
	return w.steps[w.index]
}

// Index returns the zero-based position of the active step.
func (w *Wizard) Index() int {
	return w.index
}

// Len returns the number of steps.
func (w *Wizard) Len() int {
	return len(w.steps)
}

// IsLast reports whether the active step is the final one.
func (w *Wizard) IsLast() bool {
	return w.index == len(w.steps)-1
}

// Advance moves to the next step when one exists and isAllowed permits it.
// The guard is evaluated at most once, before any mutation, so a failing
// guard leaves the wizard untouched. A nil guard always permits.
func (w *Wizard) Advance(isAllowed func() bool) bool {
	if w.index+1 >= len(w.steps) {
		return false
	}
	if isAllowed != nil && !isAllowed() {
		return false
	}
	w.index++
	return true
}

// Retreat moves to the previous step. Backward navigation is never gated;
// at the first step it is a no-op returning false.
func (w *Wizard) Retreat() bool {
	if w.index == 0 {
		return false
	}
	w.index--
	return true
}

// Reset returns the wizard to the first step unconditionally. The wizard is
// reusable; there is no terminal state.
func (w *Wizard) Reset() {
	w.index = 0
}

// Restore positions the wizard at a previously saved index. Used when
// rehydrating wizard state from a session store.
func (w *Wizard) Restore(index int) error {
	if index < 0 || index >= len(w.steps) {
		return fmt.Errorf("wizard: restore index %d out of range [0,%d)", index, len(w.steps))
	}
	w.index = index
	return nil
}
