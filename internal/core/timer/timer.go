// Package timer implements the count-up study timer.
//
// A Timer only advances when Tick is called, so the caller owns the clock:
// the TUI schedules ticks through Bubble Tea and Run drives one from a
// time.Ticker. Timer methods are safe to call while Run is driving it.
package timer

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// ErrInvalidTransition is returned when an operation does not apply to the
// timer's current state.
var ErrInvalidTransition = errors.New("invalid timer transition")

// State of a timer.
type State int

const (
	Running State = iota
	Paused
	Completed
	Discarded
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Completed:
		return "completed"
	case Discarded:
		return "discarded"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Terminal reports whether no further transitions are possible.
func (s State) Terminal() bool {
	return s == Completed || s == Discarded
}

// Completion is what a finished timer hands to the store.
type Completion struct {
	SubjectID string
	Duration  int
	Memo      string
}

// Timer counts whole seconds studied for one subject.
type Timer struct {
	mu        sync.Mutex
	subjectID string
	elapsed   int
	state     State

	// changed receives a value after every state transition.
	changed chan struct{}
}

// New returns a running timer for subjectID with nothing elapsed.
func New(subjectID string) *Timer {
	return &Timer{subjectID: subjectID, state: Running, changed: make(chan struct{}, 1)}
}

func (t *Timer) SubjectID() string { return t.subjectID }

func (t *Timer) Elapsed() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.elapsed
}

func (t *Timer) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Changed returns a channel that receives after each state transition.
func (t *Timer) Changed() <-chan struct{} {
	return t.changed
}

// Tick advances the timer by one second. It reports whether the tick counted.
func (t *Timer) Tick() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != Running {
		return false
	}
	t.elapsed++
	return true
}

// Pause stops counting.
func (t *Timer) Pause() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != Running {
		return fmt.Errorf("pause while %s: %w", t.state, ErrInvalidTransition)
	}
	t.setState(Paused)
	return nil
}

// Resume continues counting from where the timer was paused.
func (t *Timer) Resume() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != Paused {
		return fmt.Errorf("resume while %s: %w", t.state, ErrInvalidTransition)
	}
	t.setState(Running)
	return nil
}

// Toggle pauses a running timer or resumes a paused one.
func (t *Timer) Toggle() error {
	if t.State() == Running {
		return t.Pause()
	}
	return t.Resume()
}

// setState must be called with mu held.
func (t *Timer) setState(s State) {
	t.state = s
	select {
	case t.changed <- struct{}{}:
	default:
	}
}

// Complete stops the timer for good. A timer that never reached one
// second is discarded instead and ok is false.
func (t *Timer) Complete(memo string) (Completion, bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state.Terminal() {
		return Completion{}, false, fmt.Errorf("complete while %s: %w", t.state, ErrInvalidTransition)
	}
	if t.elapsed < 1 {
		t.setState(Discarded)
		return Completion{}, false, nil
	}
	t.setState(Completed)
	return Completion{
		SubjectID: t.subjectID,
		Duration:  t.elapsed,
		Memo:      strings.TrimSpace(memo),
	}, true, nil
}

// Discard abandons the timer without recording anything.
func (t *Timer) Discard() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state.Terminal() {
		return fmt.Errorf("discard while %s: %w", t.state, ErrInvalidTransition)
	}
	t.setState(Discarded)
	return nil
}
