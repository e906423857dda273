package sparkml

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// ErrNotRunning the session is not under running state
var ErrNotRunning = errors.New("not running")

// State the lifecycle state
type State int32

const (
	// StateCreating created, not started
	StateCreating State = iota
	// StateRunning started
	StateRunning
	// StateStopped shutdowned
	StateStopped
	// StateStartFailed the start func returns error
	StateStartFailed
)

// Set update value atomic
func (s *State) Set(o, n State) bool {
	return atomic.CompareAndSwapInt32((*int32)(s), int32(o), int32(n))
}

// Get get the value atomic
func (s *State) Get() State {
	return State(atomic.LoadInt32((*int32)(s)))
}

func (s State) String() string {
	switch s {
	case StateCreating:
		return "Creating"
	case StateRunning:
		return "Running"
	case StateStopped:
		return "Stopped"
	case StateStartFailed:
		return "StartFailed"
	default:
		return fmt.Sprintf("Unknown(%d)", int32(s))
	}
}

// StateError the operation is not allowed under the state
type StateError struct {
	State State
}

func (e *StateError) Error() string {
	return "not running, state:" + e.State.String()
}

// Is matches ErrNotRunning
func (e *StateError) Is(target error) bool {
	return target == ErrNotRunning
}

// Shutdowner shutdown interface
type Shutdowner interface {
	Shutdown()
}

// ShutdownFunc shutdown func
type ShutdownFunc func()

// Shutdown call shutdown func
func (f ShutdownFunc) Shutdown() {
	f()
}

// ShutdownCollection shutdowns the resources in the reverse order of adding,
// the resource added later depends on the ones added before
type ShutdownCollection struct {
	shutdowns []Shutdowner
}

// AddFuncs adds shutdown funcs
func (c *ShutdownCollection) AddFuncs(fs ...func()) {
	for _, f := range fs {
		c.shutdowns = append(c.shutdowns, ShutdownFunc(f))
	}
}

// Shutdown shutdowns all
func (c *ShutdownCollection) Shutdown() {
	for i := len(c.shutdowns) - 1; i >= 0; i-- {
		c.shutdowns[i].Shutdown()
	}
}

// Lifecycle the start & shutdown state machine, Creating -> Running -> Stopped
//
// Start runs only once, Shutdown does nothing unless running.
type Lifecycle struct {
	State      State
	StartFunc  func() error
	Shutdowner Shutdowner
}

// Start runs the start func if the state is StateCreating
func (l *Lifecycle) Start() error {
	if l.StartFunc == nil {
		return errors.New("empty start func")
	}

	if !l.State.Set(StateCreating, StateStartFailed) {
		return fmt.Errorf("start failed: %w", &StateError{State: l.State.Get()})
	}

	if err := l.StartFunc(); err != nil {
		return err
	}
	l.State.Set(StateStartFailed, StateRunning)
	return nil
}

// CheckRunning returns the StateError if not running
func (l *Lifecycle) CheckRunning() error {
	if s := l.State.Get(); s != StateRunning {
		return &StateError{State: s}
	}
	return nil
}

// Shutdown shutdowns the resources, the state is StateStopped after it
func (l *Lifecycle) Shutdown() {
	if !l.State.Set(StateRunning, StateStopped) {
		return
	}
	if l.Shutdowner != nil {
		l.Shutdowner.Shutdown()
	}
}
