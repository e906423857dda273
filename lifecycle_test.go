package sparkml

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLifecycle(t *testing.T) {
	runShutdown := false
	shutdownFunc := func() { runShutdown = true }
	// bad state
	l := &Lifecycle{
		State:      StateStopped,
		StartFunc:  func() error { return nil },
		Shutdowner: ShutdownFunc(shutdownFunc),
	}
	err := l.Start()
	assert.True(t, errors.Is(err, ErrNotRunning))
	err = l.CheckRunning()
	assert.True(t, errors.Is(err, ErrNotRunning))
	assert.Equal(t, "not running, state:Stopped", err.Error())
	l.Shutdown()
	assert.False(t, runShutdown)

	// ok
	l.State = StateCreating
	assert.Nil(t, l.Start())
	assert.Nil(t, l.CheckRunning())
	assert.NotNil(t, l.Start())
	l.Shutdown()
	assert.True(t, runShutdown)
	assert.Equal(t, StateStopped, l.State.Get())
	runShutdown = false
	l.Shutdown()
	assert.False(t, runShutdown)

	// start func return error
	l.State = StateCreating
	l.StartFunc = func() error { return errors.New("dial failed") }
	assert.Equal(t, "dial failed", l.Start().Error())
	assert.Equal(t, StateStartFailed, l.State.Get())
	l.Shutdown()
	assert.False(t, runShutdown)

	// no start func
	assert.NotNil(t, (&Lifecycle{}).Start())
}

func TestShutdownCollection(t *testing.T) {
	c := &ShutdownCollection{}
	var order []int
	c.AddFuncs(
		func() { order = append(order, 1) },
		func() { order = append(order, 2) },
	)
	c.AddFuncs(func() { order = append(order, 5) })
	c.Shutdown()
	assert.Equal(t, []int{5, 2, 1}, order)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "Running", StateRunning.String())
	assert.Equal(t, "Unknown(9)", State(9).String())
}
