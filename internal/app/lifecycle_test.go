package app

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func TestShutdownClosesInReverseOrder(t *testing.T) {
	l := NewLifecycle(nil)

	var order []string
	l.Register("first", closerFunc(func() error {
		order = append(order, "first")
		return nil
	}))
	l.Register("second", closerFunc(func() error {
		order = append(order, "second")
		return errors.New("already closed")
	}))

	l.Shutdown()
	l.Shutdown()

	assert.Equal(t, []string{"second", "first"}, order)
	select {
	case <-l.Done():
	default:
		t.Fatal("done channel not closed")
	}
}

func TestShutdownDoesNotWaitForeverOnSlowComponent(t *testing.T) {
	l := NewLifecycle(nil)
	l.timeout = 20 * time.Millisecond

	release := make(chan struct{})
	defer close(release)
	l.Register("stuck", closerFunc(func() error {
		<-release
		return nil
	}))

	start := time.Now()
	l.Shutdown()
	assert.Less(t, time.Since(start), time.Second)
}

func TestListenStopsAfterShutdown(t *testing.T) {
	l := NewLifecycle(nil)
	called := false
	l.Listen(func() { called = true })
	l.Shutdown()
	time.Sleep(10 * time.Millisecond)
	assert.False(t, called)
}

func TestLoadSettings(t *testing.T) {
	settings, err := loadSettings(Options{LoadLast: true})
	assert.NoError(t, err)
	assert.True(t, settings.LoadLastImage)
	assert.Equal(t, 1.1, settings.ZoomSpeed)

	_, err = loadSettings(Options{ConfigPath: "does-not-exist.yaml"})
	assert.Error(t, err)
}
