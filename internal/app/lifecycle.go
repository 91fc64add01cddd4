package app

import (
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"picture-viewer/internal/logger"
)

const defaultCloseTimeout = 5 * time.Second

type component struct {
	name   string
	closer io.Closer
}

// Lifecycle closes background components in reverse registration order when
// the viewer exits or the process receives an interrupt.
type Lifecycle struct {
	components []component
	logger     logger.Logger
	timeout    time.Duration

	mu   sync.Mutex
	done chan struct{}
}

func NewLifecycle(log logger.Logger) *Lifecycle {
	if log == nil {
		log = logger.NewNop()
	}
	return &Lifecycle{
		logger:  log,
		timeout: defaultCloseTimeout,
		done:    make(chan struct{}),
	}
}

func (l *Lifecycle) Register(name string, closer io.Closer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.components = append(l.components, component{name: name, closer: closer})
}

// Listen invokes onSignal once if SIGINT or SIGTERM arrives before Shutdown.
func (l *Lifecycle) Listen(onSignal func()) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigChan)
		select {
		case sig := <-sigChan:
			l.logger.Info("Lifecycle", "shutdown signal received", map[string]interface{}{
				"signal": sig.String(),
			})
			onSignal()
		case <-l.done:
		}
	}()
}

func (l *Lifecycle) Shutdown() {
	l.mu.Lock()
	defer l.mu.Unlock()

	select {
	case <-l.done:
		return
	default:
		close(l.done)
	}

	l.logger.Info("Lifecycle", "shutdown sequence initiated", map[string]interface{}{
		"components": len(l.components),
	})

	for i := len(l.components) - 1; i >= 0; i-- {
		c := l.components[i]

		result := make(chan error, 1)
		go func() {
			result <- c.closer.Close()
		}()

		select {
		case err := <-result:
			if err != nil {
				l.logger.Error("Lifecycle", err, map[string]interface{}{
					"component": c.name,
				})
			}
		case <-time.After(l.timeout):
			l.logger.Warning("Lifecycle", "component close timeout", map[string]interface{}{
				"component": c.name,
			})
		}
	}

	l.logger.Info("Lifecycle", "shutdown sequence completed", nil)
}

// Done is closed once Shutdown has started.
func (l *Lifecycle) Done() <-chan struct{} {
	return l.done
}
