// Package clipboard reads image payloads from the system clipboard.
package clipboard

import (
	"errors"
	"fmt"
	"sync"

	"picture-viewer/internal/logger"

	xclipboard "golang.design/x/clipboard"
)

// ErrNoImage means the clipboard holds no image payload.
var ErrNoImage = errors.New("clipboard does not contain an image")

// Reader returns the encoded image currently on the clipboard.
type Reader interface {
	ReadImage() ([]byte, error)
}

// System reads the operating system clipboard. The underlying library is
// initialised lazily on first use.
type System struct {
	once    sync.Once
	initErr error
	logger  logger.Logger
}

func NewSystem(log logger.Logger) *System {
	if log == nil {
		log = logger.NewNop()
	}
	return &System{logger: log}
}

// ReadImage returns the PNG-encoded clipboard image.
func (s *System) ReadImage() ([]byte, error) {
	s.once.Do(func() {
		s.initErr = xclipboard.Init()
	})
	if s.initErr != nil {
		return nil, fmt.Errorf("clipboard unavailable: %w", s.initErr)
	}

	data := xclipboard.Read(xclipboard.FmtImage)
	if len(data) == 0 {
		return nil, ErrNoImage
	}
	return data, nil
}

// Probe reports whether r currently holds an image. Failures are logged and
// reported as "no image".
func Probe(r Reader, log logger.Logger) ([]byte, bool) {
	data, err := r.ReadImage()
	if err != nil {
		if !errors.Is(err, ErrNoImage) && log != nil {
			log.Warning("clipboard", "clipboard inspection failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
		return nil, false
	}
	return data, true
}
