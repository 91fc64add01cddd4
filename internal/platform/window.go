// Package platform exposes the native window operations fyne does not cover:
// moving an undecorated window, keeping it above other windows and reading
// the pointer position in screen coordinates.
package platform

import (
	"image"

	"picture-viewer/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver"
)

// Window wraps the native handle of a fyne window. Where the platform has no
// implementation, moves are rejected and the origin stays where it was.
type Window struct {
	handle uintptr
	origin image.Point
	logger logger.Logger
}

// Attach resolves the native handle of w. It must run on the UI thread after
// the window has been shown.
func Attach(w fyne.Window, log logger.Logger) *Window {
	if log == nil {
		log = logger.NewNop()
	}
	pw := &Window{logger: log}

	nw, ok := w.(driver.NativeWindow)
	if !ok {
		log.Debug("platform", "native window access unavailable", nil)
		return pw
	}

	nw.RunNative(func(ctx any) {
		pw.handle = handleFromContext(ctx)
	})

	if origin, err := windowOrigin(pw.handle); err == nil {
		pw.origin = origin
	}

	log.Debug("platform", "native window attached", map[string]interface{}{
		"native": pw.handle != 0,
		"origin": pw.origin.String(),
	})
	return pw
}

// Move places the top-left corner of the window at pos in screen coordinates.
func (w *Window) Move(pos image.Point) error {
	if err := moveWindow(w.handle, pos); err != nil {
		return err
	}
	w.origin = pos
	return nil
}

// SetTopmost keeps the window above normal windows.
func (w *Window) SetTopmost(topmost bool) error {
	return setTopmost(w.handle, topmost)
}

// Origin returns the last known top-left corner of the window.
func (w *Window) Origin() image.Point {
	return w.origin
}

// ScreenPosition converts a window-local point into screen coordinates. The
// native cursor position is preferred when available.
func (w *Window) ScreenPosition(local image.Point) image.Point {
	if p, err := cursorPosition(); err == nil {
		return p
	}
	return w.origin.Add(local)
}

func handleFromContext(ctx any) uintptr {
	switch c := ctx.(type) {
	case driver.WindowsWindowContext:
		return c.HWND
	case driver.X11WindowContext:
		return c.WindowHandle
	case driver.MacWindowContext:
		return c.NSWindow
	default:
		return 0
	}
}
