//go:build windows

package platform

import (
	"errors"
	"image"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32            = windows.NewLazySystemDLL("user32.dll")
	procSetWindowPos  = user32.NewProc("SetWindowPos")
	procGetCursorPos  = user32.NewProc("GetCursorPos")
	procGetWindowRect = user32.NewProc("GetWindowRect")
)

const (
	swpNoSize     = 0x0001
	swpNoMove     = 0x0002
	swpNoZOrder   = 0x0004
	swpNoActivate = 0x0010
)

var (
	hwndTopmost   = ^uintptr(0) // HWND_TOPMOST (-1)
	hwndNoTopmost = ^uintptr(1) // HWND_NOTOPMOST (-2)
)

var errNoHandle = errors.New("native window handle not available")

type point struct {
	X, Y int32
}

type rect struct {
	Left, Top, Right, Bottom int32
}

func moveWindow(hwnd uintptr, pos image.Point) error {
	if hwnd == 0 {
		return errNoHandle
	}
	return setWindowPos(hwnd, 0, pos.X, pos.Y, swpNoSize|swpNoZOrder|swpNoActivate)
}

func setTopmost(hwnd uintptr, topmost bool) error {
	if hwnd == 0 {
		return errNoHandle
	}
	after := hwndNoTopmost
	if topmost {
		after = hwndTopmost
	}
	return setWindowPos(hwnd, after, 0, 0, swpNoMove|swpNoSize|swpNoActivate)
}

func setWindowPos(hwnd, after uintptr, x, y int, flags uintptr) error {
	r, _, err := procSetWindowPos.Call(hwnd, after, uintptr(x), uintptr(y), 0, 0, flags)
	if r == 0 {
		return err
	}
	return nil
}

func cursorPosition() (image.Point, error) {
	var p point
	r, _, err := procGetCursorPos.Call(uintptr(unsafe.Pointer(&p)))
	if r == 0 {
		return image.Point{}, err
	}
	return image.Pt(int(p.X), int(p.Y)), nil
}

func windowOrigin(hwnd uintptr) (image.Point, error) {
	if hwnd == 0 {
		return image.Point{}, errNoHandle
	}
	var rc rect
	r, _, err := procGetWindowRect.Call(hwnd, uintptr(unsafe.Pointer(&rc)))
	if r == 0 {
		return image.Point{}, err
	}
	return image.Pt(int(rc.Left), int(rc.Top)), nil
}
