//go:build !windows

package platform

import (
	"errors"
	"image"
)

func moveWindow(uintptr, image.Point) error { return errors.ErrUnsupported }

func setTopmost(uintptr, bool) error { return errors.ErrUnsupported }

func cursorPosition() (image.Point, error) { return image.Point{}, errors.ErrUnsupported }

func windowOrigin(uintptr) (image.Point, error) { return image.Point{}, errors.ErrUnsupported }
