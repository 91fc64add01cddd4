//go:build !windows

package shellreg

import (
	"errors"
	"fmt"
	"runtime"
)

var errUnsupported = fmt.Errorf("shell registration is not available on %s: %w", runtime.GOOS, errors.ErrUnsupported)

func add(string) error { return errUnsupported }

func remove() error { return errUnsupported }
