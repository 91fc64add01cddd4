//go:build !windows

package shellreg

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnsupportedPlatform(t *testing.T) {
	assert.ErrorIs(t, Add("/usr/bin/picture-viewer"), errors.ErrUnsupported)
	assert.ErrorIs(t, Remove(), errors.ErrUnsupported)
}
