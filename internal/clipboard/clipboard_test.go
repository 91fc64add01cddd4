package clipboard

import (
	"bytes"
	"errors"
	"testing"

	"picture-viewer/internal/logger"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

type stubReader struct {
	data []byte
	err  error
}

func (s stubReader) ReadImage() ([]byte, error) { return s.data, s.err }

func TestProbe(t *testing.T) {
	data, ok := Probe(stubReader{data: []byte{0x89, 'P', 'N', 'G'}}, nil)
	assert.True(t, ok)
	assert.Len(t, data, 4)

	data, ok = Probe(stubReader{err: ErrNoImage}, nil)
	assert.False(t, ok)
	assert.Nil(t, data)
}

func TestProbeSwallowsAndLogsFailures(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewZerolog(&buf, zerolog.DebugLevel)

	_, ok := Probe(stubReader{err: errors.New("display :0 unavailable")}, log)
	assert.False(t, ok)
	assert.Contains(t, buf.String(), "display :0 unavailable")

	buf.Reset()
	_, ok = Probe(stubReader{err: ErrNoImage}, log)
	assert.False(t, ok)
	assert.Zero(t, buf.Len(), "an empty clipboard is not worth a warning")
}
