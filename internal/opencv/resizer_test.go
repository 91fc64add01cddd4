package opencv

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"
)

func solidImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestResizerScalesToExactSize(t *testing.T) {
	r := NewResizer(nil)
	src := solidImage(40, 20, color.RGBA{R: 200, G: 40, B: 10, A: 255})

	for _, size := range []image.Point{{80, 40}, {13, 7}, {40, 20}, {1, 1}} {
		out, err := r.Resize(src, size.X, size.Y)
		require.NoError(t, err)
		assert.Equal(t, size.X, out.Bounds().Dx())
		assert.Equal(t, size.Y, out.Bounds().Dy())
	}
}

func TestResizerPreservesSolidColour(t *testing.T) {
	r := NewResizer(nil)
	want := color.RGBA{R: 200, G: 40, B: 10, A: 255}

	out, err := r.Resize(solidImage(16, 16, want), 32, 32)
	require.NoError(t, err)

	got := color.RGBAModel.Convert(out.At(16, 16)).(color.RGBA)
	assert.InDelta(t, want.R, got.R, 2)
	assert.InDelta(t, want.G, got.G, 2)
	assert.InDelta(t, want.B, got.B, 2)
}

func TestResizerRejectsBadInput(t *testing.T) {
	r := NewResizer(nil)

	_, err := r.Resize(nil, 10, 10)
	assert.Error(t, err)

	_, err = r.Resize(solidImage(4, 4, color.RGBA{}), 0, 10)
	assert.Error(t, err)

	_, err = r.Resize(solidImage(4, 4, color.RGBA{}), maxDimension+1, 10)
	assert.Error(t, err)
}

func TestInterpolationFor(t *testing.T) {
	assert.Equal(t, gocv.InterpolationArea, interpolationFor(100, 100, 50, 50))
	assert.Equal(t, gocv.InterpolationCubic, interpolationFor(100, 100, 200, 200))
	assert.Equal(t, gocv.InterpolationCubic, interpolationFor(100, 100, 100, 100))
}

func TestResizerReusesSourceMat(t *testing.T) {
	r := NewResizer(nil)
	src := solidImage(30, 30, color.RGBA{G: 255, A: 255})

	for _, size := range []int{33, 36, 40} {
		_, err := r.Resize(src, size, size)
		require.NoError(t, err)
	}
	assert.Equal(t, CacheStats{Conversions: 1, Reuses: 2}, r.Stats())

	_, err := r.Resize(solidImage(10, 10, color.RGBA{A: 255}), 5, 5)
	require.NoError(t, err)
	assert.Equal(t, CacheStats{Conversions: 2, Reuses: 2, Released: 1}, r.Stats())

	require.NoError(t, r.Close())
	assert.Equal(t, int64(2), r.Stats().Released)

	// The resizer stays usable after Close.
	_, err = r.Resize(src, 15, 15)
	require.NoError(t, err)
	require.NoError(t, r.Close())
}
