package imaging

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// Resizer scales an image to an exact pixel size using a smoothing filter.
type Resizer interface {
	Resize(src image.Image, width, height int) (image.Image, error)
}

// DrawResizer is the pure-Go resizer built on golang.org/x/image/draw.
type DrawResizer struct {
	Interpolator draw.Interpolator
}

// NewDrawResizer uses Catmull-Rom, the closest match to an antialiasing filter.
func NewDrawResizer() *DrawResizer {
	return &DrawResizer{Interpolator: draw.CatmullRom}
}

func (r *DrawResizer) Resize(src image.Image, width, height int) (image.Image, error) {
	if src == nil {
		return nil, fmt.Errorf("source image is nil")
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid dimensions: %dx%d", width, height)
	}

	interp := r.Interpolator
	if interp == nil {
		interp = draw.CatmullRom
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	interp.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst, nil
}
