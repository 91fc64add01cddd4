package imaging

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/bmp"
)

// DefaultJPEGQuality is used when a JPEG is encoded without explicit options.
const DefaultJPEGQuality = 95

// ErrNoImage is returned when an operation needs a loaded image.
var ErrNoImage = errors.New("no image loaded")

// EncodeOptions carries settings for lossy formats. Lossless encoders ignore it.
type EncodeOptions struct {
	Quality int
}

// Codec decodes, encodes and resizes images. Decoding supports JPEG, PNG, GIF
// and BMP; resizing is delegated to a Resizer.
type Codec struct {
	resizer Resizer
}

// NewCodec creates a codec. A nil resizer selects the DrawResizer.
func NewCodec(resizer Resizer) *Codec {
	if resizer == nil {
		resizer = NewDrawResizer()
	}
	return &Codec{resizer: resizer}
}

// DecodeFile opens and decodes the image at path.
func (c *Codec) DecodeFile(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	return c.Decode(bufio.NewReader(file))
}

// Decode reads an image in any supported format.
func (c *Codec) Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// Resize scales img to width x height.
func (c *Codec) Resize(img image.Image, width, height int) (image.Image, error) {
	return c.resizer.Resize(img, width, height)
}

// EncodeFile writes img to path. A partially written file is removed on failure.
func (c *Codec) EncodeFile(path string, img image.Image, format Format, opts *EncodeOptions) (err error) {
	if img == nil {
		return fmt.Errorf("no image data to save")
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		closeErr := file.Close()
		if err == nil && closeErr != nil {
			err = fmt.Errorf("failed to close %s: %w", path, closeErr)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	w := bufio.NewWriter(file)
	if err := Encode(w, img, format, opts); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, format Format, opts *EncodeOptions) error {
	var err error
	switch format {
	case JPEG:
		quality := DefaultJPEGQuality
		if opts != nil {
			quality = clampQuality(opts.Quality)
		}
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
	case PNG:
		err = png.Encode(w, img)
	case BMP:
		err = bmp.Encode(w, img)
	case GIF:
		err = gif.Encode(w, toPaletted(img), nil)
	default:
		return fmt.Errorf("unsupported image format %q", format)
	}
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", format, err)
	}
	return nil
}

func clampQuality(q int) int {
	switch {
	case q < 1:
		return 1
	case q > 100:
		return 100
	default:
		return q
	}
}

func toPaletted(img image.Image) *image.Paletted {
	if p, ok := img.(*image.Paletted); ok {
		return p
	}
	bounds := img.Bounds()
	dst := image.NewPaletted(bounds, palette.Plan9)
	draw.FloydSteinberg.Draw(dst, bounds, img, bounds.Min)
	return dst
}
