package opencv

import (
	"fmt"
	"image"

	"picture-viewer/internal/logger"

	"gocv.io/x/gocv"
)

// maxDimension mirrors the size limit OpenCV enforces on Mat extents.
const maxDimension = 32768

// Resizer scales images with OpenCV. Downscaling uses area interpolation and
// upscaling uses bicubic, the closest OpenCV equivalents of an antialiasing
// filter.
type Resizer struct {
	cache  matCache
	logger logger.Logger
}

func NewResizer(log logger.Logger) *Resizer {
	if log == nil {
		log = logger.NewNop()
	}
	return &Resizer{logger: log}
}

// Resize implements imaging.Resizer.
func (r *Resizer) Resize(src image.Image, width, height int) (image.Image, error) {
	if src == nil {
		return nil, fmt.Errorf("input image is nil")
	}
	if err := validateDimensions(width, height); err != nil {
		return nil, err
	}

	srcMat, owned, err := r.cache.acquire(src)
	if err != nil {
		return nil, err
	}
	if owned {
		defer srcMat.Close()
	}

	if srcMat.Empty() {
		return nil, fmt.Errorf("source Mat is empty")
	}

	dstMat := gocv.NewMat()
	defer dstMat.Close()

	interpolation := interpolationFor(srcMat.Cols(), srcMat.Rows(), width, height)
	gocv.Resize(srcMat, &dstMat, image.Pt(width, height), 0, 0, interpolation)

	if dstMat.Empty() {
		return nil, fmt.Errorf("resize to %dx%d produced an empty Mat", width, height)
	}

	out, err := dstMat.ToImage()
	if err != nil {
		return nil, fmt.Errorf("failed to convert resized Mat to image: %w", err)
	}

	r.logger.Debug("opencv", "image resized", map[string]interface{}{
		"from":          fmt.Sprintf("%dx%d", srcMat.Cols(), srcMat.Rows()),
		"to":            fmt.Sprintf("%dx%d", width, height),
		"interpolation": interpolationName(interpolation),
	})

	return out, nil
}

// Stats reports how often source images were converted or reused.
func (r *Resizer) Stats() CacheStats {
	return r.cache.snapshot()
}

// Close releases the cached source Mat.
func (r *Resizer) Close() error {
	stats := r.cache.snapshot()
	r.cache.release()
	r.logger.Debug("opencv", "resizer closed", map[string]interface{}{
		"conversions": stats.Conversions,
		"reuses":      stats.Reuses,
	})
	return nil
}

func interpolationFor(srcW, srcH, dstW, dstH int) gocv.InterpolationFlags {
	if dstW*dstH < srcW*srcH {
		return gocv.InterpolationArea
	}
	return gocv.InterpolationCubic
}

func interpolationName(flag gocv.InterpolationFlags) string {
	switch flag {
	case gocv.InterpolationArea:
		return "area"
	case gocv.InterpolationCubic:
		return "cubic"
	default:
		return fmt.Sprintf("flag(%d)", int(flag))
	}
}

func validateDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid dimensions: %dx%d", width, height)
	}
	if width > maxDimension || height > maxDimension {
		return fmt.Errorf("dimensions %dx%d exceed maximum size %d", width, height, maxDimension)
	}
	return nil
}
