package viewport

import (
	"fmt"
	"image"
	"io"
	"math"

	"picture-viewer/internal/config"
	"picture-viewer/internal/imaging"
	"picture-viewer/internal/logger"
)

const component = "viewport"

// ImageCodec decodes, resizes and encodes images on behalf of the controller.
type ImageCodec interface {
	DecodeFile(path string) (image.Image, error)
	Decode(r io.Reader) (image.Image, error)
	Resize(img image.Image, width, height int) (image.Image, error)
	EncodeFile(path string, img image.Image, format imaging.Format, opts *imaging.EncodeOptions) error
}

// WindowHost presents the rendered image and owns window placement.
type WindowHost interface {
	ShowImage(img image.Image)
	MoveWindow(pos image.Point)
	PlaceImage(pos image.Point)
	SetMovableCursor(movable bool)
}

// Controller owns the loaded image, zoom factor and drag state, and turns raw
// pointer and wheel events into view updates. It is not safe for concurrent
// use; every call is expected on the UI goroutine.
type Controller struct {
	codec    ImageCodec
	host     WindowHost
	settings *config.Settings
	logger   logger.Logger

	state *ViewState
}

// NewController creates a controller with no image loaded. settings is shared
// with the settings dialog, so zoom speed changes apply to the next wheel event.
func NewController(codec ImageCodec, host WindowHost, settings *config.Settings, log logger.Logger) *Controller {
	if settings == nil {
		settings = config.Default()
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Controller{
		codec:    codec,
		host:     host,
		settings: settings,
		logger:   log,
		state:    newViewState(nil, ""),
	}
}

// Load replaces the view state with a freshly decoded image at 1x zoom. On
// failure the previous state is kept and an *ImageLoadError is returned.
func (c *Controller) Load(src Source) error {
	img, err := src.decode(c.codec)
	if err != nil {
		return &ImageLoadError{Source: src.String(), Err: err}
	}

	next := newViewState(img, src.path())
	rendered, err := c.renderState(next)
	if err != nil {
		return &ImageLoadError{Source: src.String(), Err: err}
	}

	c.state = next
	c.present(rendered)

	w, h := c.state.BaseSize()
	c.logger.Info(component, "image loaded", map[string]interface{}{
		"source": src.String(),
		"width":  w,
		"height": h,
	})
	return nil
}

// Wheel zooms in for a positive delta and out otherwise. The zoom factor is
// deliberately left unclamped.
func (c *Controller) Wheel(delta float64) error {
	if !c.HasImage() {
		return nil
	}

	previous := c.state.Zoom
	speed := c.zoomSpeed()
	if delta > 0 {
		c.state.Zoom *= speed
	} else {
		c.state.Zoom /= speed
	}

	c.logger.Debug(component, "zoom changed", map[string]interface{}{
		"zoom":  c.state.Zoom,
		"speed": speed,
	})

	if err := c.Render(); err != nil {
		c.state.Zoom = previous
		return err
	}
	return nil
}

// DragStart records the anchor in window-local coordinates.
func (c *Controller) DragStart(p image.Point) {
	anchor := p
	c.state.DragAnchor = &anchor
}

// DragMove takes the pointer in screen coordinates. The mode is re-evaluated on
// every move, so zooming mid-gesture switches between moving the window and
// panning the image.
func (c *Controller) DragMove(p image.Point) {
	if c.state.DragAnchor == nil {
		return
	}

	delta := p.Sub(*c.state.DragAnchor)
	switch c.Mode() {
	case WindowDragMode:
		c.state.WindowOffset = delta
		c.host.MoveWindow(delta)
	case ImagePanMode:
		c.state.ImageOffset = delta
		c.host.PlaceImage(delta)
	}
}

// DragEnd clears the anchor.
func (c *Controller) DragEnd() {
	c.state.DragAnchor = nil
}

// Render resizes the source to the current zoom and hands it to the host.
// On failure the host keeps showing the previous rendering.
func (c *Controller) Render() error {
	if !c.HasImage() {
		return nil
	}

	rendered, err := c.renderState(c.state)
	if err != nil {
		return err
	}
	c.present(rendered)
	return nil
}

func (c *Controller) renderState(state *ViewState) (image.Image, error) {
	w, h := renderSize(state)
	if w <= 0 || h <= 0 {
		return image.NewRGBA(image.Rect(0, 0, max(w, 0), max(h, 0))), nil
	}

	rendered, err := c.codec.Resize(state.Source, w, h)
	if err != nil {
		return nil, fmt.Errorf("failed to render at %dx%d: %w", w, h, err)
	}
	return rendered, nil
}

func (c *Controller) present(rendered image.Image) {
	c.state.ImageOffset = image.Point{}
	c.host.ShowImage(rendered)
	c.host.PlaceImage(c.state.ImageOffset)
	c.host.SetMovableCursor(c.state.Zoom > 1.0)
}

// RenderSize is the pixel size the image is drawn at for the current zoom.
func (c *Controller) RenderSize() (int, int) {
	return renderSize(c.state)
}

func renderSize(state *ViewState) (int, int) {
	w, h := state.BaseSize()
	return scale(w, state.Zoom), scale(h, state.Zoom)
}

// SaveAs encodes the source image. quality is forwarded only for lossy formats.
func (c *Controller) SaveAs(path string, format imaging.Format, quality int) error {
	if !c.HasImage() {
		return &ImageSaveError{Path: path, Err: imaging.ErrNoImage}
	}

	var opts *imaging.EncodeOptions
	if format.Lossy() {
		opts = &imaging.EncodeOptions{Quality: quality}
	}

	if err := c.codec.EncodeFile(path, c.state.Source, format, opts); err != nil {
		return &ImageSaveError{Path: path, Err: err}
	}

	c.logger.Info(component, "image saved", map[string]interface{}{
		"path":   path,
		"format": string(format),
	})
	return nil
}

// Save picks the format from the file extension of path.
func (c *Controller) Save(path string, quality int) error {
	format, err := imaging.FormatFromPath(path)
	if err != nil {
		return &ImageSaveError{Path: path, Err: err}
	}
	return c.SaveAs(path, format, quality)
}

// Mode reports the drag behaviour for the current zoom factor.
func (c *Controller) Mode() Mode {
	if c.state.Zoom == DefaultZoom {
		return WindowDragMode
	}
	return ImagePanMode
}

func (c *Controller) Zoom() float64 { return c.state.Zoom }

func (c *Controller) HasImage() bool { return c.state.Source != nil }

// State returns a copy of the current view state.
func (c *Controller) State() ViewState {
	s := *c.state
	if s.DragAnchor != nil {
		anchor := *s.DragAnchor
		s.DragAnchor = &anchor
	}
	return s
}

func (c *Controller) zoomSpeed() float64 {
	if c.settings.ZoomSpeed > 1 {
		return c.settings.ZoomSpeed
	}
	return DefaultZoomSpeed
}

func scale(n int, zoom float64) int {
	return int(math.Round(float64(n) * zoom))
}
