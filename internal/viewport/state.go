package viewport

import "image"

const (
	DefaultZoom      = 1.0
	DefaultZoomSpeed = 1.1
)

// Mode is the drag behaviour selected by the current zoom factor.
type Mode int

const (
	// WindowDragMode moves the whole window; active at exactly 1x zoom.
	WindowDragMode Mode = iota
	// ImagePanMode moves the rendered image inside the canvas.
	ImagePanMode
)

func (m Mode) String() string {
	if m == WindowDragMode {
		return "window-drag"
	}
	return "image-pan"
}

// ViewState is the per-image view state. It is replaced on every load.
type ViewState struct {
	Source     image.Image
	SourcePath string
	Zoom       float64
	// DragAnchor is set between a press and the matching release.
	DragAnchor   *image.Point
	WindowOffset image.Point
	ImageOffset  image.Point
}

func newViewState(img image.Image, path string) *ViewState {
	return &ViewState{
		Source:     img,
		SourcePath: path,
		Zoom:       DefaultZoom,
	}
}

// BaseSize returns the native pixel size of the source image.
func (s ViewState) BaseSize() (int, int) {
	if s.Source == nil {
		return 0, 0
	}
	b := s.Source.Bounds()
	return b.Dx(), b.Dy()
}
