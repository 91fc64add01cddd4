package components

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

var backgroundColor = color.Black

// PointerHandlers receive pointer input from the ImageCanvas. Positions are
// window-local, in device pixels.
type PointerHandlers struct {
	OnPress     func(local image.Point)
	OnDrag      func(local image.Point)
	OnRelease   func()
	OnScroll    func(dy float32)
	OnSecondary func(pos fyne.Position)
}

// ImageCanvas shows one image on a black background. The image is positioned
// manually so it can be panned independently of the layout.
type ImageCanvas struct {
	widget.BaseWidget

	background *canvas.Rectangle
	image      *canvas.Image
	movable    bool
	dragging   bool
	handlers   PointerHandlers
}

func NewImageCanvas() *ImageCanvas {
	ic := &ImageCanvas{
		background: canvas.NewRectangle(backgroundColor),
		image:      canvas.NewImageFromImage(nil),
	}
	ic.image.FillMode = canvas.ImageFillStretch
	ic.image.ScaleMode = canvas.ImageScaleSmooth
	ic.ExtendBaseWidget(ic)
	return ic
}

// SetHandlers replaces the pointer callbacks.
func (ic *ImageCanvas) SetHandlers(h PointerHandlers) {
	ic.handlers = h
}

// SetImage displays img at its pixel size for the given canvas scale.
func (ic *ImageCanvas) SetImage(img image.Image, scale float32) {
	ic.image.Image = img
	if img != nil {
		b := img.Bounds()
		ic.image.Resize(fyne.NewSize(float32(b.Dx())/scale, float32(b.Dy())/scale))
	} else {
		ic.image.Resize(fyne.NewSize(0, 0))
	}
	ic.image.Refresh()
}

// PlaceImage moves the top-left corner of the image to pos, in device pixels.
func (ic *ImageCanvas) PlaceImage(pos image.Point, scale float32) {
	ic.image.Move(fyne.NewPos(float32(pos.X)/scale, float32(pos.Y)/scale))
	ic.Refresh()
}

// ImagePosition returns the image offset in canvas units.
func (ic *ImageCanvas) ImagePosition() fyne.Position {
	return ic.image.Position()
}

// ImageSize returns the displayed image size in canvas units.
func (ic *ImageCanvas) ImageSize() fyne.Size {
	return ic.image.Size()
}

// SetMovable toggles the cursor hint shown while the image can be panned.
func (ic *ImageCanvas) SetMovable(movable bool) {
	ic.movable = movable
}

// Movable reports whether the pan cursor hint is active.
func (ic *ImageCanvas) Movable() bool {
	return ic.movable
}

func (ic *ImageCanvas) Cursor() desktop.Cursor {
	if ic.movable {
		return desktop.CrosshairCursor
	}
	return desktop.DefaultCursor
}

func (ic *ImageCanvas) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	ic.dragging = true
	if ic.handlers.OnPress != nil {
		ic.handlers.OnPress(ic.toPixels(ev.AbsolutePosition))
	}
}

func (ic *ImageCanvas) MouseUp(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	ic.release()
}

func (ic *ImageCanvas) Dragged(ev *fyne.DragEvent) {
	if !ic.dragging {
		return
	}
	if ic.handlers.OnDrag != nil {
		ic.handlers.OnDrag(ic.toPixels(ev.AbsolutePosition))
	}
}

func (ic *ImageCanvas) DragEnd() {
	ic.release()
}

func (ic *ImageCanvas) Scrolled(ev *fyne.ScrollEvent) {
	// Horizontal scrolling carries no zoom intent.
	if ev.Scrolled.DY == 0 {
		return
	}
	if ic.handlers.OnScroll != nil {
		ic.handlers.OnScroll(ev.Scrolled.DY)
	}
}

func (ic *ImageCanvas) TappedSecondary(ev *fyne.PointEvent) {
	if ic.handlers.OnSecondary != nil {
		ic.handlers.OnSecondary(ev.AbsolutePosition)
	}
}

func (ic *ImageCanvas) release() {
	if !ic.dragging {
		return
	}
	ic.dragging = false
	if ic.handlers.OnRelease != nil {
		ic.handlers.OnRelease()
	}
}

func (ic *ImageCanvas) toPixels(pos fyne.Position) image.Point {
	scale := float32(1)
	if c := fyne.CurrentApp().Driver().CanvasForObject(ic); c != nil {
		scale = c.Scale()
	}
	return image.Pt(int(pos.X*scale+0.5), int(pos.Y*scale+0.5))
}

func (ic *ImageCanvas) CreateRenderer() fyne.WidgetRenderer {
	return &imageCanvasRenderer{
		canvas:  ic,
		objects: []fyne.CanvasObject{ic.background, ic.image},
	}
}

type imageCanvasRenderer struct {
	canvas  *ImageCanvas
	objects []fyne.CanvasObject
}

func (r *imageCanvasRenderer) Layout(size fyne.Size) {
	r.canvas.background.Resize(size)
	r.canvas.background.Move(fyne.NewPos(0, 0))
}

func (r *imageCanvasRenderer) MinSize() fyne.Size {
	return fyne.NewSize(1, 1)
}

func (r *imageCanvasRenderer) Refresh() {
	r.canvas.background.Refresh()
	r.canvas.image.Refresh()
}

func (r *imageCanvasRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *imageCanvasRenderer) Destroy() {}
