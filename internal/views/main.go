package views

import (
	"errors"
	"image"

	"picture-viewer/internal/config"
	"picture-viewer/internal/imaging"
	"picture-viewer/internal/logger"
	"picture-viewer/internal/platform"
	"picture-viewer/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
)

const (
	AppName = "Picture Viewer"

	defaultWidth  = 400
	defaultHeight = 300
	dialogWidth   = 720
	dialogHeight  = 520

	clipboardPrompt = "There is an image in the clipboard. Do you want to open it?"
)

// InputHandlers receive pointer input translated to the coordinate spaces the
// viewport expects: window-local for presses, screen for drags.
type InputHandlers struct {
	Press   func(local image.Point)
	Drag    func(screen image.Point)
	Release func()
	Scroll  func(dy float64)
}

// MainView is the borderless viewer window. It presents rendered images,
// places the window natively and hosts the menu and dialogs.
type MainView struct {
	app    fyne.App
	window fyne.Window
	canvas *components.ImageCanvas
	native *platform.Window
	menu   *fyne.Menu
	logger logger.Logger

	input        InputHandlers
	moveReported bool
	// modal counts open dialogs; pointer input and the menu are ignored while
	// it is non-zero.
	modal int
	quit  func()
}

// NewMainView creates the viewer window without showing it.
func NewMainView(app fyne.App, log logger.Logger) *MainView {
	if log == nil {
		log = logger.NewNop()
	}

	mv := &MainView{
		app:    app,
		window: newBorderlessWindow(app),
		canvas: components.NewImageCanvas(),
		menu:   components.NewContextMenu(components.MenuActions{}),
		logger: log,
		quit:   app.Quit,
	}

	mv.window.SetPadded(false)
	mv.window.SetMaster()
	mv.window.SetContent(mv.canvas)
	mv.window.Resize(fyne.NewSize(defaultWidth, defaultHeight))
	mv.window.CenterOnScreen()

	mv.window.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyEscape {
			mv.Quit()
		}
	})

	mv.canvas.SetHandlers(components.PointerHandlers{
		OnPress: func(local image.Point) {
			if mv.modal == 0 && mv.input.Press != nil {
				mv.input.Press(local)
			}
		},
		OnDrag: func(local image.Point) {
			if mv.modal == 0 && mv.input.Drag != nil {
				mv.input.Drag(mv.screenPosition(local))
			}
		},
		OnRelease: func() {
			if mv.input.Release != nil {
				mv.input.Release()
			}
		},
		OnScroll: func(dy float32) {
			if mv.modal == 0 && mv.input.Scroll != nil {
				mv.input.Scroll(float64(dy))
			}
		},
		OnSecondary: mv.showContextMenu,
	})

	return mv
}

// newBorderlessWindow prefers the desktop driver's undecorated splash window.
func newBorderlessWindow(app fyne.App) fyne.Window {
	if drv, ok := app.Driver().(desktop.Driver); ok {
		return drv.CreateSplashWindow()
	}
	return app.NewWindow(AppName)
}

// SetInputHandlers connects pointer input to the controller.
func (mv *MainView) SetInputHandlers(h InputHandlers) {
	mv.input = h
}

// SetMenuActions rebuilds the context menu around the given actions.
func (mv *MainView) SetMenuActions(actions components.MenuActions) {
	mv.menu = components.NewContextMenu(actions)
}

// Show displays the window.
func (mv *MainView) Show() {
	mv.window.Show()
}

// AttachNative binds to the native window once it exists and raises it above
// other windows. It must run on the UI thread after Show.
func (mv *MainView) AttachNative() {
	mv.native = platform.Attach(mv.window, mv.logger)
	if err := mv.native.SetTopmost(true); err != nil {
		mv.logger.Debug("view", "always-on-top unavailable", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

// Window returns the underlying fyne window.
func (mv *MainView) Window() fyne.Window {
	return mv.window
}

// Canvas returns the image canvas widget.
func (mv *MainView) Canvas() *components.ImageCanvas {
	return mv.canvas
}

// ShowImage implements viewport.WindowHost.
func (mv *MainView) ShowImage(img image.Image) {
	mv.canvas.SetImage(img, mv.scale())
}

// PlaceImage implements viewport.WindowHost.
func (mv *MainView) PlaceImage(pos image.Point) {
	mv.canvas.PlaceImage(pos, mv.scale())
}

// SetMovableCursor implements viewport.WindowHost.
func (mv *MainView) SetMovableCursor(movable bool) {
	mv.canvas.SetMovable(movable)
}

// MoveWindow implements viewport.WindowHost.
func (mv *MainView) MoveWindow(pos image.Point) {
	if mv.native == nil {
		return
	}
	if err := mv.native.Move(pos); err != nil && !mv.moveReported {
		mv.moveReported = true
		level := mv.logger.Warning
		if errors.Is(err, errors.ErrUnsupported) {
			level = mv.logger.Debug
		}
		level("view", "window move not applied", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

// FitToImage resizes the window to the given pixel size.
func (mv *MainView) FitToImage(width, height int) {
	scale := mv.scale()
	mv.window.Resize(fyne.NewSize(float32(width)/scale, float32(height)/scale))
}

// Quit ends the application without confirmation.
func (mv *MainView) Quit() {
	mv.quit()
}

// ConfirmClipboard asks whether the clipboard image should be opened.
func (mv *MainView) ConfirmClipboard(onResult func(bool)) {
	mv.withDialogWindow("Clipboard Image", func(w fyne.Window, done func()) {
		dialog.ShowConfirm("Clipboard Image", clipboardPrompt, func(yes bool) {
			done()
			onResult(yes)
		}, w)
	})
}

// PickImageFile shows the open dialog. onPicked receives "" on cancel.
func (mv *MainView) PickImageFile(onPicked func(path string)) {
	mv.withDialogWindow("Open Image", func(w fyne.Window, done func()) {
		d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
			done()
			if err != nil {
				mv.logger.Error("view", err, map[string]interface{}{"dialog": "open"})
				onPicked("")
				return
			}
			if reader == nil {
				onPicked("")
				return
			}
			path := reader.URI().Path()
			reader.Close()
			onPicked(path)
		}, w)
		d.SetFilter(storage.NewExtensionFileFilter(imaging.ReadableExtensions()))
		d.Resize(fyne.NewSize(dialogWidth, dialogHeight))
		d.Show()
	})
}

// PickSavePath shows the save dialog, filtered to format when one is given.
// onPicked receives "" on cancel.
func (mv *MainView) PickSavePath(format imaging.Format, onPicked func(path string)) {
	mv.withDialogWindow("Save Image", func(w fyne.Window, done func()) {
		d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
			done()
			if err != nil {
				mv.logger.Error("view", err, map[string]interface{}{"dialog": "save"})
				onPicked("")
				return
			}
			if writer == nil {
				onPicked("")
				return
			}
			path := writer.URI().Path()
			writer.Close()
			onPicked(path)
		}, w)

		if format == "" {
			format = imaging.JPEG
			d.SetFilter(storage.NewExtensionFileFilter(imaging.ReadableExtensions()))
		} else {
			d.SetFilter(storage.NewExtensionFileFilter(format.Extensions()))
		}
		d.SetFileName("image" + format.Extension())
		d.Resize(fyne.NewSize(dialogWidth, dialogHeight))
		d.Show()
	})
}

// EditSettings shows the modal settings dialog. onSave runs only on confirm.
func (mv *MainView) EditSettings(current *config.Settings, onSave func(*config.Settings)) {
	mv.withDialogWindow("Settings", func(w fyne.Window, done func()) {
		form := components.NewSettingsForm(current)
		d := dialog.NewForm("Settings", "Save", "Cancel", form.Items(), func(confirmed bool) {
			done()
			if confirmed {
				onSave(form.Result())
			}
		}, w)
		d.Resize(fyne.NewSize(dialogWidth/2, dialogHeight/2))
		d.Show()
	})
}

// ShowError reports err to the user.
func (mv *MainView) ShowError(err error) {
	mv.withDialogWindow("Error", func(w fyne.Window, done func()) {
		d := dialog.NewError(err, w)
		d.SetOnClosed(done)
		d.Show()
	})
}

func (mv *MainView) showContextMenu(pos fyne.Position) {
	if mv.modal > 0 {
		return
	}
	widget.ShowPopUpMenuAtPosition(mv.menu, mv.window.Canvas(), pos)
}

// Modal reports whether a dialog is open.
func (mv *MainView) Modal() bool {
	return mv.modal > 0
}

// withDialogWindow hosts a dialog in its own decorated window, since the
// viewer window may be too small to contain it. The viewer stays modal until
// the dialog finishes or its window is closed.
func (mv *MainView) withDialogWindow(title string, show func(w fyne.Window, done func())) {
	mv.modal++
	released := false
	release := func() {
		if !released {
			released = true
			mv.modal--
		}
	}

	w := mv.app.NewWindow(title)
	w.SetOnClosed(release)
	w.Resize(fyne.NewSize(dialogWidth, dialogHeight))
	w.CenterOnScreen()
	w.Show()

	show(w, func() {
		release()
		w.Close()
	})
}

func (mv *MainView) screenPosition(local image.Point) image.Point {
	if mv.native == nil {
		return local
	}
	return mv.native.ScreenPosition(local)
}

func (mv *MainView) scale() float32 {
	if s := mv.window.Canvas().Scale(); s > 0 {
		return s
	}
	return 1
}
