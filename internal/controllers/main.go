package controllers

import (
	"image"

	"picture-viewer/internal/clipboard"
	"picture-viewer/internal/config"
	"picture-viewer/internal/imaging"
	"picture-viewer/internal/logger"
	"picture-viewer/internal/viewport"
	"picture-viewer/internal/views"
	"picture-viewer/internal/views/components"
)

// LastImageKey is the preferences key holding the most recently opened path.
const LastImageKey = "last_image_path"

// UI is the part of the view the controller drives: dialogs, notifications
// and window sizing.
type UI interface {
	ConfirmClipboard(onResult func(bool))
	PickImageFile(onPicked func(path string))
	PickSavePath(format imaging.Format, onPicked func(path string))
	EditSettings(current *config.Settings, onSave func(*config.Settings))
	ShowError(err error)
	FitToImage(width, height int)
	Quit()
}

// Preferences stores the last opened path between runs.
type Preferences interface {
	String(key string) string
	SetString(key, value string)
}

// MainController connects user actions to the viewport and the dialogs.
type MainController struct {
	viewport  *viewport.Controller
	ui        UI
	clipboard clipboard.Reader
	settings  *config.Settings
	prefs     Preferences
	logger    logger.Logger
}

func NewMainController(
	vp *viewport.Controller,
	ui UI,
	clip clipboard.Reader,
	settings *config.Settings,
	prefs Preferences,
	log logger.Logger,
) *MainController {
	if log == nil {
		log = logger.NewNop()
	}
	return &MainController{
		viewport:  vp,
		ui:        ui,
		clipboard: clip,
		settings:  settings,
		prefs:     prefs,
		logger:    log,
	}
}

// Bind wires pointer input and the context menu of view to this controller.
func (mc *MainController) Bind(view *views.MainView) {
	view.SetInputHandlers(views.InputHandlers{
		Press:   mc.HandlePress,
		Drag:    mc.HandleDrag,
		Release: mc.HandleRelease,
		Scroll:  mc.HandleScroll,
	})
	view.SetMenuActions(components.MenuActions{
		Save:          mc.SaveImage,
		OpenFile:      mc.OpenFile,
		OpenClipboard: mc.OpenClipboard,
		Convert:       mc.ConvertImage,
		Settings:      mc.OpenSettings,
		Close:         mc.Close,
	})
}

// Start picks the first image: the path argument, then the last opened image
// when enabled, then a clipboard image after confirmation, then the file picker.
func (mc *MainController) Start(path string) {
	if path != "" {
		mc.loadFile(path)
		return
	}

	if mc.settings.LoadLastImage && mc.prefs != nil {
		if last := mc.prefs.String(LastImageKey); last != "" {
			mc.loadFile(last)
			return
		}
	}

	if data, ok := clipboard.Probe(mc.clipboard, mc.logger); ok {
		mc.ui.ConfirmClipboard(func(yes bool) {
			if yes {
				mc.load(viewport.FromBytes(data))
				return
			}
			mc.OpenFile()
		})
		return
	}

	mc.OpenFile()
}

// OpenFile lets the user pick an image file.
func (mc *MainController) OpenFile() {
	mc.ui.PickImageFile(func(path string) {
		if path == "" {
			return
		}
		mc.loadFile(path)
	})
}

// OpenClipboard loads whatever is on the clipboard now. A missing or non-image
// payload is reported as a load error.
func (mc *MainController) OpenClipboard() {
	data, err := mc.clipboard.ReadImage()
	if err != nil {
		mc.logger.Debug("controller", "clipboard read failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
	mc.load(viewport.FromBytes(data))
}

// SaveImage saves under a user-chosen name; the extension picks the format.
func (mc *MainController) SaveImage() {
	mc.ui.PickSavePath("", func(path string) {
		if path == "" {
			return
		}
		if err := mc.viewport.Save(path, mc.settings.SaveQuality); err != nil {
			mc.reportError(err)
		}
	})
}

// ConvertImage saves a copy in the given format.
func (mc *MainController) ConvertImage(format imaging.Format) {
	mc.ui.PickSavePath(format, func(path string) {
		if path == "" {
			return
		}
		if err := mc.viewport.SaveAs(path, format, mc.settings.SaveQuality); err != nil {
			mc.reportError(err)
		}
	})
}

// OpenSettings edits the shared settings in place.
func (mc *MainController) OpenSettings() {
	mc.ui.EditSettings(mc.settings, func(updated *config.Settings) {
		mc.ApplySettings(updated)
	})
}

// ApplySettings copies updated into the shared settings. The viewport keeps
// its pointer, so the new zoom speed takes effect on the next wheel event.
func (mc *MainController) ApplySettings(updated *config.Settings) {
	updated.Validate()
	mc.settings.Apply(updated)
	mc.logger.Info("controller", "settings updated", map[string]interface{}{
		"zoom_speed":      mc.settings.ZoomSpeed,
		"save_quality":    mc.settings.SaveQuality,
		"load_last_image": mc.settings.LoadLastImage,
	})
}

// Close exits immediately; nothing is saved.
func (mc *MainController) Close() {
	mc.ui.Quit()
}

func (mc *MainController) HandlePress(local image.Point) {
	mc.viewport.DragStart(local)
}

func (mc *MainController) HandleDrag(screen image.Point) {
	mc.viewport.DragMove(screen)
}

func (mc *MainController) HandleRelease() {
	mc.viewport.DragEnd()
}

func (mc *MainController) HandleScroll(dy float64) {
	if err := mc.viewport.Wheel(dy); err != nil {
		mc.logger.Error("controller", err, map[string]interface{}{"zoom": mc.viewport.Zoom()})
	}
}

func (mc *MainController) loadFile(path string) {
	if mc.load(viewport.FromFile(path)) && mc.prefs != nil {
		mc.prefs.SetString(LastImageKey, path)
	}
}

func (mc *MainController) load(src viewport.Source) bool {
	if err := mc.viewport.Load(src); err != nil {
		mc.reportError(err)
		return false
	}
	mc.ui.FitToImage(mc.viewport.RenderSize())
	return true
}

func (mc *MainController) reportError(err error) {
	mc.logger.Error("controller", err, nil)
	mc.ui.ShowError(err)
}
