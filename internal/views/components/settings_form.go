package components

import (
	"fmt"

	"picture-viewer/internal/config"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// SettingsForm edits a copy of the viewer settings.
type SettingsForm struct {
	edited *config.Settings

	zoomSpeed    *widget.Slider
	zoomLabel    *widget.Label
	saveQuality  *widget.Slider
	qualityLabel *widget.Label
	loadLast     *widget.Check
}

func NewSettingsForm(current *config.Settings) *SettingsForm {
	sf := &SettingsForm{edited: current.Clone()}

	sf.zoomLabel = widget.NewLabel("")
	sf.zoomSpeed = widget.NewSlider(config.MinZoomSpeed, config.MaxZoomSpeed)
	sf.zoomSpeed.Step = 0.01
	sf.zoomSpeed.SetValue(sf.edited.ZoomSpeed)
	sf.zoomSpeed.OnChanged = func(v float64) {
		sf.edited.ZoomSpeed = v
		sf.zoomLabel.SetText(fmt.Sprintf("%.2f", v))
	}
	sf.zoomLabel.SetText(fmt.Sprintf("%.2f", sf.edited.ZoomSpeed))

	sf.qualityLabel = widget.NewLabel("")
	sf.saveQuality = widget.NewSlider(config.MinSaveQuality, config.MaxSaveQuality)
	sf.saveQuality.Step = 1
	sf.saveQuality.SetValue(float64(sf.edited.SaveQuality))
	sf.saveQuality.OnChanged = func(v float64) {
		sf.edited.SaveQuality = int(v)
		sf.qualityLabel.SetText(fmt.Sprintf("%d", int(v)))
	}
	sf.qualityLabel.SetText(fmt.Sprintf("%d", sf.edited.SaveQuality))

	sf.loadLast = widget.NewCheck("Load Last Image", func(on bool) {
		sf.edited.LoadLastImage = on
	})
	sf.loadLast.SetChecked(sf.edited.LoadLastImage)

	return sf
}

// Items returns the form rows for a dialog.
func (sf *SettingsForm) Items() []*widget.FormItem {
	return []*widget.FormItem{
		widget.NewFormItem("Zoom Speed", newRow(sf.zoomSpeed, sf.zoomLabel)),
		widget.NewFormItem("Save Image Quality", newRow(sf.saveQuality, sf.qualityLabel)),
		widget.NewFormItem("", sf.loadLast),
	}
}

// Result returns the edited settings, clamped to their allowed ranges.
func (sf *SettingsForm) Result() *config.Settings {
	result := sf.edited.Clone()
	result.Validate()
	return result
}

func newRow(control, value fyne.CanvasObject) fyne.CanvasObject {
	return container.NewBorder(nil, nil, nil, value, control)
}
