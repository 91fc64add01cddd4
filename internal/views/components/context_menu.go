package components

import (
	"picture-viewer/internal/imaging"

	"fyne.io/fyne/v2"
)

// MenuActions are the callbacks behind the right-click menu.
type MenuActions struct {
	Save          func()
	OpenFile      func()
	OpenClipboard func()
	Convert       func(imaging.Format)
	Settings      func()
	Close         func()
}

// NewContextMenu builds the viewer's right-click menu.
func NewContextMenu(actions MenuActions) *fyne.Menu {
	openItem := fyne.NewMenuItem("Open Image", nil)
	openItem.ChildMenu = fyne.NewMenu("",
		fyne.NewMenuItem("From File", call(actions.OpenFile)),
		fyne.NewMenuItem("From Clipboard", call(actions.OpenClipboard)),
	)

	convertItem := fyne.NewMenuItem("Convert To", nil)
	convertItem.ChildMenu = fyne.NewMenu("")
	for _, format := range imaging.SupportedFormats {
		format := format
		convertItem.ChildMenu.Items = append(convertItem.ChildMenu.Items,
			fyne.NewMenuItem(string(format), func() {
				if actions.Convert != nil {
					actions.Convert(format)
				}
			}))
	}

	return fyne.NewMenu("",
		fyne.NewMenuItem("Save Image", call(actions.Save)),
		openItem,
		convertItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Settings", call(actions.Settings)),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Close", call(actions.Close)),
	)
}

func call(fn func()) func() {
	return func() {
		if fn != nil {
			fn()
		}
	}
}
