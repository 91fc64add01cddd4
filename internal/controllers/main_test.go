package controllers

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"picture-viewer/internal/clipboard"
	"picture-viewer/internal/config"
	"picture-viewer/internal/imaging"
	"picture-viewer/internal/viewport"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUI struct {
	confirmAnswer bool
	confirmCalls  int
	pickPath      string
	pickCalls     int
	savePath      string
	saveFormats   []imaging.Format
	settingsEdit  func(*config.Settings)
	errs          []error
	fitted        []image.Point
	quit          bool
}

func (u *fakeUI) ConfirmClipboard(onResult func(bool)) {
	u.confirmCalls++
	onResult(u.confirmAnswer)
}

func (u *fakeUI) PickImageFile(onPicked func(string)) {
	u.pickCalls++
	onPicked(u.pickPath)
}

func (u *fakeUI) PickSavePath(format imaging.Format, onPicked func(string)) {
	u.saveFormats = append(u.saveFormats, format)
	onPicked(u.savePath)
}

func (u *fakeUI) EditSettings(current *config.Settings, onSave func(*config.Settings)) {
	edited := current.Clone()
	if u.settingsEdit != nil {
		u.settingsEdit(edited)
		onSave(edited)
	}
}

func (u *fakeUI) ShowError(err error)          { u.errs = append(u.errs, err) }
func (u *fakeUI) FitToImage(width, height int) { u.fitted = append(u.fitted, image.Pt(width, height)) }
func (u *fakeUI) Quit()                        { u.quit = true }

type nopHost struct{}

func (nopHost) ShowImage(image.Image)  {}
func (nopHost) MoveWindow(image.Point) {}
func (nopHost) PlaceImage(image.Point) {}
func (nopHost) SetMovableCursor(bool)  {}

type stubClipboard struct {
	data []byte
	err  error
}

func (s stubClipboard) ReadImage() ([]byte, error) { return s.data, s.err }

type memPrefs map[string]string

func (p memPrefs) String(key string) string    { return p[key] }
func (p memPrefs) SetString(key, value string) { p[key] = value }

func writePNG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, w, h))))
	return path
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

type harness struct {
	ctrl     *MainController
	vp       *viewport.Controller
	ui       *fakeUI
	prefs    memPrefs
	settings *config.Settings
}

func newHarness(clip clipboard.Reader) *harness {
	settings := config.Default()
	ui := &fakeUI{}
	prefs := memPrefs{}
	vp := viewport.NewController(imaging.NewCodec(nil), nopHost{}, settings, nil)
	return &harness{
		ctrl:     NewMainController(vp, ui, clip, settings, prefs, nil),
		vp:       vp,
		ui:       ui,
		prefs:    prefs,
		settings: settings,
	}
}

func TestStartWithPath(t *testing.T) {
	h := newHarness(stubClipboard{err: clipboard.ErrNoImage})
	path := writePNG(t, t.TempDir(), "a.png", 32, 16)

	h.ctrl.Start(path)

	assert.True(t, h.vp.HasImage())
	assert.Equal(t, path, h.prefs[LastImageKey])
	assert.Equal(t, []image.Point{image.Pt(32, 16)}, h.ui.fitted)
	assert.Zero(t, h.ui.pickCalls)
	assert.Zero(t, h.ui.confirmCalls)
}

func TestStartWithBadPathReportsLoadError(t *testing.T) {
	h := newHarness(stubClipboard{err: clipboard.ErrNoImage})

	h.ctrl.Start(filepath.Join(t.TempDir(), "missing.png"))

	require.Len(t, h.ui.errs, 1)
	var loadErr *viewport.ImageLoadError
	assert.ErrorAs(t, h.ui.errs[0], &loadErr)
	assert.Empty(t, h.prefs[LastImageKey])
}

func TestStartLoadsLastImageWhenEnabled(t *testing.T) {
	h := newHarness(stubClipboard{data: pngBytes(t, 4, 4)})
	last := writePNG(t, t.TempDir(), "last.png", 10, 10)
	h.prefs[LastImageKey] = last

	h.ctrl.Start("")
	assert.Equal(t, 1, h.ui.confirmCalls, "disabled by default")

	h = newHarness(stubClipboard{data: pngBytes(t, 4, 4)})
	h.prefs[LastImageKey] = last
	h.settings.LoadLastImage = true

	h.ctrl.Start("")
	assert.Zero(t, h.ui.confirmCalls)
	assert.Equal(t, last, h.vp.State().SourcePath)
}

func TestStartOffersClipboardImage(t *testing.T) {
	h := newHarness(stubClipboard{data: pngBytes(t, 6, 3)})
	h.ui.confirmAnswer = true

	h.ctrl.Start("")

	assert.Equal(t, 1, h.ui.confirmCalls)
	assert.Zero(t, h.ui.pickCalls)
	w, ht := h.vp.State().BaseSize()
	assert.Equal(t, 6, w)
	assert.Equal(t, 3, ht)
}

func TestStartDeclinedClipboardOpensPicker(t *testing.T) {
	h := newHarness(stubClipboard{data: pngBytes(t, 6, 3)})
	h.ui.pickPath = writePNG(t, t.TempDir(), "picked.png", 8, 8)

	h.ctrl.Start("")

	assert.Equal(t, 1, h.ui.confirmCalls)
	assert.Equal(t, 1, h.ui.pickCalls)
	assert.Equal(t, h.ui.pickPath, h.vp.State().SourcePath)
}

func TestStartClipboardFailureFallsBackToPicker(t *testing.T) {
	h := newHarness(stubClipboard{err: errors.New("no display")})

	h.ctrl.Start("")

	assert.Zero(t, h.ui.confirmCalls)
	assert.Equal(t, 1, h.ui.pickCalls)
	assert.Empty(t, h.ui.errs, "clipboard failures are not surfaced")
	assert.False(t, h.vp.HasImage())
}

func TestOpenClipboardWithoutImage(t *testing.T) {
	h := newHarness(stubClipboard{err: clipboard.ErrNoImage})
	h.ctrl.Start(writePNG(t, t.TempDir(), "a.png", 5, 5))
	before := h.vp.State()

	h.ctrl.OpenClipboard()

	require.Len(t, h.ui.errs, 1)
	var loadErr *viewport.ImageLoadError
	assert.ErrorAs(t, h.ui.errs[0], &loadErr)
	assert.Equal(t, before, h.vp.State())
}

func TestSaveAndConvert(t *testing.T) {
	h := newHarness(stubClipboard{err: clipboard.ErrNoImage})
	dir := t.TempDir()
	h.ctrl.Start(writePNG(t, dir, "a.png", 5, 5))

	h.ui.savePath = filepath.Join(dir, "copy.jpg")
	h.ctrl.SaveImage()
	assert.FileExists(t, h.ui.savePath)

	h.ui.savePath = filepath.Join(dir, "copy.gif")
	h.ctrl.ConvertImage(imaging.GIF)
	assert.FileExists(t, h.ui.savePath)

	assert.Equal(t, []imaging.Format{"", imaging.GIF}, h.ui.saveFormats)
	assert.Empty(t, h.ui.errs)

	h.ui.savePath = filepath.Join(dir, "missing-dir", "copy.png")
	h.ctrl.ConvertImage(imaging.PNG)
	require.Len(t, h.ui.errs, 1)
	var saveErr *viewport.ImageSaveError
	assert.ErrorAs(t, h.ui.errs[0], &saveErr)
}

func TestSaveCancelled(t *testing.T) {
	h := newHarness(stubClipboard{err: clipboard.ErrNoImage})
	h.ctrl.SaveImage()
	assert.Empty(t, h.ui.errs)
}

func TestSettingsApplyToViewport(t *testing.T) {
	h := newHarness(stubClipboard{err: clipboard.ErrNoImage})
	h.ctrl.Start(writePNG(t, t.TempDir(), "a.png", 10, 10))

	h.ui.settingsEdit = func(s *config.Settings) {
		s.ZoomSpeed = 2.0
		s.SaveQuality = 500
	}
	h.ctrl.OpenSettings()

	assert.Equal(t, 2.0, h.settings.ZoomSpeed)
	assert.Equal(t, config.MaxSaveQuality, h.settings.SaveQuality)

	h.ctrl.HandleScroll(1)
	assert.Equal(t, 2.0, h.vp.Zoom())
}

func TestPointerForwarding(t *testing.T) {
	h := newHarness(stubClipboard{err: clipboard.ErrNoImage})

	h.ctrl.HandlePress(image.Pt(10, 10))
	h.ctrl.HandleDrag(image.Pt(50, 70))
	assert.Equal(t, image.Pt(40, 60), h.vp.State().WindowOffset)

	h.ctrl.HandleRelease()
	assert.Nil(t, h.vp.State().DragAnchor)
}

func TestClose(t *testing.T) {
	h := newHarness(stubClipboard{})
	h.ctrl.Close()
	assert.True(t, h.ui.quit)
}
