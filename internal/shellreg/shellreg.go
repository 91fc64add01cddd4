// Package shellreg registers the viewer as an "Open With" entry in the shell
// context menu. It is used only by the one-shot add and remove commands.
package shellreg

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// KeyPath is relative to HKEY_CLASSES_ROOT.
	KeyPath     = `*\shell\OpenWithPictureViewer`
	CommandPath = KeyPath + `\command`
	MenuLabel   = "Open with Picture Viewer"
)

// Command returns the shell command line for exe with the "%1" file placeholder.
func Command(exe string) string {
	return fmt.Sprintf(`"%s" "%%1"`, exe)
}

// Executable returns the absolute path of the running binary.
func Executable() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Abs(exe)
}

// Add creates the context menu entry pointing at exe.
func Add(exe string) error {
	return add(exe)
}

// Remove deletes the context menu entry.
func Remove() error {
	return remove()
}
