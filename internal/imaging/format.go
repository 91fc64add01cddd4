package imaging

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies an image encoding the viewer can read and write.
type Format string

const (
	JPEG Format = "JPEG"
	PNG  Format = "PNG"
	BMP  Format = "BMP"
	GIF  Format = "GIF"
)

// SupportedFormats lists formats in the order they appear in menus and dialogs.
var SupportedFormats = []Format{JPEG, PNG, BMP, GIF}

// ParseFormat accepts format names case-insensitively, with or without a leading dot.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), ".")) {
	case "jpeg", "jpg":
		return JPEG, nil
	case "png":
		return PNG, nil
	case "bmp":
		return BMP, nil
	case "gif":
		return GIF, nil
	default:
		return "", fmt.Errorf("unsupported image format %q", name)
	}
}

// FormatFromPath determines the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", fmt.Errorf("no file extension in %q", path)
	}
	return ParseFormat(ext)
}

// Extension returns the canonical file extension including the dot.
func (f Format) Extension() string {
	if f == JPEG {
		return ".jpg"
	}
	return "." + strings.ToLower(string(f))
}

// Extensions returns every extension recognised for the format.
func (f Format) Extensions() []string {
	if f == JPEG {
		return []string{".jpg", ".jpeg"}
	}
	return []string{f.Extension()}
}

// Lossy reports whether a quality setting applies when encoding.
func (f Format) Lossy() bool {
	return f == JPEG
}

// ReadableExtensions returns all extensions accepted by the open dialog.
func ReadableExtensions() []string {
	var exts []string
	for _, f := range SupportedFormats {
		exts = append(exts, f.Extensions()...)
	}
	return exts
}
