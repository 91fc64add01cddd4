package viewport

import "fmt"

// ImageLoadError reports that a source could not be decoded or rendered.
type ImageLoadError struct {
	Source string
	Err    error
}

func (e *ImageLoadError) Error() string {
	return fmt.Sprintf("cannot load image from %s: %v", e.Source, e.Err)
}

func (e *ImageLoadError) Unwrap() error { return e.Err }

// ImageSaveError reports a failed encode or write.
type ImageSaveError struct {
	Path string
	Err  error
}

func (e *ImageSaveError) Error() string {
	return fmt.Sprintf("cannot save image to %s: %v", e.Path, e.Err)
}

func (e *ImageSaveError) Unwrap() error { return e.Err }
