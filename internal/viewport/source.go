package viewport

import (
	"bytes"
	"errors"
	"image"
)

// Source is something Load can turn into an image.
type Source interface {
	decode(codec ImageCodec) (image.Image, error)
	path() string
	String() string
}

type fileSource string

// FromFile loads the image stored at path.
func FromFile(path string) Source { return fileSource(path) }

func (s fileSource) decode(codec ImageCodec) (image.Image, error) {
	return codec.DecodeFile(string(s))
}

func (s fileSource) path() string   { return string(s) }
func (s fileSource) String() string { return string(s) }

type decodedSource struct {
	img image.Image
}

// FromImage wraps an already decoded image.
func FromImage(img image.Image) Source { return decodedSource{img: img} }

func (s decodedSource) decode(ImageCodec) (image.Image, error) {
	if s.img == nil {
		return nil, errors.New("image is nil")
	}
	return s.img, nil
}

func (decodedSource) path() string   { return "" }
func (decodedSource) String() string { return "memory" }

type bytesSource []byte

// FromBytes decodes an encoded payload, such as clipboard contents.
func FromBytes(data []byte) Source { return bytesSource(data) }

func (s bytesSource) decode(codec ImageCodec) (image.Image, error) {
	if len(s) == 0 {
		return nil, errors.New("payload is empty")
	}
	return codec.Decode(bytes.NewReader(s))
}

func (bytesSource) path() string   { return "" }
func (bytesSource) String() string { return "clipboard" }
