package catalog

import (
	"go.trai.ch/zerr"

	"lon/internal/color"
)

var (
	// ErrSourceMissing is returned when a library resource cannot be read.
	ErrSourceMissing = zerr.New("colour source missing")

	// ErrSourceEncoding is returned when a library resource is not valid UTF-8.
	ErrSourceEncoding = zerr.New("colour source is not valid UTF-8")

	// ErrSourceShape is returned when a library resource is not JSON of the
	// shape its library expects.
	ErrSourceShape = zerr.New("colour source has unexpected shape")
)

// sourceError wraps one of the sentinels above with the library and resource
// the failure came from. The underlying cause, if any, becomes the message.
func sourceError(sentinel error, library color.Library, cause error) error {
	msg := "load " + library.Key()
	if cause != nil {
		msg = cause.Error()
	}
	err := zerr.Wrap(sentinel, msg)
	err = zerr.With(err, "library", library.Key())
	return zerr.With(err, "resource", ResourceName(library))
}
