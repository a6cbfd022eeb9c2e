package params

import "errors"

var (
	// ErrWrongExtension indicates that the given path does not carry the
	// required ".params" extension.
	ErrWrongExtension = errors.New("params files must be of type .params")
	// ErrUnsupportedVersion indicates that the file declares a specification
	// version this SDK does not speak, or no version at all.
	ErrUnsupportedVersion = errors.New("params version not supported")
)
