package urplit

import "errors"

var (
	// ErrEmptySelection indicates the batch was invoked with no materials.
	ErrEmptySelection = errors.New("empty selection")

	// ErrShaderNotFound indicates the target shader could not be resolved;
	// the batch aborts before any material is touched.
	ErrShaderNotFound = errors.New("target shader not found")
)
