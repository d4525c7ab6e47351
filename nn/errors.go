package nn

import "errors"

var (
	// ErrInvalidTopology reports a malformed layer-size sequence.
	ErrInvalidTopology = errors.New("invalid topology")

	// ErrShapeMismatch reports a vector whose length does not match the
	// dimensions the layer parameters expect.
	ErrShapeMismatch = errors.New("shape mismatch")
)
