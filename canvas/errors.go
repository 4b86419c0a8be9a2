package canvas

import "errors"

var (
	// ErrNoSuchNode indicates an artifact update addressed an unknown id.
	ErrNoSuchNode = errors.New("canvas: no such node")
)
