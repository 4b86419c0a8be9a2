package classify

import "errors"

var (
	// ErrNoMatch indicates no element classified into the function role.
	ErrNoMatch = errors.New("classify: no function element matched")
	// ErrDegenerateSelection indicates the selection's overall bounds have
	// zero width or height, so normalized positions are undefined.
	ErrDegenerateSelection = errors.New("classify: selection bounds have zero area")
)
