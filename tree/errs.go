package tree

import "errors"

var (
	// ErrNoValue is returned when a value accessor is called on a node
	// that holds no value (anything but a Field).
	ErrNoValue = errors.New("node holds no value")

	// ErrValue is returned when a stored value cannot be represented as
	// the requested type.
	ErrValue = errors.New("invalid value")

	// ErrNoParam is returned by Param when no node exists at the given
	// path.
	ErrNoParam = errors.New("no parameter")
)
