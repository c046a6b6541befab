package lane

import "errors"

var (
	// ErrInvalidArgument is returned when a nil element is inserted.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrAllocation is returned when the arena cannot hold a whole tower.
	// The list is left untouched.
	ErrAllocation = errors.New("node allocation failed")

	ErrInvalidConfig = errors.New("invalid config")
)
