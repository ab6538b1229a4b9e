package scripts

import "errors"

var (
	// ErrNotFound is returned when a named script doesn't exist.
	ErrNotFound = errors.New("no such script")
	// ErrInvalidName is returned for names that can't be stored as a script.
	ErrInvalidName = errors.New("invalid script name")
	// ErrReserved is returned for names that collide with a subcommand.
	ErrReserved = errors.New("script name is reserved")
)
