package sketch

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidColor indicates malformed color arguments or an unknown
	// color name.
	ErrInvalidColor = errors.New("sketch: invalid color")

	// ErrInvalidShape indicates an unknown turtle shape identifier.
	ErrInvalidShape = errors.New("sketch: invalid shape name")

	// ErrInvalidArgument indicates an out-of-range or malformed argument,
	// such as a zero stretch factor or a negative frame delay.
	ErrInvalidArgument = errors.New("sketch: invalid argument")
)

// errInvalidf wraps ErrInvalidArgument with a formatted detail message.
func errInvalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

