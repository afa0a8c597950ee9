package seq

import (
	"errors"
	"fmt"
)

var (
	// ErrNilArgument reports a missing sequence or capability argument. It is
	// returned before any traversal begins.
	ErrNilArgument = errors.New("nil argument")
	// ErrInvalidArgument reports a value that breaks a precondition which can
	// be checked without traversal, such as a negative index.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrOutOfRange reports an index or range beyond what the traversal
	// actually produced. It surfaces only once the source is exhausted.
	ErrOutOfRange = errors.New("out of range")
	// ErrEmpty reports an operation that needed at least one element.
	ErrEmpty = errors.New("empty sequence")
)

func nilArgument(name string) error {
	return fmt.Errorf("seq: %w: %s", ErrNilArgument, name)
}

func negativeArgument(name string, value int) error {
	return fmt.Errorf("seq: %w: %s must be non-negative, got %d", ErrInvalidArgument, name, value)
}

func emptySource(op string) error {
	return fmt.Errorf("seq: %w: %s needs at least one element", ErrEmpty, op)
}

func outOfRange(name string, value, count int) error {
	return fmt.Errorf("seq: %w: %s is %d but sequence has %d elements", ErrOutOfRange, name, value, count)
}
