package steps

import (
	"errors"
	"fmt"
)

// Sentinel errors for controller construction and index access.
var (
	// ErrEmptyStepList indicates a controller was built with no steps and no
	// initial step, or that index arithmetic was requested on an empty sequence.
	ErrEmptyStepList = errors.New("step list is empty")

	// ErrIndexOutOfRange is matched by every [IndexError] via errors.Is.
	ErrIndexOutOfRange = errors.New("step index out of range")
)

// IndexError reports access to a position that does not exist in the sequence.
type IndexError struct {
	Index  int // Requested zero-based index
	Length int // Sequence length at the time of access
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("step index %d out of range [0, %d)", e.Index, e.Length)
}

// Is lets errors.Is(err, ErrIndexOutOfRange) match any IndexError.
func (e *IndexError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}
