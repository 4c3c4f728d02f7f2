package cellgo

import (
	"errors"
	"fmt"
)

var (
	// ErrFieldExists is returned when adding a field under a name that is
	// already taken.
	ErrFieldExists = errors.New("field already exists")

	// ErrFieldNotFound is returned when a projection names a field the cells
	// do not have.
	ErrFieldNotFound = errors.New("field not found")
)

// ErrLengthMismatch indicates a column whose cell count does not match the
// record count of the Cells it is being added to.
type ErrLengthMismatch struct {
	Field    string
	Expected int
	Actual   int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("field %q has %d cells, want %d", e.Field, e.Actual, e.Expected)
}
