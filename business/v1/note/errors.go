package note

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that no note exists with the requested id.
var ErrNotFound = errors.New("note not found")

// ValidationError marks input the caller must fix before retrying. It
// never corrupts store state.
type ValidationError struct {
	msg string
}

func (e ValidationError) Error() string {
	return e.msg
}

var (
	ErrBlankTitle = ValidationError{"title must be a non-empty string"}
	ErrEmptyPatch = ValidationError{"patch must supply title or content"}
	ErrBlankQuery = ValidationError{"q must be a non-empty string"}
)

func validationErrorf(format string, args ...any) error {
	return ValidationError{fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a rejected-input error rather than
// a missing note or an internal failure.
func IsValidation(err error) bool {
	var v ValidationError
	return errors.As(err, &v)
}
