package booking

import "errors"

// The three error kinds of the booking core. All are terminal for the
// current operation; handlers map them to 404/400/403. Wrapped with
// fmt.Errorf("%w: ...") for context and matched with errors.Is.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")
	ErrForbidden  = errors.New("forbidden")
)
