package errs

import "errors"

// Error taxonomy shared by the usecase and handler layers.
// Concrete errors are classified with Mark so their message survives.
var (
	ErrValidation        = errors.New("validation error")
	ErrDuplicateBooking  = errors.New("duplicate booking")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrNotFound          = errors.New("not found")
	ErrForbidden         = errors.New("forbidden")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrSystem            = errors.New("system error")
)

func IsBusiness(err error) bool {
	return Is(err, ErrValidation) ||
		Is(err, ErrDuplicateBooking) ||
		Is(err, ErrInvalidTransition) ||
		Is(err, ErrNotFound) ||
		Is(err, ErrForbidden) ||
		Is(err, ErrUnauthorized)
}
