package signup

import "errors"

var (
	// ErrMissingFields is returned when required fields of the current step
	// are empty.
	ErrMissingFields = errors.New("please fill in all required fields")

	// ErrPasswordMismatch is returned when password and confirmation differ.
	ErrPasswordMismatch = errors.New("passwords do not match")
)
