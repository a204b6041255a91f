package directory

import "errors"

var (
	// ErrDuplicateEmail is returned when registering an email that already
	// has an identity in the directory.
	ErrDuplicateEmail = errors.New("an account with this email already exists")
)
