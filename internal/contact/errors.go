package contact

import "errors"

var (
	// ErrMissingName is returned when the name is empty
	ErrMissingName = errors.New("name is required")

	// ErrMissingEmail is returned when the email is empty
	ErrMissingEmail = errors.New("email is required")

	// ErrMissingMessage is returned when the message body is empty
	ErrMissingMessage = errors.New("message is required")

	// ErrMessageNotFound is returned when a message is not found
	ErrMessageNotFound = errors.New("message not found")
)
