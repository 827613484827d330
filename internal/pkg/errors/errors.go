package errors

import "errors"

var (
	// ErrNotFound is returned when an interview, submission or session does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrValidation covers bad input and model output that could not be parsed.
	ErrValidation = errors.New("validation failed")

	// ErrDeviceUnavailable is returned when the client cannot capture speech or audio.
	ErrDeviceUnavailable = errors.New("capture device unavailable")

	// ErrInvalidState is returned when a session operation is not allowed in the current state.
	ErrInvalidState = errors.New("invalid session state")

	// ErrUpstream wraps failures of the language model or other remote services.
	ErrUpstream = errors.New("upstream service failure")
)
