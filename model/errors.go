package model

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidEmailFormat  = errors.New("Please enter a valid email address")
	ErrSubmissionInFlight  = errors.New("submission already in progress")
	ErrFormClosed          = errors.New("form is closed")
	ErrApplicationNotFound = errors.New("event application do not exist")
)

// MissingFieldError reports the first required field without a value.
type MissingFieldError struct {
	Field string
	Label string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("Please fill in the required field: %s", e.Label)
}

// RemoteError is returned by the creation procedure when the backend rejects
// an application. Message is shown to the user verbatim.
type RemoteError struct {
	Message string
	Err     error
}

func (e *RemoteError) Error() string {
	return e.Message
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// RemoteMessage extracts the user-facing text of a failed remote call.
func RemoteMessage(err error) string {
	var re *RemoteError
	if errors.As(err, &re) {
		return re.Message
	}
	return err.Error()
}
