package common

import (
	"errors"
)

var (
	// Session errors.
	ErrNoSession = errors.New(MsgNoUserToken)

	// Transport / format errors.
	ErrInvalidResponseFormat = errors.New(MsgInvalidResponse)
	ErrTransport             = errors.New("transport failure")

	// Form flow errors.
	ErrValidation  = errors.New("validation error")
	ErrSubmitting  = errors.New("submission in progress")
	ErrFlowClosed  = errors.New("form closed")
	ErrUnknownMode = errors.New("unknown form mode")
)

// ServerError is the single normalized failure shape surfaced to the user.
// Message is always human-readable; Status is the HTTP status when the
// server answered (0 for transport or format failures). Err, when set, is the
// underlying cause and is reachable through errors.Is / errors.As.
type ServerError struct {
	Message string
	Status  int
	Err     error
}

func (e *ServerError) Error() string {
	return e.Message
}

func (e *ServerError) Unwrap() error {
	return e.Err
}

// NewServerError builds a ServerError, substituting MsgServerError for an
// empty message.
func NewServerError(status int, message string, cause error) *ServerError {
	if message == "" {
		message = MsgServerError
	}
	return &ServerError{Message: message, Status: status, Err: cause}
}

// MessageOf extracts the user-facing message of err. Errors that are not a
// ServerError yield fallback.
func MessageOf(err error, fallback string) string {
	var se *ServerError
	if errors.As(err, &se) && se.Message != "" {
		return se.Message
	}
	return fallback
}
