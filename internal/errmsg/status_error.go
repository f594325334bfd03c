package errmsg

import "errors"

var EmptyStatusError = NewStatusError(0, "")

type StatusError struct {
	StatusCode int
	Message    string
}

func NewStatusError(statusCode int, message string) StatusError {
	return StatusError{
		StatusCode: statusCode,
		Message:    message,
	}
}

func (se StatusError) Error() string {
	return se.Message
}

// From unwraps err into a StatusError. Anything that is not already one is
// reported as an internal server error.
func From(err error) StatusError {
	if err == nil {
		return EmptyStatusError
	}

	var se StatusError
	if errors.As(err, &se) {
		return se
	}

	return InternalServerError(err)
}
