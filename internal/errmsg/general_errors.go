package errmsg

import "net/http"

func InternalServerError(err error) StatusError {
	return NewStatusError(
		http.StatusInternalServerError,
		"internal server error: "+err.Error(),
	)
}

// Transport reports that a backend collaborator could not be reached. The
// caller may resubmit the same request unchanged.
func Transport(err error) StatusError {
	return NewStatusError(
		http.StatusServiceUnavailable,
		"backend unavailable: "+err.Error(),
	)
}

// Validation reports malformed or missing input.
func Validation(message string) StatusError {
	return NewStatusError(
		http.StatusBadRequest,
		message,
	)
}

var (
	InvalidPayload = NewStatusError(
		http.StatusBadRequest,
		"request payload could not be parsed",
	)
	PermissionDenied = NewStatusError(
		http.StatusForbidden,
		"you are not allowed to perform this action",
	)
)

type _InternalServerError struct {
	StatusCode int    `json:"statusCode" example:"500"`
	Message    string `json:"message" example:"internal server error: ..."`
}

type _Transport struct {
	StatusCode int    `json:"statusCode" example:"503"`
	Message    string `json:"message" example:"backend unavailable: ..."`
}

type _Validation struct {
	StatusCode int    `json:"statusCode" example:"400"`
	Message    string `json:"message" example:"name is required"`
}

type _PermissionDenied struct {
	StatusCode int    `json:"statusCode" example:"403"`
	Message    string `json:"message" example:"you are not allowed to perform this action"`
}
