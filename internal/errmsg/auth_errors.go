package errmsg

import "net/http"

var (
	InvalidCredential = NewStatusError(
		http.StatusUnauthorized,
		"email or password is incorrect",
	)
	AccountDeactivated = NewStatusError(
		http.StatusForbidden,
		"user account is deactivated",
	)
	RoleMismatch = NewStatusError(
		http.StatusForbidden,
		"access denied for this role",
	)
	IdentityNotRegistered = NewStatusError(
		http.StatusUnauthorized,
		"user not found in directory",
	)
	NoToken = NewStatusError(
		http.StatusUnauthorized,
		"no token has been provided",
	)
	SessionInvalid = NewStatusError(
		http.StatusUnauthorized,
		"session is not valid",
	)
	EmailInUse = NewStatusError(
		http.StatusConflict,
		"email is already registered",
	)
	LoginInvalidPayload = NewStatusError(
		http.StatusBadRequest,
		"email and password must be provided",
	)
)

type _InvalidCredential struct {
	StatusCode int    `json:"statusCode" example:"401"`
	Message    string `json:"message" example:"email or password is incorrect"`
}

type _AccountDeactivated struct {
	StatusCode int    `json:"statusCode" example:"403"`
	Message    string `json:"message" example:"user account is deactivated"`
}

type _RoleMismatch struct {
	StatusCode int    `json:"statusCode" example:"403"`
	Message    string `json:"message" example:"access denied for this role"`
}

type _IdentityNotRegistered struct {
	StatusCode int    `json:"statusCode" example:"401"`
	Message    string `json:"message" example:"user not found in directory"`
}

type _NoToken struct {
	StatusCode int    `json:"statusCode" example:"401"`
	Message    string `json:"message" example:"no token has been provided"`
}

type _SessionInvalid struct {
	StatusCode int    `json:"statusCode" example:"401"`
	Message    string `json:"message" example:"session is not valid"`
}

type _EmailInUse struct {
	StatusCode int    `json:"statusCode" example:"409"`
	Message    string `json:"message" example:"email is already registered"`
}

type _LoginInvalidPayload struct {
	StatusCode int    `json:"statusCode" example:"400"`
	Message    string `json:"message" example:"email and password must be provided"`
}
