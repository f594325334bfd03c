package errmsg

import "net/http"

var (
	UserNotFound = NewStatusError(
		http.StatusNotFound,
		"user not found",
	)
	ProjectNotFound = NewStatusError(
		http.StatusNotFound,
		"project not found",
	)
	TaskNotFound = NewStatusError(
		http.StatusNotFound,
		"task not found",
	)
	InvalidRole = NewStatusError(
		http.StatusBadRequest,
		"role must be one of user, manager, admin",
	)
	InvalidReportType = NewStatusError(
		http.StatusBadRequest,
		"report type must be one of user_activity, project_progress, task_completion",
	)
)

type _UserNotFound struct {
	StatusCode int    `json:"statusCode" example:"404"`
	Message    string `json:"message" example:"user not found"`
}

type _ProjectNotFound struct {
	StatusCode int    `json:"statusCode" example:"404"`
	Message    string `json:"message" example:"project not found"`
}

type _TaskNotFound struct {
	StatusCode int    `json:"statusCode" example:"404"`
	Message    string `json:"message" example:"task not found"`
}

type _InvalidRole struct {
	StatusCode int    `json:"statusCode" example:"400"`
	Message    string `json:"message" example:"role must be one of user, manager, admin"`
}

type _InvalidReportType struct {
	StatusCode int    `json:"statusCode" example:"400"`
	Message    string `json:"message" example:"report type must be one of user_activity, project_progress, task_completion"`
}
