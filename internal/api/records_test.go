package api_test

import (
	"net/http"
	"testing"

	"admindash/internal/errmsg"
	"admindash/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserAdministration(t *testing.T) {
	s := newServer(t)
	admin := s.root(t)
	manager := s.register(t, "manager@example.com", models.RoleManager)
	user := s.register(t, "worker@example.com", models.RoleUser)

	body, status := RequestRunner(t, s.app, "GET", "/dashboard/users", nil, &user.Token)
	ResponseErrorCheck(t, errmsg.PermissionDenied, body, status)

	var users []models.Identity
	status = s.do(t, "GET", "/dashboard/users?role=user", nil, manager.Token, &users)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, users, 1)
	assert.Equal(t, user.ID, users[0].ID)

	status = s.do(t, "GET", "/dashboard/users/search?q=WORKER", nil, manager.Token, &users)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, users, 1)

	body, status = RequestRunner(t, s.app, "PATCH", "/dashboard/users/"+user.ID+"/role", mustJSON(t, map[string]string{"role": "admin"}), &manager.Token)
	ResponseErrorCheck(t, errmsg.PermissionDenied, body, status)

	body, status = RequestRunner(t, s.app, "PATCH", "/dashboard/users/"+user.ID+"/role", mustJSON(t, map[string]string{"role": "owner"}), &admin.Token)
	ResponseErrorCheck(t, errmsg.InvalidRole, body, status)

	var updated models.Identity
	status = s.do(t, "PATCH", "/dashboard/users/"+user.ID+"/role", map[string]string{"role": "manager"}, admin.Token, &updated)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, models.RoleManager, updated.Role)

	status = s.do(t, "PATCH", "/dashboard/users/"+user.ID+"/profile", map[string]string{"displayName": "Renamed"}, user.Token, &updated)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Renamed", updated.DisplayName)

	body, status = RequestRunner(t, s.app, "PATCH", "/dashboard/users/"+admin.ID+"/profile", mustJSON(t, map[string]string{"displayName": "Hijack"}), &user.Token)
	ResponseErrorCheck(t, errmsg.PermissionDenied, body, status)

	status = s.do(t, "DELETE", "/dashboard/users/"+user.ID, nil, admin.Token, nil)
	require.Equal(t, http.StatusNoContent, status)

	body, status = RequestRunner(t, s.app, "GET", "/dashboard/users/"+user.ID, nil, &admin.Token)
	ResponseErrorCheck(t, errmsg.UserNotFound, body, status)

	body, status = RequestRunner(t, s.app, "POST", "/dashboard/auth/login", mustJSON(t, map[string]string{
		"email":    "worker@example.com",
		"password": "password1",
	}), nil)
	ResponseErrorCheck(t, errmsg.InvalidCredential, body, status)
}

func TestProjectLifecycle(t *testing.T) {
	s := newServer(t)
	owner := s.register(t, "owner@example.com", models.RoleUser)
	other := s.register(t, "other@example.com", models.RoleUser)
	manager := s.register(t, "lead@example.com", models.RoleManager)

	body, status := RequestRunner(t, s.app, "POST", "/dashboard/projects", mustJSON(t, map[string]string{"name": " "}), &owner.Token)
	ResponseErrorCheck(t, errmsg.Validation("name is required"), body, status)

	project := s.createProject(t, owner.Token, "Apollo")
	assert.Equal(t, owner.ID, project.CreatedBy)
	assert.Equal(t, models.ProjectStatusActive, project.Status)
	assert.Zero(t, project.Progress)

	body, status = RequestRunner(t, s.app, "GET", "/dashboard/projects/"+project.ID, nil, &other.Token)
	ResponseErrorCheck(t, errmsg.ProjectNotFound, body, status)

	var listed []models.Project
	status = s.do(t, "GET", "/dashboard/projects", nil, other.Token, &listed)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, listed)

	status = s.do(t, "GET", "/dashboard/projects", nil, manager.Token, &listed)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, listed, 1)

	body, status = RequestRunner(t, s.app, "PATCH", "/dashboard/projects/"+project.ID, mustJSON(t, map[string]any{"progress": 50}), &manager.Token)
	ResponseErrorCheck(t, errmsg.PermissionDenied, body, status)

	body, status = RequestRunner(t, s.app, "PATCH", "/dashboard/projects/"+project.ID, mustJSON(t, map[string]any{"progress": 150}), &owner.Token)
	ResponseErrorCheck(t, errmsg.Validation("progress must be between 0 and 100"), body, status)

	var updated models.Project
	status = s.do(t, "PATCH", "/dashboard/projects/"+project.ID, map[string]any{"progress": 100, "status": "completed"}, owner.Token, &updated)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 100, updated.Progress)
	assert.Equal(t, models.ProjectStatusCompleted, updated.Status)
	assert.NotNil(t, updated.UpdatedAt)

	status = s.do(t, "DELETE", "/dashboard/projects/"+project.ID, nil, owner.Token, nil)
	require.Equal(t, http.StatusNoContent, status)

	body, status = RequestRunner(t, s.app, "GET", "/dashboard/projects/"+project.ID, nil, &owner.Token)
	ResponseErrorCheck(t, errmsg.ProjectNotFound, body, status)
}

func TestTaskLifecycle(t *testing.T) {
	s := newServer(t)
	owner := s.register(t, "owner@example.com", models.RoleUser)
	helper := s.register(t, "helper@example.com", models.RoleUser)
	project := s.createProject(t, owner.Token, "Gemini")

	body, status := RequestRunner(t, s.app, "POST", "/dashboard/tasks", mustJSON(t, models.TaskInput{
		Title:     "Sneak in",
		ProjectID: project.ID,
	}), &helper.Token)
	ResponseErrorCheck(t, errmsg.ProjectNotFound, body, status)

	task := s.createTask(t, owner.Token, project.ID, "Write plan")
	assert.Equal(t, models.PriorityMedium, task.Priority)
	assert.Equal(t, models.TaskStatusPending, task.Status)

	body, status = RequestRunner(t, s.app, "PATCH", "/dashboard/tasks/"+task.ID+"/status", mustJSON(t, map[string]string{"status": "completed"}), &helper.Token)
	require.Contains(t, []int{http.StatusForbidden, http.StatusNotFound}, status, string(body))

	var updated models.Task
	status = s.do(t, "PATCH", "/dashboard/tasks/"+task.ID+"/assign", map[string]string{"assignedTo": helper.ID}, owner.Token, &updated)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, helper.ID, updated.AssignedTo)

	body, status = RequestRunner(t, s.app, "PATCH", "/dashboard/tasks/"+task.ID+"/assign", mustJSON(t, map[string]string{"assignedTo": "nobody"}), &owner.Token)
	ResponseErrorCheck(t, errmsg.UserNotFound, body, status)

	status = s.do(t, "PATCH", "/dashboard/tasks/"+task.ID+"/status", map[string]string{"status": "completed"}, helper.Token, &updated)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, models.TaskStatusCompleted, updated.Status)

	body, status = RequestRunner(t, s.app, "PATCH", "/dashboard/tasks/"+task.ID, mustJSON(t, map[string]string{"title": "Take over"}), &helper.Token)
	ResponseErrorCheck(t, errmsg.PermissionDenied, body, status)

	var tasks []models.Task
	status = s.do(t, "GET", "/dashboard/tasks?projectId="+project.ID, nil, owner.Token, &tasks)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, tasks, 1)

	status = s.do(t, "DELETE", "/dashboard/tasks/"+task.ID, nil, owner.Token, nil)
	require.Equal(t, http.StatusNoContent, status)

	body, status = RequestRunner(t, s.app, "GET", "/dashboard/tasks/"+task.ID, nil, &owner.Token)
	ResponseErrorCheck(t, errmsg.TaskNotFound, body, status)
}
