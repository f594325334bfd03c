package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"admindash/internal/errmsg"
	"admindash/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsExcludeSystemAdministrator(t *testing.T) {
	s := newServer(t)
	admin := s.root(t)
	owner := s.register(t, "owner@example.com", models.RoleUser)
	leaver := s.register(t, "leaver@example.com", models.RoleUser)

	project := s.createProject(t, owner.Token, "Mercury")
	done := s.createTask(t, owner.Token, project.ID, "Done")
	s.createTask(t, owner.Token, project.ID, "Open")
	require.Equal(t, http.StatusOK, s.do(t, "PATCH", "/dashboard/tasks/"+done.ID+"/status", map[string]string{"status": "completed"}, owner.Token, nil))
	require.Equal(t, http.StatusOK, s.do(t, "PATCH", "/dashboard/users/"+leaver.ID+"/status", map[string]bool{"isActive": false}, admin.Token, nil))

	s.em.Flush()

	var stats models.Stats
	status := s.do(t, "GET", "/dashboard/stats", nil, owner.Token, &stats)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 2, stats.TotalUsers)
	assert.Equal(t, 1, stats.ActiveUsers)
	assert.Equal(t, 1, stats.TotalProjects)
	assert.Equal(t, 1, stats.CompletedTasks)
	assert.Equal(t, 1, stats.PendingTasks)
	assert.NotEmpty(t, stats.RecentActivity)
}

func TestOverviewReportsEachSection(t *testing.T) {
	s := newServer(t)
	user := s.register(t, "viewer@example.com", models.RoleUser)
	s.createProject(t, user.Token, "Vostok")
	s.em.Flush()

	body, status := RequestRunner(t, s.app, "GET", "/dashboard/overview", nil, &user.Token)
	require.Equal(t, http.StatusOK, status)

	var overview map[string]struct {
		Data  json.RawMessage `json:"data"`
		Error *struct {
			StatusCode int    `json:"statusCode"`
			Message    string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(body, &overview))

	require.NotNil(t, overview["users"].Error)
	assert.Equal(t, errmsg.PermissionDenied.StatusCode, overview["users"].Error.StatusCode)

	for _, part := range []string{"stats", "projects", "tasks", "activity"} {
		assert.Nil(t, overview[part].Error, part)
	}

	var projects []models.Project
	require.NoError(t, json.Unmarshal(overview["projects"].Data, &projects))
	require.Len(t, projects, 1)
	assert.Equal(t, "Vostok", projects[0].Name)
}

func TestActivityScope(t *testing.T) {
	s := newServer(t)
	admin := s.root(t)
	alice := s.register(t, "alice@example.com", models.RoleUser)
	bob := s.register(t, "bob@example.com", models.RoleUser)
	s.createProject(t, alice.Token, "Alice's")
	s.createProject(t, bob.Token, "Bob's")
	s.em.Flush()

	var entries []models.ActivityEntry
	status := s.do(t, "GET", "/dashboard/activity", nil, alice.Token, &entries)
	require.Equal(t, http.StatusOK, status)
	require.NotEmpty(t, entries)
	for _, e := range entries {
		assert.Equal(t, alice.ID, e.UserID)
	}

	status = s.do(t, "GET", "/dashboard/activity?limit=2", nil, admin.Token, &entries)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, entries, 2)
	assert.Equal(t, models.ActivityProjectCreated, entries[0].Type)
	assert.False(t, entries[0].Timestamp.Before(entries[1].Timestamp))

	body, status := RequestRunner(t, s.app, "GET", "/dashboard/activity?limit=abc", nil, &admin.Token)
	ResponseErrorCheck(t, errmsg.Validation("limit must be a non-negative integer"), body, status)
}

func TestReports(t *testing.T) {
	s := newServer(t)
	admin := s.root(t)
	user := s.register(t, "maker@example.com", models.RoleUser)
	project := s.createProject(t, user.Token, "Soyuz")
	task := s.createTask(t, user.Token, project.ID, "Launch")
	s.createTask(t, user.Token, project.ID, "Land")
	require.Equal(t, http.StatusOK, s.do(t, "PATCH", "/dashboard/tasks/"+task.ID+"/status", map[string]string{"status": "completed"}, user.Token, nil))

	body, status := RequestRunner(t, s.app, "POST", "/dashboard/reports", mustJSON(t, map[string]string{"type": "task_completion"}), &user.Token)
	ResponseErrorCheck(t, errmsg.PermissionDenied, body, status)

	body, status = RequestRunner(t, s.app, "POST", "/dashboard/reports", mustJSON(t, map[string]string{"type": "burndown"}), &admin.Token)
	ResponseErrorCheck(t, errmsg.InvalidReportType, body, status)

	var report models.Report
	status = s.do(t, "POST", "/dashboard/reports", map[string]string{"type": "task_completion"}, admin.Token, &report)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, models.ReportTaskCompletion, report.Type)
	assert.Equal(t, admin.ID, report.GeneratedBy)
	assert.Equal(t, 2, report.Data["totalTasks"])
	assert.Equal(t, 1, report.Data["completedTasks"])
	assert.Equal(t, 1, report.Data["pendingTasks"])

	status = s.do(t, "POST", "/dashboard/reports", map[string]string{
		"type": "project_progress",
		"from": "2000-01-01",
		"to":   "2001-01-01",
	}, admin.Token, &report)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 0, report.Data["totalProjects"])
}
