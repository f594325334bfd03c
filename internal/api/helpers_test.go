package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"admindash/internal"
	"admindash/internal/directory"
	"admindash/internal/docstore"
	"admindash/internal/env"
	"admindash/internal/errmsg"
	"admindash/internal/events"
	"admindash/internal/models"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/require"
)

const (
	rootEmail    = "root@example.com"
	rootPassword = "rootpass"
)

type server struct {
	app   *fiber.App
	dir   *directory.Directory
	store *docstore.Memory
	em    *events.Emitter
}

func newServer(t *testing.T) *server {
	t.Helper()

	env.InitTest()

	dir := directory.NewMemory(env.JWT_SECRET)
	store := docstore.NewMemory()
	em := events.NewEmitter(store, "test")
	t.Cleanup(em.Close)

	s := &server{
		app:   internal.NewApp(internal.Deps{Directory: dir, Store: store, Activity: em}),
		dir:   dir,
		store: store,
		em:    em,
	}
	s.seedRoot(t)
	return s
}

// seedRoot stores the system administrator the way dashctl seed-admin does.
func (s *server) seedRoot(t *testing.T) {
	t.Helper()

	ctx := context.Background()
	id, err := s.dir.CreateCredential(ctx, rootEmail, rootPassword)
	require.NoError(t, err)

	_, err = s.store.Insert(ctx, models.CollectionUsers, models.Identity{
		ID:          id,
		Email:       rootEmail,
		DisplayName: "Root",
		Role:        models.RoleAdmin,
		IsActive:    true,
		System:      true,
		CreatedAt:   time.Now().UTC(),
	})
	require.NoError(t, err)
}

func RequestRunner(
	t *testing.T,
	app *fiber.App,
	method string,
	path string,
	sendBytes []byte,
	token *string,
) (bodyBytes []byte, statusCode int) {
	req, err := http.NewRequest(
		method,
		path,
		bytes.NewBuffer(sendBytes),
	)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	if token != nil {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", *token))
	}

	res, err := app.Test(req, fiber.TestConfig{Timeout: 10 * time.Second})
	require.NoError(t, err)
	defer res.Body.Close()

	statusCode = res.StatusCode

	bodyBytes, err = io.ReadAll(res.Body)
	require.NoError(t, err)

	return
}

func ResponseErrorCheck(
	t *testing.T,
	serr errmsg.StatusError,
	bodyBytes []byte,
	statusCode int,
) {
	t.Helper()

	require.Equal(t, serr.StatusCode, statusCode, string(bodyBytes))

	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(bodyBytes, &body))
	require.Equal(t, serr.Message, body.Message)
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()

	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}

func (s *server) do(t *testing.T, method, path string, payload any, token string, out any) int {
	t.Helper()

	var send []byte
	if payload != nil {
		send = mustJSON(t, payload)
	}

	var tok *string
	if token != "" {
		tok = &token
	}

	body, status := RequestRunner(t, s.app, method, path, send, tok)
	if out != nil && status < 300 {
		require.NoError(t, json.Unmarshal(body, out), string(body))
	}
	return status
}

func (s *server) login(t *testing.T, email, password string) models.SessionIdentity {
	t.Helper()

	var identity models.SessionIdentity
	status := s.do(t, "POST", "/dashboard/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, "", &identity)
	require.Equal(t, http.StatusOK, status)
	require.NotEmpty(t, identity.Token)
	return identity
}

func (s *server) root(t *testing.T) models.SessionIdentity {
	t.Helper()
	return s.login(t, rootEmail, rootPassword)
}

// register creates an account through the admin and signs it in.
func (s *server) register(t *testing.T, email string, role models.Role) models.SessionIdentity {
	t.Helper()

	admin := s.root(t)
	status := s.do(t, "POST", "/dashboard/auth/register", map[string]string{
		"email":       email,
		"password":    "password1",
		"displayName": email,
		"role":        string(role),
	}, admin.Token, nil)
	require.Equal(t, http.StatusCreated, status)

	return s.login(t, email, "password1")
}

func (s *server) createProject(t *testing.T, token, name string) models.Project {
	t.Helper()

	var project models.Project
	status := s.do(t, "POST", "/dashboard/projects", models.ProjectInput{
		Name:     name,
		Deadline: "2030-01-31",
	}, token, &project)
	require.Equal(t, http.StatusCreated, status)
	return project
}

func (s *server) createTask(t *testing.T, token, projectID, title string) models.Task {
	t.Helper()

	var task models.Task
	status := s.do(t, "POST", "/dashboard/tasks", models.TaskInput{
		Title:     title,
		ProjectID: projectID,
	}, token, &task)
	require.Equal(t, http.StatusCreated, status)
	return task
}
