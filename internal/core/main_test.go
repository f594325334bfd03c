package core

import (
	"context"
	"testing"
	"time"

	"admindash/internal/backend"
	"admindash/internal/directory"
	"admindash/internal/docstore"
	"admindash/internal/events"
	"admindash/internal/models"

	"github.com/stretchr/testify/require"
)

type fixture struct {
	dir   *directory.Directory
	store *docstore.Memory
	em    *events.Emitter
	svc   *Services
	admin models.SessionIdentity
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	dir := directory.NewMemory([]byte("core-secret"))
	store := docstore.NewMemory()
	em := events.NewEmitter(store, "test")
	t.Cleanup(em.Close)

	f := &fixture{dir: dir, store: store, em: em, svc: New(dir, store, em)}
	f.admin = f.seedAdmin(t)
	return f
}

// seedAdmin stores the system administrator the way dashctl does.
func (f *fixture) seedAdmin(t *testing.T) models.SessionIdentity {
	t.Helper()

	ctx := context.Background()
	id, err := f.dir.CreateCredential(ctx, "root@example.com", "rootpass")
	require.NoError(t, err)

	admin := models.Identity{
		ID:          id,
		Email:       "root@example.com",
		DisplayName: "Root",
		Role:        models.RoleAdmin,
		IsActive:    true,
		System:      true,
		CreatedAt:   time.Now().UTC(),
	}
	_, err = f.store.Insert(ctx, models.CollectionUsers, admin)
	require.NoError(t, err)

	return admin.Session("")
}

func (f *fixture) register(t *testing.T, email string, role models.Role) models.SessionIdentity {
	t.Helper()

	user, err := f.svc.Users.Register(context.Background(), f.admin, RegisterInput{
		Email:       email,
		Password:    "password1",
		DisplayName: email,
		Role:        string(role),
	})
	require.NoError(t, err)
	return user.Session("")
}

func (f *fixture) activity(t *testing.T) []models.ActivityEntry {
	t.Helper()

	f.em.Flush()

	var entries []models.ActivityEntry
	err := f.store.Query(context.Background(), models.CollectionActivity, backend.Query{
		OrderBy:    "timestamp",
		Descending: true,
	}, &entries)
	require.NoError(t, err)
	return entries
}

func (f *fixture) createProject(t *testing.T, actor models.SessionIdentity, name string) models.Project {
	t.Helper()

	project, err := f.svc.Projects.Create(context.Background(), actor, models.ProjectInput{
		Name:        name,
		Description: name + " description",
		Deadline:    "2025-03-01",
	})
	require.NoError(t, err)
	return project
}

func (f *fixture) createTask(t *testing.T, actor models.SessionIdentity, projectID, title string) models.Task {
	t.Helper()

	task, err := f.svc.Tasks.Create(context.Background(), actor, models.TaskInput{
		Title:     title,
		ProjectID: projectID,
	})
	require.NoError(t, err)
	return task
}
