package core

import (
	"context"
	"testing"

	"admindash/internal/errmsg"
	"admindash/internal/models"

	"github.com/stretchr/testify/require"
)

func TestProjectVisibilityByOwner(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u1 := f.register(t, "u1@example.com", models.RoleUser)
	u2 := f.register(t, "u2@example.com", models.RoleUser)
	manager := f.register(t, "m@example.com", models.RoleManager)

	launch := f.createProject(t, u1, "Launch")
	require.Equal(t, models.ProjectStatusActive, launch.Status)
	require.Zero(t, launch.Progress)
	require.Equal(t, u1.ID, launch.CreatedBy)
	f.createProject(t, u2, "Other")

	mine, err := f.svc.Projects.List(ctx, u1, ProjectFilter{})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Equal(t, launch.ID, mine[0].ID)

	theirs, err := f.svc.Projects.List(ctx, u2, ProjectFilter{})
	require.NoError(t, err)
	for _, p := range theirs {
		require.Equal(t, u2.ID, p.CreatedBy)
		require.NotEqual(t, launch.ID, p.ID)
	}

	all, err := f.svc.Projects.List(ctx, manager, ProjectFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)

	_, err = f.svc.Projects.Get(ctx, u2, launch.ID)
	require.ErrorIs(t, err, errmsg.ProjectNotFound)
}

func TestProjectMutationsLogOncePerCall(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u1 := f.register(t, "u1@example.com", models.RoleUser)
	before := len(f.activity(t))

	project := f.createProject(t, u1, "Launch")

	name := "Launch v2"
	progress := 40
	updated, err := f.svc.Projects.Update(ctx, u1, project.ID, models.ProjectPatch{Name: &name, Progress: &progress})
	require.NoError(t, err)
	require.Equal(t, "Launch v2", updated.Name)
	require.Equal(t, 40, updated.Progress)
	require.NotNil(t, updated.UpdatedAt)

	require.NoError(t, f.svc.Projects.Delete(ctx, u1, project.ID))

	entries := f.activity(t)
	require.Len(t, entries, before+3)

	wantTypes := []models.ActivityType{
		models.ActivityProjectDeleted,
		models.ActivityProjectUpdated,
		models.ActivityProjectCreated,
	}
	for i, want := range wantTypes {
		require.Equal(t, want, entries[i].Type)
		require.Equal(t, project.ID, entries[i].RelatedID)
		require.Equal(t, u1.ID, entries[i].UserID)
	}
	require.Equal(t, `Project "Launch" created`, entries[2].Description)
}

func TestProjectDeleteTwice(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u1 := f.register(t, "u1@example.com", models.RoleUser)
	project := f.createProject(t, u1, "Launch")
	keep := f.createProject(t, u1, "Keep")

	require.NoError(t, f.svc.Projects.Delete(ctx, u1, project.ID))
	afterOne, err := f.svc.Projects.List(ctx, u1, ProjectFilter{})
	require.NoError(t, err)

	require.ErrorIs(t, f.svc.Projects.Delete(ctx, u1, project.ID), errmsg.ProjectNotFound)
	afterTwo, err := f.svc.Projects.List(ctx, u1, ProjectFilter{})
	require.NoError(t, err)

	require.Equal(t, afterOne, afterTwo)
	require.Len(t, afterTwo, 1)
	require.Equal(t, keep.ID, afterTwo[0].ID)
}

func TestProjectValidationAndOwnership(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u1 := f.register(t, "u1@example.com", models.RoleUser)
	manager := f.register(t, "m@example.com", models.RoleManager)

	_, err := f.svc.Projects.Create(ctx, u1, models.ProjectInput{Name: " "})
	require.Error(t, err)
	_, err = f.svc.Projects.Create(ctx, u1, models.ProjectInput{Name: "X", Deadline: "03/01/2025"})
	require.Error(t, err)

	project := f.createProject(t, u1, "Launch")

	bad := models.ProjectStatus("archived")
	_, err = f.svc.Projects.Update(ctx, u1, project.ID, models.ProjectPatch{Status: &bad})
	require.Error(t, err)

	tooMuch := 101
	_, err = f.svc.Projects.Update(ctx, u1, project.ID, models.ProjectPatch{Progress: &tooMuch})
	require.Error(t, err)

	_, err = f.svc.Projects.Update(ctx, u1, project.ID, models.ProjectPatch{})
	require.Error(t, err)

	name := "Taken over"
	_, err = f.svc.Projects.Update(ctx, manager, project.ID, models.ProjectPatch{Name: &name})
	require.ErrorIs(t, err, errmsg.PermissionDenied)
	require.ErrorIs(t, f.svc.Projects.Delete(ctx, manager, project.ID), errmsg.PermissionDenied)

	_, err = f.svc.Projects.Update(ctx, u1, "missing", models.ProjectPatch{Name: &name})
	require.ErrorIs(t, err, errmsg.ProjectNotFound)
}
