package core

import (
	"context"
	"testing"

	"admindash/internal/errmsg"
	"admindash/internal/models"

	"github.com/stretchr/testify/require"
)

func TestTaskCreateDefaults(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u1 := f.register(t, "u1@example.com", models.RoleUser)
	project := f.createProject(t, u1, "Launch")

	task := f.createTask(t, u1, project.ID, "Write copy")
	require.Equal(t, models.PriorityMedium, task.Priority)
	require.Equal(t, models.TaskStatusPending, task.Status)
	require.Equal(t, u1.ID, task.CreatedBy)

	_, err := f.svc.Tasks.Create(ctx, u1, models.TaskInput{Title: "Orphan", ProjectID: "missing"})
	require.ErrorIs(t, err, errmsg.ProjectNotFound)

	_, err = f.svc.Tasks.Create(ctx, u1, models.TaskInput{Title: "Loud", ProjectID: project.ID, Priority: "urgent"})
	require.Error(t, err)
}

func TestTaskListFilters(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u1 := f.register(t, "u1@example.com", models.RoleUser)
	u2 := f.register(t, "u2@example.com", models.RoleUser)
	alpha := f.createProject(t, u1, "Alpha")
	beta := f.createProject(t, u1, "Beta")
	gamma := f.createProject(t, u2, "Gamma")

	f.createTask(t, u1, alpha.ID, "a1")
	f.createTask(t, u1, beta.ID, "b1")
	f.createTask(t, u2, gamma.ID, "g1")

	tasks, err := f.svc.Tasks.List(ctx, u1, TaskFilter{ProjectID: alpha.ID})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, "a1", tasks[0].Title)

	tasks, err = f.svc.Tasks.List(ctx, u1, TaskFilter{})
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	for _, task := range tasks {
		require.Equal(t, u1.ID, task.CreatedBy)
	}

	tasks, err = f.svc.Tasks.List(ctx, f.admin, TaskFilter{})
	require.NoError(t, err)
	require.Len(t, tasks, 3)
}

func TestTaskStatusCompletesAndCounts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u1 := f.register(t, "u1@example.com", models.RoleUser)
	project := f.createProject(t, u1, "Launch")
	task := f.createTask(t, u1, project.ID, "Ship it")

	before, err := f.svc.Stats.Compute(ctx, u1)
	require.NoError(t, err)

	updated, err := f.svc.Tasks.UpdateStatus(ctx, u1, task.ID, models.TaskStatusCompleted)
	require.NoError(t, err)
	require.Equal(t, models.TaskStatusCompleted, updated.Status)

	f.em.Flush()
	after, err := f.svc.Stats.Compute(ctx, u1)
	require.NoError(t, err)
	require.Equal(t, before.CompletedTasks+1, after.CompletedTasks)
	require.Equal(t, before.PendingTasks-1, after.PendingTasks)

	found := false
	for _, e := range f.activity(t) {
		if e.Type == models.ActivityTaskStatusChange && e.RelatedID == task.ID {
			found = true
		}
	}
	require.True(t, found)

	_, err = f.svc.Tasks.UpdateStatus(ctx, u1, task.ID, models.TaskStatus("done"))
	require.Error(t, err)
}

func TestTaskAssignment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u1 := f.register(t, "u1@example.com", models.RoleUser)
	u2 := f.register(t, "u2@example.com", models.RoleUser)
	u3 := f.register(t, "u3@example.com", models.RoleUser)
	project := f.createProject(t, u1, "Launch")
	task := f.createTask(t, u1, project.ID, "Review")

	_, err := f.svc.Tasks.Assign(ctx, u1, task.ID, "nobody")
	require.ErrorIs(t, err, errmsg.UserNotFound)

	_, err = f.svc.Tasks.Assign(ctx, u2, task.ID, u2.ID)
	require.ErrorIs(t, err, errmsg.TaskNotFound)

	assigned, err := f.svc.Tasks.Assign(ctx, u1, task.ID, u2.ID)
	require.NoError(t, err)
	require.Equal(t, u2.ID, assigned.AssignedTo)

	// the assignee can see the task and move it along, but not edit it
	got, err := f.svc.Tasks.Get(ctx, u2, task.ID)
	require.NoError(t, err)
	require.Equal(t, task.ID, got.ID)

	_, err = f.svc.Tasks.UpdateStatus(ctx, u2, task.ID, models.TaskStatusInProgress)
	require.NoError(t, err)

	title := "Mine now"
	_, err = f.svc.Tasks.Update(ctx, u2, task.ID, models.TaskPatch{Title: &title})
	require.ErrorIs(t, err, errmsg.PermissionDenied)

	_, err = f.svc.Tasks.UpdateStatus(ctx, u3, task.ID, models.TaskStatusCompleted)
	require.ErrorIs(t, err, errmsg.TaskNotFound)
}

func TestTaskMutationsLogOncePerCall(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u1 := f.register(t, "u1@example.com", models.RoleUser)
	project := f.createProject(t, u1, "Launch")
	before := len(f.activity(t))

	task := f.createTask(t, u1, project.ID, "Draft")
	high := models.PriorityHigh
	_, err := f.svc.Tasks.Update(ctx, u1, task.ID, models.TaskPatch{Priority: &high})
	require.NoError(t, err)
	require.NoError(t, f.svc.Tasks.Delete(ctx, u1, task.ID))
	require.ErrorIs(t, f.svc.Tasks.Delete(ctx, u1, task.ID), errmsg.TaskNotFound)

	entries := f.activity(t)
	require.Len(t, entries, before+3)
	for _, e := range entries[:3] {
		require.Equal(t, task.ID, e.RelatedID)
		require.Equal(t, u1.ID, e.UserID)
	}
	require.Equal(t, models.ActivityTaskDeleted, entries[0].Type)
	require.Equal(t, models.ActivityTaskUpdated, entries[1].Type)
	require.Equal(t, models.ActivityTaskCreated, entries[2].Type)
}
