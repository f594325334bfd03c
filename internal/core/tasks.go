package core

import (
	"context"
	"strings"

	"admindash/internal/access"
	"admindash/internal/backend"
	"admindash/internal/errmsg"
	"admindash/internal/events"
	"admindash/internal/models"
)

type TaskFilter struct {
	ProjectID string
	Limit     int
	After     string
}

type Tasks struct {
	store    backend.DocumentStore
	em       *events.Emitter
	projects *Projects
}

func (s *Tasks) Create(ctx context.Context, actor models.SessionIdentity, in models.TaskInput) (models.Task, error) {
	if err := access.Require(actor, access.CreateTask); err != nil {
		return models.Task{}, err
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		return models.Task{}, errmsg.Validation("title is required")
	}
	if in.ProjectID == "" {
		return models.Task{}, errmsg.Validation("projectId is required")
	}

	priority := in.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	if !priority.Valid() {
		return models.Task{}, errmsg.Validation("priority must be one of low, medium, high")
	}

	if _, err := s.projects.Get(ctx, actor, in.ProjectID); err != nil {
		return models.Task{}, err
	}

	task := models.Task{
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		ProjectID:   in.ProjectID,
		Priority:    priority,
		Status:      models.TaskStatusPending,
		CreatedBy:   actor.ID,
		CreatedAt:   now(),
	}

	id, err := s.store.Insert(ctx, models.CollectionTasks, task)
	if err != nil {
		return models.Task{}, errmsg.Transport(err)
	}
	task.ID = id

	s.em.TaskCreated(actor.ID, task)
	return task, nil
}

func (s *Tasks) List(ctx context.Context, actor models.SessionIdentity, f TaskFilter) ([]models.Task, error) {
	tasks := []models.Task{}
	if err := s.store.Query(ctx, models.CollectionTasks, TaskQuery(actor, f), &tasks); err != nil {
		return nil, storeError(err, errCursor)
	}
	return tasks, nil
}

// TaskQuery is the scoped query behind List, shared with live streams.
func TaskQuery(actor models.SessionIdentity, f TaskFilter) backend.Query {
	q := backend.Query{
		Filter:     backend.Filter{},
		OrderBy:    "createdAt",
		Descending: true,
		Limit:      pageSize(f.Limit, defaultRecordPage),
		After:      f.After,
	}
	if owner := access.OwnerScope(actor); owner != "" {
		q.Filter["createdBy"] = owner
	}
	if f.ProjectID != "" {
		q.Filter["projectId"] = f.ProjectID
	}
	return q
}

// Get also admits the assignee of a task.
func (s *Tasks) Get(ctx context.Context, actor models.SessionIdentity, id string) (models.Task, error) {
	var task models.Task
	if err := s.store.Get(ctx, models.CollectionTasks, id, &task); err != nil {
		return models.Task{}, storeError(err, errmsg.TaskNotFound)
	}

	owner := access.OwnerScope(actor)
	if owner != "" && task.CreatedBy != owner && task.AssignedTo != owner {
		return models.Task{}, errmsg.TaskNotFound
	}
	return task, nil
}

func (s *Tasks) owned(ctx context.Context, actor models.SessionIdentity, id string) (models.Task, error) {
	task, err := s.Get(ctx, actor, id)
	if err != nil {
		return models.Task{}, err
	}
	if !access.CanMutate(actor, task.CreatedBy) {
		return models.Task{}, errmsg.PermissionDenied
	}
	return task, nil
}

func (s *Tasks) write(ctx context.Context, id string, patch backend.Patch, task *models.Task) error {
	updated := now()
	patch["updatedAt"] = updated
	task.UpdatedAt = &updated

	return storeError(s.store.Update(ctx, models.CollectionTasks, id, patch), errmsg.TaskNotFound)
}

func (s *Tasks) Update(ctx context.Context, actor models.SessionIdentity, id string, p models.TaskPatch) (models.Task, error) {
	task, err := s.owned(ctx, actor, id)
	if err != nil {
		return models.Task{}, err
	}

	patch := backend.Patch{}
	if p.Title != nil {
		title := strings.TrimSpace(*p.Title)
		if title == "" {
			return models.Task{}, errmsg.Validation("title is required")
		}
		patch["title"] = title
		task.Title = title
	}
	if p.Description != nil {
		patch["description"] = *p.Description
		task.Description = *p.Description
	}
	if p.Priority != nil {
		if !p.Priority.Valid() {
			return models.Task{}, errmsg.Validation("priority must be one of low, medium, high")
		}
		patch["priority"] = *p.Priority
		task.Priority = *p.Priority
	}
	if len(patch) == 0 {
		return models.Task{}, errmsg.Validation("nothing to update")
	}

	if err := s.write(ctx, id, patch, &task); err != nil {
		return models.Task{}, err
	}

	s.em.TaskUpdated(actor.ID, id)
	return task, nil
}

// UpdateStatus may be called by the creator or the assignee.
func (s *Tasks) UpdateStatus(ctx context.Context, actor models.SessionIdentity, id string, status models.TaskStatus) (models.Task, error) {
	if !status.Valid() {
		return models.Task{}, errmsg.Validation("status must be one of pending, in_progress, completed")
	}

	task, err := s.Get(ctx, actor, id)
	if err != nil {
		return models.Task{}, err
	}
	if !access.CanChangeTaskStatus(actor, task) {
		return models.Task{}, errmsg.PermissionDenied
	}

	task.Status = status
	if err := s.write(ctx, id, backend.Patch{"status": status}, &task); err != nil {
		return models.Task{}, err
	}

	s.em.TaskStatusChanged(actor.ID, id, status)
	return task, nil
}

// Assign hands the task to a registered identity.
func (s *Tasks) Assign(ctx context.Context, actor models.SessionIdentity, id, assignee string) (models.Task, error) {
	if assignee == "" {
		return models.Task{}, errmsg.Validation("assignee is required")
	}

	task, err := s.owned(ctx, actor, id)
	if err != nil {
		return models.Task{}, err
	}

	var user models.Identity
	if err := s.store.Get(ctx, models.CollectionUsers, assignee, &user); err != nil {
		return models.Task{}, storeError(err, errmsg.UserNotFound)
	}

	task.AssignedTo = assignee
	if err := s.write(ctx, id, backend.Patch{"assignedTo": assignee}, &task); err != nil {
		return models.Task{}, err
	}

	s.em.TaskAssigned(actor.ID, id)
	return task, nil
}

func (s *Tasks) Delete(ctx context.Context, actor models.SessionIdentity, id string) error {
	if _, err := s.owned(ctx, actor, id); err != nil {
		return err
	}

	if err := s.store.Delete(ctx, models.CollectionTasks, id); err != nil {
		return storeError(err, errmsg.TaskNotFound)
	}

	s.em.TaskDeleted(actor.ID, id)
	return nil
}
