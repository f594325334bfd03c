package core

import (
	"context"
	"strings"
	"time"

	"admindash/internal/access"
	"admindash/internal/backend"
	"admindash/internal/errmsg"
	"admindash/internal/events"
	"admindash/internal/models"
)

type ProjectFilter struct {
	Limit int
	After string
}

type Projects struct {
	store backend.DocumentStore
	em    *events.Emitter
}

func validDeadline(deadline string) bool {
	if deadline == "" {
		return true
	}
	_, err := time.Parse(models.DeadlineLayout, deadline)
	return err == nil
}

func (s *Projects) Create(ctx context.Context, actor models.SessionIdentity, in models.ProjectInput) (models.Project, error) {
	if err := access.Require(actor, access.CreateProject); err != nil {
		return models.Project{}, err
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return models.Project{}, errmsg.Validation("name is required")
	}
	if !validDeadline(in.Deadline) {
		return models.Project{}, errmsg.Validation("deadline must be formatted as YYYY-MM-DD")
	}

	project := models.Project{
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Deadline:    in.Deadline,
		CreatedBy:   actor.ID,
		CreatedAt:   now(),
		Status:      models.ProjectStatusActive,
		Progress:    0,
	}

	id, err := s.store.Insert(ctx, models.CollectionProjects, project)
	if err != nil {
		return models.Project{}, errmsg.Transport(err)
	}
	project.ID = id

	s.em.ProjectCreated(actor.ID, project)
	return project, nil
}

// List returns one page of projects, newest first. Viewers without
// view_all_records only see their own.
func (s *Projects) List(ctx context.Context, actor models.SessionIdentity, f ProjectFilter) ([]models.Project, error) {
	projects := []models.Project{}
	err := s.store.Query(ctx, models.CollectionProjects, ProjectQuery(actor, f), &projects)
	if err != nil {
		return nil, storeError(err, errCursor)
	}
	return projects, nil
}

// ProjectQuery is the scoped query behind List, shared with live streams.
func ProjectQuery(actor models.SessionIdentity, f ProjectFilter) backend.Query {
	q := backend.Query{
		OrderBy:    "createdAt",
		Descending: true,
		Limit:      pageSize(f.Limit, defaultRecordPage),
		After:      f.After,
	}
	if owner := access.OwnerScope(actor); owner != "" {
		q.Filter = backend.Filter{"createdBy": owner}
	}
	return q
}

// Get hides projects outside the viewer's scope behind ProjectNotFound.
func (s *Projects) Get(ctx context.Context, actor models.SessionIdentity, id string) (models.Project, error) {
	var project models.Project
	if err := s.store.Get(ctx, models.CollectionProjects, id, &project); err != nil {
		return models.Project{}, storeError(err, errmsg.ProjectNotFound)
	}

	if owner := access.OwnerScope(actor); owner != "" && project.CreatedBy != owner {
		return models.Project{}, errmsg.ProjectNotFound
	}
	return project, nil
}

func (s *Projects) owned(ctx context.Context, actor models.SessionIdentity, id string) (models.Project, error) {
	project, err := s.Get(ctx, actor, id)
	if err != nil {
		return models.Project{}, err
	}
	if !access.CanMutate(actor, project.CreatedBy) {
		return models.Project{}, errmsg.PermissionDenied
	}
	return project, nil
}

func projectPatch(p models.ProjectPatch, project *models.Project) (backend.Patch, error) {
	patch := backend.Patch{}

	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		if name == "" {
			return nil, errmsg.Validation("name is required")
		}
		patch["name"] = name
		project.Name = name
	}
	if p.Description != nil {
		patch["description"] = *p.Description
		project.Description = *p.Description
	}
	if p.Deadline != nil {
		if !validDeadline(*p.Deadline) {
			return nil, errmsg.Validation("deadline must be formatted as YYYY-MM-DD")
		}
		patch["deadline"] = *p.Deadline
		project.Deadline = *p.Deadline
	}
	if p.Status != nil {
		if !p.Status.Valid() {
			return nil, errmsg.Validation("status must be one of active, on_hold, completed")
		}
		patch["status"] = *p.Status
		project.Status = *p.Status
	}
	if p.Progress != nil {
		if *p.Progress < 0 || *p.Progress > 100 {
			return nil, errmsg.Validation("progress must be between 0 and 100")
		}
		patch["progress"] = *p.Progress
		project.Progress = *p.Progress
	}

	if len(patch) == 0 {
		return nil, errmsg.Validation("nothing to update")
	}
	return patch, nil
}

func (s *Projects) Update(ctx context.Context, actor models.SessionIdentity, id string, p models.ProjectPatch) (models.Project, error) {
	project, err := s.owned(ctx, actor, id)
	if err != nil {
		return models.Project{}, err
	}

	patch, err := projectPatch(p, &project)
	if err != nil {
		return models.Project{}, err
	}
	updated := now()
	patch["updatedAt"] = updated
	project.UpdatedAt = &updated

	if err := s.store.Update(ctx, models.CollectionProjects, id, patch); err != nil {
		return models.Project{}, storeError(err, errmsg.ProjectNotFound)
	}

	s.em.ProjectUpdated(actor.ID, id)
	return project, nil
}

// Delete leaves the project's tasks in place.
func (s *Projects) Delete(ctx context.Context, actor models.SessionIdentity, id string) error {
	if _, err := s.owned(ctx, actor, id); err != nil {
		return err
	}

	if err := s.store.Delete(ctx, models.CollectionProjects, id); err != nil {
		return storeError(err, errmsg.ProjectNotFound)
	}

	s.em.ProjectDeleted(actor.ID, id)
	return nil
}
