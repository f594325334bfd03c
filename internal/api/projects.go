package api

import (
	"context"

	"admindash/internal/core"
	"admindash/internal/models"

	"github.com/gofiber/fiber/v3"
)

// listProjectsHandler lists the projects visible to the caller.
// @Summary List projects
// @Description Callers without view_all_records only see projects they created.
// @Tags Projects
// @Security BearerAuth
// @Produce json
// @Param limit query int false "page size, default 50, max 100"
// @Param after query string false "id of the last project on the previous page"
// @Success 200 {array} models.Project
// @Failure 503 {object} errmsg._Transport
// @Router /dashboard/projects [get]
func (h *Handler) listProjectsHandler(c fiber.Ctx) error {
	return h.call(c, func(ctx context.Context, actor models.SessionIdentity) error {
		limit, err := queryInt(c, "limit")
		if err != nil {
			return err
		}

		projects, err := h.Services.Projects.List(ctx, actor, core.ProjectFilter{
			Limit: limit,
			After: c.Query("after"),
		})
		if err != nil {
			return err
		}
		return c.JSON(projects)
	})
}

// createProjectHandler creates a project owned by the caller.
// @Summary Create project
// @Tags Projects
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body models.ProjectInput true "Project"
// @Success 201 {object} models.Project
// @Failure 400 {object} errmsg._Validation
// @Router /dashboard/projects [post]
func (h *Handler) createProjectHandler(c fiber.Ctx) error {
	return h.call(c, func(ctx context.Context, actor models.SessionIdentity) error {
		var body models.ProjectInput
		if err := decode(c, &body); err != nil {
			return err
		}

		project, err := h.Services.Projects.Create(ctx, actor, body)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(project)
	})
}

// getProjectHandler returns one project.
// @Summary Get project
// @Tags Projects
// @Security BearerAuth
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} models.Project
// @Failure 404 {object} errmsg._ProjectNotFound
// @Router /dashboard/projects/{id} [get]
func (h *Handler) getProjectHandler(c fiber.Ctx) error {
	return h.call(c, func(ctx context.Context, actor models.SessionIdentity) error {
		project, err := h.Services.Projects.Get(ctx, actor, c.Params("id"))
		if err != nil {
			return err
		}
		return c.JSON(project)
	})
}

// updateProjectHandler patches a project the caller owns.
// @Summary Update project
// @Tags Projects
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param body body models.ProjectPatch true "Fields to change"
// @Success 200 {object} models.Project
// @Failure 400 {object} errmsg._Validation
// @Failure 403 {object} errmsg._PermissionDenied
// @Failure 404 {object} errmsg._ProjectNotFound
// @Router /dashboard/projects/{id} [patch]
func (h *Handler) updateProjectHandler(c fiber.Ctx) error {
	return h.call(c, func(ctx context.Context, actor models.SessionIdentity) error {
		var body models.ProjectPatch
		if err := decode(c, &body); err != nil {
			return err
		}

		project, err := h.Services.Projects.Update(ctx, actor, c.Params("id"), body)
		if err != nil {
			return err
		}
		return c.JSON(project)
	})
}

// deleteProjectHandler deletes a project the caller owns.
// @Summary Delete project
// @Tags Projects
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Success 204
// @Failure 403 {object} errmsg._PermissionDenied
// @Failure 404 {object} errmsg._ProjectNotFound
// @Router /dashboard/projects/{id} [delete]
func (h *Handler) deleteProjectHandler(c fiber.Ctx) error {
	return h.call(c, func(ctx context.Context, actor models.SessionIdentity) error {
		if err := h.Services.Projects.Delete(ctx, actor, c.Params("id")); err != nil {
			return err
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
}
