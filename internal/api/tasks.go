package api

import (
	"context"

	"admindash/internal/core"
	"admindash/internal/models"

	"github.com/gofiber/fiber/v3"
)

type taskStatusRequest struct {
	Status models.TaskStatus `json:"status"`
}

type assignRequest struct {
	AssignedTo string `json:"assignedTo"`
}

// listTasksHandler lists the tasks visible to the caller.
// @Summary List tasks
// @Tags Tasks
// @Security BearerAuth
// @Produce json
// @Param projectId query string false "only tasks of this project"
// @Param limit query int false "page size, default 50, max 100"
// @Param after query string false "id of the last task on the previous page"
// @Success 200 {array} models.Task
// @Router /dashboard/tasks [get]
func (h *Handler) listTasksHandler(c fiber.Ctx) error {
	return h.call(c, func(ctx context.Context, actor models.SessionIdentity) error {
		limit, err := queryInt(c, "limit")
		if err != nil {
			return err
		}

		tasks, err := h.Services.Tasks.List(ctx, actor, core.TaskFilter{
			ProjectID: c.Query("projectId"),
			Limit:     limit,
			After:     c.Query("after"),
		})
		if err != nil {
			return err
		}
		return c.JSON(tasks)
	})
}

// createTaskHandler adds a task to an existing project.
// @Summary Create task
// @Tags Tasks
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body models.TaskInput true "Task"
// @Success 201 {object} models.Task
// @Failure 400 {object} errmsg._Validation
// @Failure 404 {object} errmsg._ProjectNotFound
// @Router /dashboard/tasks [post]
func (h *Handler) createTaskHandler(c fiber.Ctx) error {
	return h.call(c, func(ctx context.Context, actor models.SessionIdentity) error {
		var body models.TaskInput
		if err := decode(c, &body); err != nil {
			return err
		}

		task, err := h.Services.Tasks.Create(ctx, actor, body)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(task)
	})
}

// getTaskHandler returns one task.
// @Summary Get task
// @Tags Tasks
// @Security BearerAuth
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} models.Task
// @Failure 404 {object} errmsg._TaskNotFound
// @Router /dashboard/tasks/{id} [get]
func (h *Handler) getTaskHandler(c fiber.Ctx) error {
	return h.call(c, func(ctx context.Context, actor models.SessionIdentity) error {
		task, err := h.Services.Tasks.Get(ctx, actor, c.Params("id"))
		if err != nil {
			return err
		}
		return c.JSON(task)
	})
}

// updateTaskHandler patches a task the caller created.
// @Summary Update task
// @Tags Tasks
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param body body models.TaskPatch true "Fields to change"
// @Success 200 {object} models.Task
// @Failure 400 {object} errmsg._Validation
// @Failure 403 {object} errmsg._PermissionDenied
// @Failure 404 {object} errmsg._TaskNotFound
// @Router /dashboard/tasks/{id} [patch]
func (h *Handler) updateTaskHandler(c fiber.Ctx) error {
	return h.call(c, func(ctx context.Context, actor models.SessionIdentity) error {
		var body models.TaskPatch
		if err := decode(c, &body); err != nil {
			return err
		}

		task, err := h.Services.Tasks.Update(ctx, actor, c.Params("id"), body)
		if err != nil {
			return err
		}
		return c.JSON(task)
	})
}

// updateTaskStatusHandler moves a task through pending, in_progress and completed.
// @Summary Set task status
// @Tags Tasks
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param body body taskStatusRequest true "New status"
// @Success 200 {object} models.Task
// @Failure 400 {object} errmsg._Validation
// @Failure 403 {object} errmsg._PermissionDenied
// @Failure 404 {object} errmsg._TaskNotFound
// @Router /dashboard/tasks/{id}/status [patch]
func (h *Handler) updateTaskStatusHandler(c fiber.Ctx) error {
	return h.call(c, func(ctx context.Context, actor models.SessionIdentity) error {
		var body taskStatusRequest
		if err := decode(c, &body); err != nil {
			return err
		}

		task, err := h.Services.Tasks.UpdateStatus(ctx, actor, c.Params("id"), body.Status)
		if err != nil {
			return err
		}
		return c.JSON(task)
	})
}

// assignTaskHandler hands a task to a registered user.
// @Summary Assign task
// @Tags Tasks
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param body body assignRequest true "Assignee"
// @Success 200 {object} models.Task
// @Failure 403 {object} errmsg._PermissionDenied
// @Failure 404 {object} errmsg._UserNotFound
// @Router /dashboard/tasks/{id}/assign [patch]
func (h *Handler) assignTaskHandler(c fiber.Ctx) error {
	return h.call(c, func(ctx context.Context, actor models.SessionIdentity) error {
		var body assignRequest
		if err := decode(c, &body); err != nil {
			return err
		}

		task, err := h.Services.Tasks.Assign(ctx, actor, c.Params("id"), body.AssignedTo)
		if err != nil {
			return err
		}
		return c.JSON(task)
	})
}

// deleteTaskHandler deletes a task the caller created.
// @Summary Delete task
// @Tags Tasks
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Success 204
// @Failure 403 {object} errmsg._PermissionDenied
// @Failure 404 {object} errmsg._TaskNotFound
// @Router /dashboard/tasks/{id} [delete]
func (h *Handler) deleteTaskHandler(c fiber.Ctx) error {
	return h.call(c, func(ctx context.Context, actor models.SessionIdentity) error {
		if err := h.Services.Tasks.Delete(ctx, actor, c.Params("id")); err != nil {
			return err
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
}
