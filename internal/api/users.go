package api

import (
	"context"

	"admindash/internal/core"
	"admindash/internal/errmsg"
	"admindash/internal/models"

	"github.com/gofiber/fiber/v3"
)

type statusRequest struct {
	IsActive *bool `json:"isActive"`
}

type roleRequest struct {
	Role string `json:"role"`
}

type profileRequest struct {
	DisplayName string `json:"displayName"`
}

// listUsersHandler lists directory profiles, newest first.
// @Summary List users
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Param role query string false "user, manager or admin"
// @Param limit query int false "page size, default 10, max 100"
// @Param after query string false "id of the last user on the previous page"
// @Success 200 {array} models.Identity
// @Failure 400 {object} errmsg._InvalidRole
// @Failure 403 {object} errmsg._PermissionDenied
// @Router /dashboard/users [get]
func (h *Handler) listUsersHandler(c fiber.Ctx) error {
	return h.call(c, func(ctx context.Context, actor models.SessionIdentity) error {
		limit, err := queryInt(c, "limit")
		if err != nil {
			return err
		}

		users, err := h.Services.Users.List(ctx, actor, core.UserFilter{
			Role:  c.Query("role"),
			Limit: limit,
			After: c.Query("after"),
		})
		if err != nil {
			return err
		}
		return c.JSON(users)
	})
}

// searchUsersHandler matches names and emails.
// @Summary Search users
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Param q query string true "search term"
// @Success 200 {array} models.Identity
// @Failure 400 {object} errmsg._Validation
// @Failure 403 {object} errmsg._PermissionDenied
// @Router /dashboard/users/search [get]
func (h *Handler) searchUsersHandler(c fiber.Ctx) error {
	return h.call(c, func(ctx context.Context, actor models.SessionIdentity) error {
		users, err := h.Services.Users.Search(ctx, actor, c.Query("q"))
		if err != nil {
			return err
		}
		return c.JSON(users)
	})
}

// getUserHandler returns one profile.
// @Summary Get user
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.Identity
// @Failure 404 {object} errmsg._UserNotFound
// @Router /dashboard/users/{id} [get]
func (h *Handler) getUserHandler(c fiber.Ctx) error {
	return h.call(c, func(ctx context.Context, actor models.SessionIdentity) error {
		user, err := h.Services.Users.Profile(ctx, actor, c.Params("id"))
		if err != nil {
			return err
		}
		return c.JSON(user)
	})
}

// updateUserStatusHandler activates or deactivates an account.
// @Summary Set user status
// @Tags Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param body body statusRequest true "New status"
// @Success 200 {object} models.Identity
// @Failure 403 {object} errmsg._PermissionDenied
// @Failure 404 {object} errmsg._UserNotFound
// @Router /dashboard/users/{id}/status [patch]
func (h *Handler) updateUserStatusHandler(c fiber.Ctx) error {
	return h.call(c, func(ctx context.Context, actor models.SessionIdentity) error {
		var body statusRequest
		if err := decode(c, &body); err != nil {
			return err
		}
		if body.IsActive == nil {
			return errmsg.Validation("isActive is required")
		}

		id := c.Params("id")
		if err := h.Services.Users.UpdateStatus(ctx, actor, id, *body.IsActive); err != nil {
			return err
		}
		return h.respondUser(ctx, c, actor, id)
	})
}

// updateUserRoleHandler changes an account's role.
// @Summary Set user role
// @Tags Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param body body roleRequest true "New role"
// @Success 200 {object} models.Identity
// @Failure 400 {object} errmsg._InvalidRole
// @Failure 403 {object} errmsg._PermissionDenied
// @Failure 404 {object} errmsg._UserNotFound
// @Router /dashboard/users/{id}/role [patch]
func (h *Handler) updateUserRoleHandler(c fiber.Ctx) error {
	return h.call(c, func(ctx context.Context, actor models.SessionIdentity) error {
		var body roleRequest
		if err := decode(c, &body); err != nil {
			return err
		}

		id := c.Params("id")
		if err := h.Services.Users.UpdateRole(ctx, actor, id, body.Role); err != nil {
			return err
		}
		return h.respondUser(ctx, c, actor, id)
	})
}

// updateUserProfileHandler renames an account.
// @Summary Update user profile
// @Tags Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param body body profileRequest true "Profile fields"
// @Success 200 {object} models.Identity
// @Failure 400 {object} errmsg._Validation
// @Failure 403 {object} errmsg._PermissionDenied
// @Failure 404 {object} errmsg._UserNotFound
// @Router /dashboard/users/{id}/profile [patch]
func (h *Handler) updateUserProfileHandler(c fiber.Ctx) error {
	return h.call(c, func(ctx context.Context, actor models.SessionIdentity) error {
		var body profileRequest
		if err := decode(c, &body); err != nil {
			return err
		}

		id := c.Params("id")
		if err := h.Services.Users.UpdateProfile(ctx, actor, id, body.DisplayName); err != nil {
			return err
		}
		return h.respondUser(ctx, c, actor, id)
	})
}

// deleteUserHandler removes an account with its credential and sessions.
// @Summary Delete user
// @Tags Users
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 204
// @Failure 403 {object} errmsg._PermissionDenied
// @Failure 404 {object} errmsg._UserNotFound
// @Router /dashboard/users/{id} [delete]
func (h *Handler) deleteUserHandler(c fiber.Ctx) error {
	return h.call(c, func(ctx context.Context, actor models.SessionIdentity) error {
		if err := h.Services.Users.Delete(ctx, actor, c.Params("id")); err != nil {
			return err
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
}

// respondUser echoes the stored profile after an update. A profile the actor
// may not read back yields a bare acknowledgement.
func (h *Handler) respondUser(ctx context.Context, c fiber.Ctx, actor models.SessionIdentity, id string) error {
	user, err := h.Services.Users.Profile(ctx, actor, id)
	if err != nil {
		return c.JSON(fiber.Map{"id": id})
	}
	return c.JSON(user)
}
