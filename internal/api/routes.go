package api

import (
	"admindash/internal/auth"
	"admindash/internal/env"

	"github.com/gofiber/fiber/v3"
)

func Routes(app fiber.Router, h *Handler) {
	app.Get("/ping", pingHandler)
	app.Get("/version", versionHandler)

	dashboard := app.Group("", auth.Middleware(h.Gate))

	dashboard.Get("/stats", h.statsHandler)
	dashboard.Get("/overview", h.overviewHandler)
	dashboard.Get("/activity", h.activityHandler)
	dashboard.Post("/reports", h.reportHandler)

	users := dashboard.Group("/users")
	users.Get("/", h.listUsersHandler)
	users.Get("/search", h.searchUsersHandler)
	users.Get("/:id", h.getUserHandler)
	users.Patch("/:id/status", h.updateUserStatusHandler)
	users.Patch("/:id/role", h.updateUserRoleHandler)
	users.Patch("/:id/profile", h.updateUserProfileHandler)
	users.Delete("/:id", h.deleteUserHandler)

	projects := dashboard.Group("/projects")
	projects.Get("/", h.listProjectsHandler)
	projects.Post("/", h.createProjectHandler)
	projects.Get("/:id", h.getProjectHandler)
	projects.Patch("/:id", h.updateProjectHandler)
	projects.Delete("/:id", h.deleteProjectHandler)

	tasks := dashboard.Group("/tasks")
	tasks.Get("/", h.listTasksHandler)
	tasks.Post("/", h.createTaskHandler)
	tasks.Get("/:id", h.getTaskHandler)
	tasks.Patch("/:id", h.updateTaskHandler)
	tasks.Patch("/:id/status", h.updateTaskStatusHandler)
	tasks.Patch("/:id/assign", h.assignTaskHandler)
	tasks.Delete("/:id", h.deleteTaskHandler)

	streams := dashboard.Group("/ws")
	streams.Get("/session", h.sessionStreamHandler)
	streams.Get("/:collection", h.collectionStreamHandler)
}

// pingHandler reports liveness.
// @Summary Ping
// @Tags Meta
// @Produce plain
// @Success 200 {string} string "PONG"
// @Router /dashboard/ping [get]
func pingHandler(c fiber.Ctx) error {
	return c.SendString("PONG")
}

// versionHandler reports the running build.
// @Summary Version
// @Tags Meta
// @Produce plain
// @Success 200 {string} string "v25.10.16.1"
// @Router /dashboard/version [get]
func versionHandler(c fiber.Ctx) error {
	return c.SendString("v" + env.VERSION)
}
