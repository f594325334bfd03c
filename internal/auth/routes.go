package auth

import "github.com/gofiber/fiber/v3"

func Routes(app fiber.Router, h *Handler) {
	auth := app.Group("/auth")

	auth.Get("/ping", func(c fiber.Ctx) error {
		return c.SendString("PONG")
	})

	auth.Post("/register", h.registerHandler)
	auth.Post("/login", h.loginHandler)

	session := Middleware(h.Gate)
	auth.Post("/logout", session, h.logoutHandler)
	auth.Get("/me", session, h.meHandler)
}
