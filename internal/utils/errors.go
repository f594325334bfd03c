package utils

import (
	"admindash/internal/errmsg"

	"github.com/gofiber/fiber/v3"
)

func Error(c fiber.Ctx, statusCode int, err error) error {
	return c.Status(statusCode).JSON(map[string]string{
		"message": err.Error(),
	})
}

func StatusError(c fiber.Ctx, se errmsg.StatusError) error {
	return c.Status(se.StatusCode).JSON(map[string]string{
		"message": se.Message,
	})
}

// Fail writes any service error. Errors outside the errmsg catalogue become
// internal server errors.
func Fail(c fiber.Ctx, err error) error {
	return StatusError(c, errmsg.From(err))
}
