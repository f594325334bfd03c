package utils

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v3"
)

var errNoLocals = errors.New("locals not set")

func GetLocals(c fiber.Ctx, name string, result any) error {
	raw, ok := c.Locals(name).(string)
	if !ok {
		return errNoLocals
	}
	return json.Unmarshal([]byte(raw), result)
}

func SetLocals(c fiber.Ctx, name string, data any) {
	bytes, _ := json.Marshal(data)
	json := string(bytes)
	c.Locals(name, json)
}
