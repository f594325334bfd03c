package api

import (
	"context"
	"encoding/json"
	"strconv"

	"admindash/internal/access"
	"admindash/internal/auth"
	"admindash/internal/backend"
	"admindash/internal/core"
	"admindash/internal/errmsg"
	"admindash/internal/models"
	"admindash/internal/utils"

	"github.com/gofiber/fiber/v3"
)

// Handler serves the dashboard records. All routes run behind
// auth.Middleware.
type Handler struct {
	Gate      *access.Gate
	Services  *core.Services
	Directory backend.Directory
	Store     backend.DocumentStore
}

// call resolves the actor and a bounded context, then runs fn.
func (h *Handler) call(c fiber.Ctx, fn func(ctx context.Context, actor models.SessionIdentity) error) error {
	actor, err := auth.Identity(c)
	if err != nil {
		return utils.Fail(c, err)
	}

	ctx, cancel := utils.RequestContext()
	defer cancel()

	if err := fn(ctx, actor); err != nil {
		return utils.Fail(c, err)
	}
	return nil
}

func decode(c fiber.Ctx, out any) error {
	if err := json.Unmarshal(c.Body(), out); err != nil {
		return errmsg.InvalidPayload
	}
	return nil
}

func queryInt(c fiber.Ctx, key string) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, errmsg.Validation(key + " must be a non-negative integer")
	}
	return n, nil
}
