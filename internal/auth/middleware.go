package auth

import (
	"strings"

	"admindash/internal/access"
	"admindash/internal/errmsg"
	"admindash/internal/models"
	"admindash/internal/utils"

	"github.com/gofiber/fiber/v3"
)

const localsIdentity = "identity"

// BearerToken reads "Authorization: Bearer <token>", falling back to the
// ?authorization= query parameter that browsers use for WebSocket upgrades.
func BearerToken(c fiber.Ctx) string {
	authHeader := strings.TrimSpace(c.Get("Authorization"))

	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		tokens := strings.Fields(authHeader)
		if len(tokens) == 2 {
			return strings.TrimSpace(tokens[1])
		}
		return ""
	}

	return strings.TrimSpace(c.Query("authorization"))
}

// Middleware admits requests whose token maps to a live session of an active
// directory profile, and stores that identity in the request locals.
func Middleware(gate *access.Gate) fiber.Handler {
	return func(c fiber.Ctx) error {
		ctx, cancel := utils.RequestContext()
		defer cancel()

		identity, err := gate.Resolve(ctx, BearerToken(c))
		if err != nil {
			return utils.Fail(c, err)
		}

		utils.SetLocals(c, localsIdentity, identity)

		return c.Next()
	}
}

// Identity returns the identity stored by Middleware.
func Identity(c fiber.Ctx) (models.SessionIdentity, error) {
	var identity models.SessionIdentity
	if err := utils.GetLocals(c, localsIdentity, &identity); err != nil {
		return models.SessionIdentity{}, errmsg.SessionInvalid
	}
	return identity, nil
}
