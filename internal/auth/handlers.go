package auth

import (
	"encoding/json"
	"net/http"
	"strings"

	"admindash/internal/access"
	"admindash/internal/core"
	"admindash/internal/errmsg"
	"admindash/internal/models"
	"admindash/internal/utils"

	"github.com/gofiber/fiber/v3"
)

type Handler struct {
	Gate  *access.Gate
	Users *core.Users
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

type meResponse struct {
	Profile     models.Identity `json:"profile"`
	Initials    string          `json:"initials"`
	Permissions []access.Action `json:"permissions"`
}

// registerHandler creates a credential and profile.
// @Summary Register a user
// @Description Anonymous callers may only create the user role. A bearer token with manage_users may choose any role.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body core.RegisterInput true "New identity"
// @Success 201 {object} models.Identity
// @Failure 400 {object} errmsg._Validation
// @Failure 403 {object} errmsg._PermissionDenied
// @Failure 409 {object} errmsg._EmailInUse
// @Failure 503 {object} errmsg._Transport
// @Router /dashboard/auth/register [post]
func (h *Handler) registerHandler(c fiber.Ctx) error {
	var body core.RegisterInput
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return utils.StatusError(c, errmsg.InvalidPayload)
	}

	ctx, cancel := utils.RequestContext()
	defer cancel()

	var actor models.SessionIdentity
	if token := BearerToken(c); token != "" {
		identity, err := h.Gate.Resolve(ctx, token)
		if err != nil {
			return utils.Fail(c, err)
		}
		actor = identity
	}

	user, err := h.Users.Register(ctx, actor, body)
	if err != nil {
		return utils.Fail(c, err)
	}

	return c.Status(http.StatusCreated).JSON(user)
}

// loginHandler opens a session.
// @Summary Sign in
// @Description Set role to require that the account holds exactly that role.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body loginRequest true "Credentials"
// @Success 200 {object} models.SessionIdentity
// @Failure 400 {object} errmsg._LoginInvalidPayload
// @Failure 401 {object} errmsg._InvalidCredential
// @Failure 403 {object} errmsg._AccountDeactivated
// @Failure 503 {object} errmsg._Transport
// @Router /dashboard/auth/login [post]
func (h *Handler) loginHandler(c fiber.Ctx) error {
	var body loginRequest
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return utils.StatusError(c, errmsg.LoginInvalidPayload)
	}

	body.Email = strings.TrimSpace(body.Email)
	if body.Email == "" || body.Password == "" {
		return utils.StatusError(c, errmsg.LoginInvalidPayload)
	}

	var required *models.Role
	if strings.TrimSpace(body.Role) != "" {
		role, ok := models.ParseRole(body.Role)
		if !ok {
			return utils.StatusError(c, errmsg.InvalidRole)
		}
		required = &role
	}

	ctx, cancel := utils.RequestContext()
	defer cancel()

	identity, err := h.Gate.AuthenticateSession(ctx, body.Email, body.Password, required)
	if err != nil {
		return utils.Fail(c, err)
	}

	return c.JSON(identity)
}

// logoutHandler ends the caller's session.
// @Summary Sign out
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 401 {object} errmsg._SessionInvalid
// @Router /dashboard/auth/logout [post]
func (h *Handler) logoutHandler(c fiber.Ctx) error {
	ctx, cancel := utils.RequestContext()
	defer cancel()

	if err := h.Gate.SignOut(ctx, BearerToken(c)); err != nil {
		return utils.Fail(c, err)
	}

	return c.JSON(fiber.Map{"message": "logged out"})
}

// meHandler returns the caller's profile and permissions.
// @Summary Current identity
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} meResponse
// @Failure 401 {object} errmsg._SessionInvalid
// @Router /dashboard/auth/me [get]
func (h *Handler) meHandler(c fiber.Ctx) error {
	actor, err := Identity(c)
	if err != nil {
		return utils.Fail(c, err)
	}

	ctx, cancel := utils.RequestContext()
	defer cancel()

	profile, err := h.Users.Profile(ctx, actor, actor.ID)
	if err != nil {
		return utils.Fail(c, err)
	}

	return c.JSON(meResponse{
		Profile:     profile,
		Initials:    profile.Initials(),
		Permissions: access.Permissions(profile.Role),
	})
}
