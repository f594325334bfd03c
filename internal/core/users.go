package core

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"admindash/internal/access"
	"admindash/internal/backend"
	"admindash/internal/errmsg"
	"admindash/internal/events"
	"admindash/internal/logging"
	"admindash/internal/models"
)

const minPasswordLength = 6

type RegisterInput struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
	Role        string `json:"role"`
}

type UserFilter struct {
	Role  string
	Limit int
	After string
}

type Users struct {
	dir   backend.Directory
	store backend.DocumentStore
	em    *events.Emitter
}

func (in RegisterInput) validate() (models.Role, error) {
	if _, err := mail.ParseAddress(strings.TrimSpace(in.Email)); err != nil {
		return "", errmsg.Validation("a valid email is required")
	}
	if len(in.Password) < minPasswordLength {
		return "", errmsg.Validation("password must be at least 6 characters")
	}
	if strings.TrimSpace(in.DisplayName) == "" {
		return "", errmsg.Validation("displayName is required")
	}

	if strings.TrimSpace(in.Role) == "" {
		return models.RoleUser, nil
	}
	role, ok := models.ParseRole(in.Role)
	if !ok {
		return "", errmsg.InvalidRole
	}
	return role, nil
}

// Register creates the credential and the directory profile for a new
// identity. Anonymous sign-up may only create plain users; an actor that can
// manage users may pick any role. If the profile cannot be stored the
// credential is removed again.
func (s *Users) Register(ctx context.Context, actor models.SessionIdentity, in RegisterInput) (models.Identity, error) {
	role, err := in.validate()
	if err != nil {
		return models.Identity{}, err
	}
	if role != models.RoleUser && !access.Permit(actor.Role, access.ManageUsers) {
		return models.Identity{}, errmsg.PermissionDenied
	}

	principalID, err := s.dir.CreateCredential(ctx, in.Email, in.Password)
	if errors.Is(err, backend.ErrDuplicate) {
		return models.Identity{}, errmsg.EmailInUse
	}
	if err != nil {
		return models.Identity{}, errmsg.Transport(err)
	}

	principal, err := s.dir.Principal(ctx, principalID)
	if err != nil {
		principal = backend.Principal{ID: principalID, Email: strings.ToLower(strings.TrimSpace(in.Email))}
	}

	user := models.Identity{
		ID:          principalID,
		Email:       principal.Email,
		DisplayName: strings.TrimSpace(in.DisplayName),
		Role:        role,
		IsActive:    true,
		CreatedAt:   now(),
	}

	if _, err := s.store.Insert(ctx, models.CollectionUsers, user); err != nil {
		if derr := s.dir.DeleteCredential(context.WithoutCancel(ctx), principalID); derr != nil {
			logging.Logger.Errorf("Event ID: CREDENTIAL_ORPHANED, Description: credential %s left without profile: %v", principalID, derr)
		}
		return models.Identity{}, errmsg.Transport(err)
	}

	actorID := actor.ID
	if actorID == "" {
		actorID = user.ID
	}
	s.em.UserRegistered(actorID, user)

	return user, nil
}

// List returns one page of profiles, newest first.
func (s *Users) List(ctx context.Context, actor models.SessionIdentity, f UserFilter) ([]models.Identity, error) {
	q, err := UserQuery(actor, f)
	if err != nil {
		return nil, err
	}

	users := []models.Identity{}
	if err := s.store.Query(ctx, models.CollectionUsers, q, &users); err != nil {
		return nil, storeError(err, errCursor)
	}
	return users, nil
}

// UserQuery is the query behind List, shared with live streams.
func UserQuery(actor models.SessionIdentity, f UserFilter) (backend.Query, error) {
	if err := access.Require(actor, access.ViewUsers); err != nil {
		return backend.Query{}, err
	}

	q := backend.Query{
		OrderBy:    "createdAt",
		Descending: true,
		Limit:      pageSize(f.Limit, defaultUserPage),
		After:      f.After,
	}
	if f.Role != "" {
		role, ok := models.ParseRole(f.Role)
		if !ok {
			return backend.Query{}, errmsg.InvalidRole
		}
		q.Filter = backend.Filter{"role": role}
	}
	return q, nil
}

func (s *Users) FilterByRole(ctx context.Context, actor models.SessionIdentity, role string) ([]models.Identity, error) {
	if strings.TrimSpace(role) == "" {
		return nil, errmsg.InvalidRole
	}
	return s.List(ctx, actor, UserFilter{Role: role, Limit: maxPage})
}

// Search matches term against display names and emails, ignoring case.
func (s *Users) Search(ctx context.Context, actor models.SessionIdentity, term string) ([]models.Identity, error) {
	if err := access.Require(actor, access.ViewUsers); err != nil {
		return nil, err
	}

	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil, errmsg.Validation("search term is required")
	}

	var all []models.Identity
	q := backend.Query{OrderBy: "createdAt", Descending: true}
	if err := s.store.Query(ctx, models.CollectionUsers, q, &all); err != nil {
		return nil, errmsg.Transport(err)
	}

	found := []models.Identity{}
	for _, u := range all {
		if strings.Contains(strings.ToLower(u.DisplayName), term) || strings.Contains(strings.ToLower(u.Email), term) {
			found = append(found, u)
			if len(found) == maxPage {
				break
			}
		}
	}
	return found, nil
}

func (s *Users) Profile(ctx context.Context, actor models.SessionIdentity, id string) (models.Identity, error) {
	if actor.ID != id {
		if err := access.Require(actor, access.ViewUsers); err != nil {
			return models.Identity{}, err
		}
	}

	var user models.Identity
	if err := s.store.Get(ctx, models.CollectionUsers, id, &user); err != nil {
		return models.Identity{}, storeError(err, errmsg.UserNotFound)
	}
	return user, nil
}

// UpdateStatus toggles isActive. Deactivation also ends every live session
// of that identity.
func (s *Users) UpdateStatus(ctx context.Context, actor models.SessionIdentity, id string, isActive bool) error {
	if err := access.Require(actor, access.ManageUsers); err != nil {
		return err
	}

	patch := backend.Patch{"isActive": isActive, "updatedAt": now()}
	if err := s.store.Update(ctx, models.CollectionUsers, id, patch); err != nil {
		return storeError(err, errmsg.UserNotFound)
	}

	if !isActive {
		if err := s.dir.RevokePrincipal(ctx, id); err != nil {
			logging.Logger.Warnf("Event ID: SESSION_REVOKE_FAILED, Description: sessions of %s survive deactivation: %v", id, err)
		}
	}

	s.em.UserStatusChanged(actor.ID, id, isActive)
	return nil
}

func (s *Users) UpdateRole(ctx context.Context, actor models.SessionIdentity, id, role string) error {
	if err := access.Require(actor, access.ManageUsers); err != nil {
		return err
	}

	parsed, ok := models.ParseRole(role)
	if !ok {
		return errmsg.InvalidRole
	}

	patch := backend.Patch{"role": parsed, "updatedAt": now()}
	if err := s.store.Update(ctx, models.CollectionUsers, id, patch); err != nil {
		return storeError(err, errmsg.UserNotFound)
	}

	s.em.UserRoleChanged(actor.ID, id, parsed)
	return nil
}

func (s *Users) UpdateProfile(ctx context.Context, actor models.SessionIdentity, id, displayName string) error {
	if !access.CanUpdateProfile(actor, id) {
		return errmsg.PermissionDenied
	}

	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return errmsg.Validation("displayName is required")
	}

	patch := backend.Patch{"displayName": displayName, "updatedAt": now()}
	if err := s.store.Update(ctx, models.CollectionUsers, id, patch); err != nil {
		return storeError(err, errmsg.UserNotFound)
	}

	s.em.UserProfileUpdated(actor.ID, id)
	return nil
}

// Delete removes the profile, then the credential and every live session so
// no orphan credential can sign in again.
func (s *Users) Delete(ctx context.Context, actor models.SessionIdentity, id string) error {
	if err := access.Require(actor, access.ManageUsers); err != nil {
		return err
	}

	if err := s.store.Delete(ctx, models.CollectionUsers, id); err != nil {
		return storeError(err, errmsg.UserNotFound)
	}

	cleanup := context.WithoutCancel(ctx)
	if err := s.dir.RevokePrincipal(cleanup, id); err != nil {
		logging.Logger.Warnf("Event ID: SESSION_REVOKE_FAILED, Description: sessions of deleted user %s survive: %v", id, err)
	}
	if err := s.dir.DeleteCredential(cleanup, id); err != nil && !errors.Is(err, backend.ErrNotFound) {
		logging.Logger.Errorf("Event ID: CREDENTIAL_ORPHANED, Description: credential of deleted user %s remains: %v", id, err)
	}

	s.em.UserDeleted(actor.ID, id)
	return nil
}
