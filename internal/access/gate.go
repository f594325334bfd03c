// Package access authenticates sign-ins against the Directory and holds the
// role permission table plus the record ownership rules.
package access

import (
	"context"
	"errors"

	"admindash/internal/backend"
	"admindash/internal/errmsg"
	"admindash/internal/logging"
	"admindash/internal/models"
)

type Gate struct {
	dir   backend.Directory
	store backend.DocumentStore
}

func NewGate(dir backend.Directory, store backend.DocumentStore) *Gate {
	return &Gate{dir: dir, store: store}
}

// AuthenticateSession verifies the credential, opens a session and admits it
// only when the directory profile exists, is active and, if requiredRole is
// set, carries that role. A rejected session is signed out before returning.
func (g *Gate) AuthenticateSession(ctx context.Context, email, password string, requiredRole *models.Role) (models.SessionIdentity, error) {
	principalID, err := g.dir.VerifyCredential(ctx, email, password)
	if errors.Is(err, backend.ErrInvalidCredential) {
		return models.SessionIdentity{}, errmsg.InvalidCredential
	}
	if err != nil {
		return models.SessionIdentity{}, errmsg.Transport(err)
	}

	token, err := g.dir.OpenSession(ctx, principalID)
	if err != nil {
		return models.SessionIdentity{}, errmsg.Transport(err)
	}

	var profile models.Identity
	err = g.store.Get(ctx, models.CollectionUsers, principalID, &profile)
	switch {
	case errors.Is(err, backend.ErrNotFound):
		return g.reject(ctx, token, principalID, errmsg.IdentityNotRegistered)
	case err != nil:
		return g.reject(ctx, token, principalID, errmsg.Transport(err))
	case !profile.IsActive:
		return g.reject(ctx, token, principalID, errmsg.AccountDeactivated)
	case requiredRole != nil && profile.Role != *requiredRole:
		return g.reject(ctx, token, principalID, errmsg.RoleMismatch)
	}

	logging.Logger.Infof("Event ID: SESSION_OPENED, Description: %s signed in as %s", principalID, profile.Role)
	return profile.Session(token), nil
}

func (g *Gate) reject(ctx context.Context, token, principalID string, cause errmsg.StatusError) (models.SessionIdentity, error) {
	// The session must not outlive the rejection even when ctx has expired.
	if err := g.dir.SignOut(context.WithoutCancel(ctx), token); err != nil {
		logging.Logger.Warnf("Event ID: SESSION_SIGNOUT_FAILED, Description: could not sign out rejected session of %s: %v", principalID, err)
	}
	logging.Logger.Infof("Event ID: SESSION_REJECTED, Description: %s rejected: %s", principalID, cause.Message)
	return models.SessionIdentity{}, cause
}

// Resolve maps a bearer token to the live profile behind it. Deactivated
// profiles are refused even if their session is still registered.
func (g *Gate) Resolve(ctx context.Context, token string) (models.SessionIdentity, error) {
	if token == "" {
		return models.SessionIdentity{}, errmsg.NoToken
	}

	principalID, err := g.dir.ResolveSession(ctx, token)
	if errors.Is(err, backend.ErrNotFound) {
		return models.SessionIdentity{}, errmsg.SessionInvalid
	}
	if err != nil {
		return models.SessionIdentity{}, errmsg.Transport(err)
	}

	var profile models.Identity
	err = g.store.Get(ctx, models.CollectionUsers, principalID, &profile)
	if errors.Is(err, backend.ErrNotFound) {
		return models.SessionIdentity{}, errmsg.IdentityNotRegistered
	}
	if err != nil {
		return models.SessionIdentity{}, errmsg.Transport(err)
	}
	if !profile.IsActive {
		return models.SessionIdentity{}, errmsg.AccountDeactivated
	}

	return profile.Session(token), nil
}

func (g *Gate) SignOut(ctx context.Context, token string) error {
	if err := g.dir.SignOut(ctx, token); err != nil {
		return errmsg.Transport(err)
	}
	return nil
}
