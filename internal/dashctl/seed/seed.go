// Package seed provisions the system administrator account the dashboard
// excludes from its user statistics.
package seed

import (
	"context"
	"errors"
	"strings"

	"admindash/internal/backend"
	"admindash/internal/core"
	"admindash/internal/errmsg"
	"admindash/internal/models"
)

// Admin registers an administrator and flags the profile as a system account.
// An existing account with the same email is promoted instead.
func Admin(ctx context.Context, users *core.Users, store backend.DocumentStore, email, password, displayName string) (models.Identity, error) {
	root := models.SessionIdentity{Role: models.RoleAdmin}

	identity, err := users.Register(ctx, root, core.RegisterInput{
		Email:       email,
		Password:    password,
		DisplayName: displayName,
		Role:        string(models.RoleAdmin),
	})
	if errors.Is(err, errmsg.EmailInUse) {
		identity, err = existing(ctx, store, email)
	}
	if err != nil {
		return models.Identity{}, err
	}

	if err := store.Update(ctx, models.CollectionUsers, identity.ID, backend.Patch{
		"system":   true,
		"role":     string(models.RoleAdmin),
		"isActive": true,
	}); err != nil {
		return models.Identity{}, errmsg.Transport(err)
	}

	identity.System = true
	identity.Role = models.RoleAdmin
	identity.IsActive = true
	return identity, nil
}

func existing(ctx context.Context, store backend.DocumentStore, email string) (models.Identity, error) {
	var found []models.Identity
	err := store.Query(ctx, models.CollectionUsers, backend.Query{
		Filter: backend.Filter{"email": strings.ToLower(strings.TrimSpace(email))},
		Limit:  1,
	}, &found)
	if err != nil {
		return models.Identity{}, errmsg.Transport(err)
	}
	if len(found) == 0 {
		return models.Identity{}, errmsg.UserNotFound
	}
	return found[0], nil
}
