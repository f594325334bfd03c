package seed

import (
	"context"
	"testing"

	"admindash/internal/core"
	"admindash/internal/directory"
	"admindash/internal/docstore"
	"admindash/internal/errmsg"
	"admindash/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup() (*directory.Directory, *docstore.Memory, *core.Services) {
	dir := directory.NewMemory([]byte("seed-secret"))
	store := docstore.NewMemory()
	return dir, store, core.New(dir, store, nil)
}

func TestAdminCreatesSystemAccount(t *testing.T) {
	ctx := context.Background()
	dir, store, svc := setup()

	admin, err := Admin(ctx, svc.Users, store, "Root@Example.com", "rootpass", "Root")
	require.NoError(t, err)
	assert.True(t, admin.System)
	assert.Equal(t, models.RoleAdmin, admin.Role)

	var stored models.Identity
	require.NoError(t, store.Get(ctx, models.CollectionUsers, admin.ID, &stored))
	assert.True(t, stored.System)
	assert.Equal(t, "root@example.com", stored.Email)

	id, err := dir.VerifyCredential(ctx, "root@example.com", "rootpass")
	require.NoError(t, err)
	assert.Equal(t, admin.ID, id)
}

func TestAdminPromotesExistingAccount(t *testing.T) {
	ctx := context.Background()
	_, store, svc := setup()

	user, err := svc.Users.Register(ctx, models.SessionIdentity{}, core.RegisterInput{
		Email:       "ops@example.com",
		Password:    "password1",
		DisplayName: "Ops",
	})
	require.NoError(t, err)
	require.Equal(t, models.RoleUser, user.Role)

	admin, err := Admin(ctx, svc.Users, store, "ops@example.com", "ignored1", "Ops")
	require.NoError(t, err)
	assert.Equal(t, user.ID, admin.ID)

	var stored models.Identity
	require.NoError(t, store.Get(ctx, models.CollectionUsers, user.ID, &stored))
	assert.Equal(t, models.RoleAdmin, stored.Role)
	assert.True(t, stored.System)
}

func TestAdminRejectsInvalidInput(t *testing.T) {
	_, store, svc := setup()

	_, err := Admin(context.Background(), svc.Users, store, "not-an-email", "rootpass", "Root")
	var se errmsg.StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 400, se.StatusCode)
}
