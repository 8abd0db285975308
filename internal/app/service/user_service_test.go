package service

import (
	"context"
	"testing"

	"calendo/internal/common"
	"calendo/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserFixture(t *testing.T) (*UserService, *authFixture) {
	t.Helper()
	f := newAuthFixture(t)
	return NewUserService(f.users, newFakeRoleRepo(model.SeedRoles...)), f
}

func TestUserService_LockUnlock(t *testing.T) {
	svc, f := newUserFixture(t)
	user := f.register(t, "alice", "abc123", "")

	view, err := svc.Get(context.Background(), user.ID)
	require.NoError(t, err)
	assert.False(t, view.IsLocked)

	require.NoError(t, svc.Lock(context.Background(), user.ID))
	view, err = svc.Get(context.Background(), user.ID)
	require.NoError(t, err)
	assert.True(t, view.IsLocked)

	require.NoError(t, svc.Unlock(context.Background(), user.ID))
	view, err = svc.Get(context.Background(), user.ID)
	require.NoError(t, err)
	assert.False(t, view.IsLocked)
}

func TestUserService_ChangeRole(t *testing.T) {
	svc, f := newUserFixture(t)
	user := f.register(t, "alice", "abc123", "")

	require.NoError(t, svc.ChangeRole(context.Background(), user.ID, model.RoleStaff))
	view, err := svc.Get(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RoleStaff, view.Role)

	err = svc.ChangeRole(context.Background(), user.ID, "Superuser")
	assert.ErrorIs(t, err, common.ErrRoleNotFound)

	err = svc.ChangeRole(context.Background(), "no-such-id", model.RoleStaff)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestUserService_DisableBlocksLogin(t *testing.T) {
	svc, f := newUserFixture(t)
	user := f.register(t, "alice", "abc123", "")

	require.NoError(t, svc.SetActive(context.Background(), user.ID, false))
	_, err := f.svc.Login(context.Background(), LoginRequest{Username: "alice", Password: "abc123"})
	assert.ErrorIs(t, err, common.ErrAccountDisabled)

	require.NoError(t, svc.SetActive(context.Background(), user.ID, true))
	_, err = f.svc.Login(context.Background(), LoginRequest{Username: "alice", Password: "abc123"})
	assert.NoError(t, err)
}

func TestUserService_Delete(t *testing.T) {
	svc, f := newUserFixture(t)
	user := f.register(t, "alice", "abc123", "")

	require.NoError(t, svc.Delete(context.Background(), user.ID))
	_, err := svc.Get(context.Background(), user.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(context.Background(), user.ID), common.ErrNotFound)
}

func TestUserService_List(t *testing.T) {
	svc, f := newUserFixture(t)
	f.register(t, "bob", "abc123", "")
	f.register(t, "alice", "abc123", "")

	views, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "alice", views[0].Username)
	assert.Equal(t, "bob", views[1].Username)
}
