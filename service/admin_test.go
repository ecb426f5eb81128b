package service

import (
	"Folio/models"
	"Folio/pkg/response"
	"Folio/types"
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminService_SetUserStatus(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	admin := env.createUser(t, "admin", models.RoleAdmin)
	alice := env.createUser(t, "alice", models.RoleUser)

	_, err := env.Admin.SetUserStatus(ctx, alice, admin.ID, models.UserStatusBanned)
	requireCode(t, err, http.StatusForbidden, response.CodeInsufficientPermissions)

	_, err = env.Admin.SetUserStatus(ctx, admin, admin.ID, models.UserStatusBanned)
	requireCode(t, err, http.StatusBadRequest, response.CodeInvalidInput)

	_, err = env.Admin.SetUserStatus(ctx, admin, alice.ID, "deleted")
	requireCode(t, err, http.StatusBadRequest, response.CodeInvalidInput)

	info, err := env.Admin.SetUserStatus(ctx, admin, alice.ID, models.UserStatusBanned)
	require.NoError(t, err)
	assert.Equal(t, models.UserStatusBanned, info.Status)
	assert.True(t, env.reloadUser(t, alice.ID).IsBanned())

	logs, err := env.Admin.ListLogs(ctx, admin, &types.LogListRequest{Action: models.ActionUserStatus})
	require.NoError(t, err)
	require.Len(t, logs.Items, 1)
	assert.Equal(t, alice.ID, logs.Items[0].TargetID)
	assert.Equal(t, "active -> banned", logs.Items[0].Detail)

	_, err = env.Admin.ListLogs(ctx, alice, &types.LogListRequest{})
	requireCode(t, err, http.StatusForbidden, response.CodeInsufficientPermissions)
}
