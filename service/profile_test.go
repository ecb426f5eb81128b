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
	"gorm.io/datatypes"
)

func TestResolveVisibility(t *testing.T) {
	p := models.PrivacySettings{Avatar: false, Signature: true, Stats: false, History: true}

	assert.Equal(t, types.Visibility{Avatar: true, Signature: true, Stats: true, History: true}, ResolveVisibility(p, true))
	assert.Equal(t, types.Visibility{Avatar: false, Signature: true, Stats: false, History: true}, ResolveVisibility(p, false))
	assert.Equal(t, types.Visibility{Avatar: true, Signature: true, Stats: true, History: false}, ResolveVisibility(models.DefaultPrivacy(), false))
}

func TestProfileService_Public(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice", models.RoleUser)
	bob := env.createUser(t, "bob", models.RoleUser)
	admin := env.createUser(t, "admin", models.RoleAdmin)
	book := env.createBook(t, alice, "Dune")
	review := env.createReview(t, alice, book.ID, 5)
	_, err := env.Comment.Create(ctx, alice, review.ID, "self note")
	require.NoError(t, err)
	_, err = env.Like.Like(ctx, bob, review.ID)
	require.NoError(t, err)

	// 默认隐私：统计可见，历史不可见
	profile, err := env.Profile.Public(ctx, alice.ID, bob)
	require.NoError(t, err)
	assert.False(t, profile.IsOwner)
	require.NotNil(t, profile.Stats)
	assert.EqualValues(t, 1, profile.Stats.TotalReviews)
	assert.EqualValues(t, 1, profile.Stats.TotalLikesReceived)
	assert.EqualValues(t, 1, profile.Stats.CommentsCount)
	assert.Nil(t, profile.History)

	own, err := env.Profile.Public(ctx, alice.ID, alice)
	require.NoError(t, err)
	assert.True(t, own.IsOwner)
	require.NotNil(t, own.History)
	assert.Len(t, own.History.Reviews, 1)
	assert.Len(t, own.History.Comments, 1)

	privacy := models.PrivacySettings{Avatar: false, Signature: false, Stats: false, History: false}
	require.NoError(t, env.users.Update(ctx, alice.ID, map[string]any{"privacy": datatypes.NewJSONType(privacy)}))
	hidden, err := env.Profile.Public(ctx, alice.ID, nil)
	require.NoError(t, err)
	assert.Nil(t, hidden.Stats)
	assert.Nil(t, hidden.History)
	assert.Equal(t, "alice", hidden.Username)

	_, err = env.Admin.SetUserStatus(ctx, admin, alice.ID, models.UserStatusBanned)
	require.NoError(t, err)
	_, err = env.Profile.Public(ctx, alice.ID, bob)
	requireCode(t, err, http.StatusNotFound, response.CodeNotFound)
	_, err = env.Profile.Public(ctx, alice.ID, admin)
	require.NoError(t, err)
}
