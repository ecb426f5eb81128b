package service

import (
	"Folio/models"
	"Folio/types"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewerKey(t *testing.T) {
	assert.Equal(t, "user:7", ViewerKey(&types.Actor{ID: 7}, "10.0.0.1"))
	assert.Equal(t, "ip:10.0.0.1", ViewerKey(nil, "10.0.0.1"))
}

func TestViewService_Dedup(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	author := env.createUser(t, "author", models.RoleUser)
	reader := env.createUser(t, "reader", models.RoleUser)
	book := env.createBook(t, author, "Dune")
	review := env.createReview(t, author, book.ID, 5)

	res, err := env.View.RecordView(ctx, review.ID, nil, "10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, &types.ViewResult{Views: 1, Counted: true}, res)

	res, err = env.View.RecordView(ctx, review.ID, nil, "10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, &types.ViewResult{Views: 1, Counted: false}, res)

	res, err = env.View.RecordView(ctx, review.ID, nil, "10.0.0.2")
	require.NoError(t, err)
	assert.Equal(t, &types.ViewResult{Views: 2, Counted: true}, res)

	// 登录用户按 id 去重，与 IP 无关
	res, err = env.View.RecordView(ctx, review.ID, reader, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, res.Counted)
	res, err = env.View.RecordView(ctx, review.ID, reader, "10.0.0.9")
	require.NoError(t, err)
	assert.False(t, res.Counted)
	assert.EqualValues(t, 3, res.Views)

	env.now = env.now.Add(31 * time.Minute)
	res, err = env.View.RecordView(ctx, review.ID, nil, "10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, &types.ViewResult{Views: 4, Counted: true}, res)
}

func TestViewService_HiddenReview(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	author := env.createUser(t, "author", models.RoleUser)
	book := env.createBook(t, author, "Dune")
	review := env.createReview(t, author, book.ID, 5)
	require.NoError(t, env.Review.Delete(ctx, author, review.ID))

	_, err := env.View.RecordView(ctx, review.ID, nil, "10.0.0.1")
	assert.ErrorIs(t, err, ErrReviewNotFound)
}
