package service

import (
	"Folio/models"
	"Folio/pkg/response"
	"Folio/types"
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookService_CreateWithTags(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.createUser(t, "alice", models.RoleUser)

	book, err := env.Book.Create(ctx, user, &types.CreateBookRequest{
		Title:  "Dune",
		Author: "Frank Herbert",
		ISBN:   "9780441013593",
		Tags:   []string{"Sci-Fi", " sci-fi ", "Classic", ""},
	})
	require.NoError(t, err)
	require.Len(t, book.Tags, 2)
	assert.Equal(t, user.ID, book.CreatedBy)

	_, err = env.Book.Create(ctx, user, &types.CreateBookRequest{
		Title: "Dune again", Author: "Frank Herbert", ISBN: "9780441013593",
	})
	requireCode(t, err, http.StatusConflict, response.CodeBookExists)

	// 空 ISBN 不占用唯一索引
	env.createBook(t, user, "No ISBN one")
	env.createBook(t, user, "No ISBN two")

	tooMany := make([]string, 11)
	for i := range tooMany {
		tooMany[i] = fmt.Sprintf("tag%d", i)
	}
	_, err = env.Book.Create(ctx, user, &types.CreateBookRequest{Title: "T", Author: "A", Tags: tooMany})
	requireCode(t, err, http.StatusBadRequest, response.CodeInvalidInput)

	_, err = env.Book.Create(ctx, nil, &types.CreateBookRequest{Title: "T", Author: "A"})
	requireCode(t, err, http.StatusUnauthorized, response.CodeNotAuthenticated)

	tags, err := (&TagService{TagDAO: env.Book.TagDAO}).Popular(ctx, 0)
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.EqualValues(t, 1, tags[0].UsageCount)
}

func TestBookService_ListAndUpdate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice", models.RoleUser)
	bob := env.createUser(t, "bob", models.RoleUser)
	dune := env.createBook(t, alice, "Dune", "scifi")
	emma := env.createBook(t, alice, "Emma", "classic")
	env.createReview(t, bob, emma.ID, 5)

	page, err := env.Book.List(ctx, &types.BookListRequest{Tag: "SCIFI"})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, dune.ID, page.Items[0].ID)

	page, err = env.Book.List(ctx, &types.BookListRequest{Q: "emm"})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, emma.ID, page.Items[0].ID)

	page, err = env.Book.List(ctx, &types.BookListRequest{Sort: "rating"})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, emma.ID, page.Items[0].ID)

	// 任意登录用户都可以修改书籍信息
	title := "Dune Messiah"
	tags := []string{"classic"}
	updated, err := env.Book.Update(ctx, bob, dune.ID, &types.UpdateBookRequest{Title: &title, Tags: &tags})
	require.NoError(t, err)
	assert.Equal(t, "Dune Messiah", updated.Title)
	require.Len(t, updated.Tags, 1)
	assert.Equal(t, "classic", updated.Tags[0].Name)

	popular, err := (&TagService{TagDAO: env.Book.TagDAO}).Popular(ctx, 10)
	require.NoError(t, err)
	require.Len(t, popular, 1)
	assert.Equal(t, "classic", popular[0].Name)
	assert.EqualValues(t, 2, popular[0].UsageCount)

	_, err = env.Book.Get(ctx, 404)
	requireCode(t, err, http.StatusNotFound, response.CodeNotFound)
}

func TestBookService_DeleteCascade(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	admin := env.createUser(t, "admin", models.RoleAdmin)
	alice := env.createUser(t, "alice", models.RoleUser)
	bob := env.createUser(t, "bob", models.RoleUser)
	dune := env.createBook(t, alice, "Dune", "scifi")
	emma := env.createBook(t, alice, "Emma")

	onDune := env.createReview(t, alice, dune.ID, 5)
	onEmma := env.createReview(t, alice, emma.ID, 4)
	_, err := env.Like.Like(ctx, bob, onDune.ID)
	require.NoError(t, err)
	_, err = env.Like.Like(ctx, bob, onEmma.ID)
	require.NoError(t, err)
	_, err = env.Comment.Create(ctx, bob, onDune.ID, "hi")
	require.NoError(t, err)

	assert.EqualValues(t, 2, env.reloadUser(t, alice.ID).TotalLikesReceived)

	err = env.Book.Delete(ctx, alice, dune.ID)
	requireCode(t, err, http.StatusForbidden, response.CodeInsufficientPermissions)

	require.NoError(t, env.Book.Delete(ctx, admin, dune.ID))

	_, err = env.Book.Get(ctx, dune.ID)
	requireCode(t, err, http.StatusNotFound, response.CodeNotFound)
	_, err = env.reviews.FindById(ctx, onDune.ID)
	assert.Error(t, err)

	u := env.reloadUser(t, alice.ID)
	assert.EqualValues(t, 1, u.TotalReviews)
	assert.EqualValues(t, 1, u.TotalLikesReceived)

	var comments int64
	require.NoError(t, env.db.Model(&models.ReviewComment{}).Count(&comments).Error)
	assert.Zero(t, comments)

	tags, err := (&TagService{TagDAO: env.Book.TagDAO}).Popular(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, tags)
}
