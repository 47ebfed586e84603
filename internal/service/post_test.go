package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialsphere/internal/domain"
)

func TestCreatePostValidation(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	a := e.register(t, "alice")

	_, err := e.posts.Create(ctx, a.ID, "", "")
	require.Error(t, err)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))

	_, err = e.posts.Create(ctx, a.ID, "   \n\t ", "")
	require.Error(t, err)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))

	_, err = e.posts.Create(ctx, a.ID, strings.Repeat("x", domain.MaxPostTextLen+1), "")
	require.Error(t, err)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))

	// Exactly at the limit is fine, and multi-byte runes count as one.
	post, err := e.posts.Create(ctx, a.ID, strings.Repeat("あ", domain.MaxPostTextLen), "")
	require.NoError(t, err)
	assert.NotEmpty(t, post.ID)
}

func TestCreatePostTrimsText(t *testing.T) {
	e := newEnv(t)
	a := e.register(t, "alice")

	post := e.post(t, a.ID, "  hello world  ")
	assert.Equal(t, "hello world", post.Text)
	assert.Equal(t, a.ID, post.UserID)
}

func TestGetPostView(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	a := e.register(t, "alice")
	post := e.post(t, a.ID, "hello")

	view, err := e.posts.Get(ctx, a.ID, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "hello", view.Text)
	assert.Equal(t, "alice", view.Author.Name)
	assert.Zero(t, view.LikeCount)
	assert.Empty(t, view.Comments)

	_, err = e.posts.Get(ctx, a.ID, "no-such-post")
	require.ErrorIs(t, err, domain.ErrPostNotFound)
}

func TestDeletePostAuthorization(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	a := e.register(t, "alice")
	b := e.register(t, "bob")
	post := e.post(t, a.ID, "hello")

	err := e.posts.Delete(ctx, post.ID, b.ID)
	require.ErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, domain.KindForbidden, domain.KindOf(err))

	// Still retrievable after the forbidden attempt.
	_, err = e.posts.Get(ctx, a.ID, post.ID)
	require.NoError(t, err)

	require.NoError(t, e.posts.Delete(ctx, post.ID, a.ID))
	_, err = e.posts.Get(ctx, a.ID, post.ID)
	require.ErrorIs(t, err, domain.ErrPostNotFound)
}

func TestDeletePostRemovesImage(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	a := e.register(t, "alice")

	post, err := e.posts.Create(ctx, a.ID, "with image", "/media/pic.png")
	require.NoError(t, err)

	require.NoError(t, e.posts.Delete(ctx, post.ID, a.ID))
	assert.Equal(t, []string{"/media/pic.png"}, e.media.deleted)
}

func TestDeletePostSurvivesMediaFailure(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	e.media.failDelete = true
	a := e.register(t, "alice")

	post, err := e.posts.Create(ctx, a.ID, "with image", "/media/pic.png")
	require.NoError(t, err)

	// Media backend down: the delete still succeeds, the failure is only
	// logged.
	require.NoError(t, e.posts.Delete(ctx, post.ID, a.ID))
	_, err = e.posts.Get(ctx, a.ID, post.ID)
	require.ErrorIs(t, err, domain.ErrPostNotFound)
}

func TestDeleteMissingPost(t *testing.T) {
	e := newEnv(t)
	a := e.register(t, "alice")

	err := e.posts.Delete(context.Background(), "no-such-post", a.ID)
	require.ErrorIs(t, err, domain.ErrPostNotFound)
}
