package usecase

import (
	"context"
	"strings"
	"testing"

	"blog-platform/pkg/apperror"
	"blog-platform/pkg/auth"
	"blog-platform/pkg/queue"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddComment_UpdatesCount(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.user(t, "Alice")
	bob := f.user(t, "Bobby")
	post := f.publish(t, alice, "Discussed post")

	comment, err := f.comments.AddComment(ctx, bob, post.ID, "  Nice read!  ")
	require.NoError(t, err)
	assert.Equal(t, "Nice read!", comment.Content)
	assert.Equal(t, "Bobby", comment.Author.Name)
	assert.Equal(t, 1, f.reload(t, post.ID).CommentsCount)
	assert.Equal(t, []string{queue.RoutingPostPublished, queue.RoutingCommentCreated}, f.events.published())

	require.NoError(t, f.comments.DeleteComment(ctx, bob, comment.ID))
	assert.Equal(t, 0, f.reload(t, post.ID).CommentsCount)
	assert.Equal(t, 0, f.store.CommentsFor(post.ID))
}

func TestAddComment_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.user(t, "Alice")
	post := f.publish(t, alice, "Discussed post")

	_, err := f.comments.AddComment(ctx, alice, post.ID, "   ")
	assertKind(t, err, apperror.KindValidation)
	_, err = f.comments.AddComment(ctx, alice, post.ID, strings.Repeat("x", 501))
	assertKind(t, err, apperror.KindValidation)

	_, err = f.comments.AddComment(ctx, alice, post.ID, strings.Repeat("x", 500))
	require.NoError(t, err)
	assert.Equal(t, 1, f.reload(t, post.ID).CommentsCount)
}

func TestAddComment_MissingPost(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.user(t, "Alice")
	bob := f.user(t, "Bobby")
	draft := f.draft(t, alice, "Hidden draft")

	_, err := f.comments.AddComment(ctx, bob, "6a1f9a3e-0000-4000-8000-000000000000", "hello")
	assertKind(t, err, apperror.KindNotFound)
	_, err = f.comments.AddComment(ctx, bob, draft.ID, "hello")
	assertKind(t, err, apperror.KindNotFound)

	_, err = f.comments.AddComment(ctx, alice, draft.ID, "note to self")
	require.NoError(t, err)
}

func TestUpdateComment_OwnershipAndContent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.user(t, "Alice")
	bob := f.user(t, "Bobby")
	post := f.publish(t, alice, "Discussed post")

	comment, err := f.comments.AddComment(ctx, bob, post.ID, "first take")
	require.NoError(t, err)

	_, err = f.comments.UpdateComment(ctx, alice, comment.ID, "edited by someone else")
	assertKind(t, err, apperror.KindForbidden)
	err = f.comments.DeleteComment(ctx, alice, comment.ID)
	assertKind(t, err, apperror.KindForbidden)
	assert.Equal(t, 1, f.store.CommentsFor(post.ID))

	_, err = f.comments.UpdateComment(ctx, bob, comment.ID, "")
	assertKind(t, err, apperror.KindValidation)

	updated, err := f.comments.UpdateComment(ctx, bob, comment.ID, "second take")
	require.NoError(t, err)
	assert.Equal(t, "second take", updated.Content)
	assert.True(t, updated.UpdatedAt.After(comment.CreatedAt))

	comments, err := f.comments.ListComments(ctx, auth.Anonymous(), post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "second take", comments[0].Content)
	assert.Equal(t, 1, f.reload(t, post.ID).CommentsCount)
}

func TestComment_UnknownID(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.user(t, "Alice")

	_, err := f.comments.UpdateComment(ctx, alice, "nope", "text")
	assertKind(t, err, apperror.KindNotFound)
	err = f.comments.DeleteComment(ctx, alice, "6a1f9a3e-0000-4000-8000-000000000000")
	assertKind(t, err, apperror.KindNotFound)
}

func TestListComments_NewestFirst(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.user(t, "Alice")
	post := f.publish(t, alice, "Discussed post")

	for _, body := range []string{"one", "two", "three"} {
		_, err := f.comments.AddComment(ctx, alice, post.ID, body)
		require.NoError(t, err)
	}

	comments, err := f.comments.ListComments(ctx, auth.Anonymous(), post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 3)
	assert.Equal(t, "three", comments[0].Content)
	assert.Equal(t, "one", comments[2].Content)
	assert.Equal(t, "Alice", comments[0].Author.Name)
	assert.Empty(t, comments[0].Author.Email)
}
