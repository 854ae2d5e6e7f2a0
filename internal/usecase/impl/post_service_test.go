package impl

import (
	"context"
	"testing"

	domainerrors "roster/internal/domain/errors"
	"roster/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostService_CreatePost_Success(t *testing.T) {
	fx := createTestServices(t)
	ctx := context.Background()
	author := fx.signUp(t, "Hans Meier", "example@test.org", "foobar23")

	post, err := fx.postService.CreatePost(ctx, author.Identity, &usecase.CreatePostInput{Content: "hello"})
	require.NoError(t, err)
	assert.Equal(t, author.Identity.ID, post.AccountID)
	assert.Equal(t, "hello", post.Content)
}

func TestPostService_CreatePost_RequiresAuthentication(t *testing.T) {
	fx := createTestServices(t)

	_, err := fx.postService.CreatePost(context.Background(), nil, &usecase.CreatePostInput{Content: "hello"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionInvalid))
}

func TestPostService_CreatePost_EmptyContent(t *testing.T) {
	fx := createTestServices(t)
	author := fx.signUp(t, "Hans Meier", "example@test.org", "foobar23")

	_, err := fx.postService.CreatePost(context.Background(), author.Identity, &usecase.CreatePostInput{Content: ""})
	require.Error(t, err)

	var validationErr *domainerrors.ValidationError
	assert.True(t, errors.As(err, &validationErr))
}

func TestPostService_ListPosts_ReturnsOwned(t *testing.T) {
	fx := createTestServices(t)
	ctx := context.Background()
	author := fx.signUp(t, "Author User", "author@test.org", "foobar23")
	viewer := fx.signUp(t, "Viewer User", "viewer@test.org", "foobar23")

	_, err := fx.postService.CreatePost(ctx, author.Identity, &usecase.CreatePostInput{Content: "first"})
	require.NoError(t, err)

	posts, err := fx.postService.ListPosts(ctx, viewer.Identity, author.Identity.ID)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "first", posts[0].Content)
}

func TestPostService_ListPosts_RequiresAuthentication(t *testing.T) {
	fx := createTestServices(t)
	author := fx.signUp(t, "Author User", "author@test.org", "foobar23")

	_, err := fx.postService.ListPosts(context.Background(), nil, author.Identity.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionInvalid))
}
