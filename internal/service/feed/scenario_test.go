package feed_service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"social-feed-service/internal/custom_errors"
	"social-feed-service/internal/logger"
	"social-feed-service/internal/model"
	"social-feed-service/internal/repository/memory"
	post_memory "social-feed-service/internal/repository/post/memory"
	user_memory "social-feed-service/internal/repository/user/memory"
	account_service "social-feed-service/internal/service/account"
	feed_service "social-feed-service/internal/service/feed"
)

// End-to-end walk over the in-memory stores: register, login, post, and a
// foreign caller bouncing off the ownership gate.
func TestAccountAndFeedScenario(t *testing.T) {
	ctx := context.Background()
	log := logger.New("test")

	userRepo := user_memory.NewUserRepository(log)
	postRepo := post_memory.NewPostRepository(log)
	uow := memory.NewMemoryUOW(userRepo, postRepo)

	accounts := account_service.NewAccountService(userRepo, uow, log)
	feed := feed_service.NewFeedService(postRepo, uow, log)

	registered, err := accounts.Register(ctx, &model.RegisterUserDTO{
		FirstName: "Alice",
		LastName:  "Smith",
		Email:     "a@x.com",
		Username:  "alice",
		Password:  "password1",
	})
	require.NoError(t, err)
	require.NotNil(t, registered)

	loggedIn, err := accounts.Login(ctx, "alice", "password1")
	require.NoError(t, err)
	assert.Equal(t, registered.Username, loggedIn.Username)
	assert.Equal(t, registered.Email, loggedIn.Email)
	assert.Equal(t, registered.FirstName, loggedIn.FirstName)
	assert.Equal(t, registered.LastName, loggedIn.LastName)

	_, err = accounts.Login(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, custom_errors.ErrInvalidCredentials)

	_, err = accounts.Register(ctx, &model.RegisterUserDTO{
		FirstName: "Alice",
		LastName:  "Smith",
		Email:     "a2@x.com",
		Username:  "alice",
		Password:  "password2",
	})
	assert.ErrorIs(t, err, custom_errors.ErrUsernameExists)

	post, err := feed.CreatePost(ctx, &model.CreatePostDTO{AuthorUsername: "alice", Content: "hi"})
	require.NoError(t, err)
	require.NotNil(t, post)

	_, err = feed.UpdatePost(ctx, "bob", post.ID, &model.UpdatePostDTO{Content: strPtr("hacked")})
	assert.ErrorIs(t, err, custom_errors.ErrForbidden)

	posts, err := feed.ListFeed(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "hi", posts[0].Content)
	assert.Equal(t, "alice", posts[0].AuthorUsername)

	updated, err := feed.UpdatePost(ctx, "alice", post.ID, &model.UpdatePostDTO{Content: strPtr("hello again")})
	require.NoError(t, err)
	assert.Equal(t, post.ID, updated.ID)
	assert.Equal(t, "hello again", updated.Content)
	assert.Equal(t, post.CreatedAt.Time, updated.CreatedAt.Time)

	err = feed.DeletePost(ctx, "alice", post.ID)
	require.NoError(t, err)

	posts, err = feed.ListFeed(ctx)
	require.NoError(t, err)
	assert.Empty(t, posts)

	err = feed.DeletePost(ctx, "alice", post.ID)
	assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)
}

func strPtr(s string) *string {
	return &s
}
