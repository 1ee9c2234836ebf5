package feed_service

import (
	"context"

	"social-feed-service/internal/model"
)

//go:generate mockery --name Service --dir . --output ../../../mocks/feed --outpkg feed_mock --filename FeedService.go
type Service interface {
	ListFeed(ctx context.Context) ([]*model.Post, error)
	ListByAuthor(ctx context.Context, authorUsername string) ([]*model.Post, error)
	CreatePost(ctx context.Context, post *model.CreatePostDTO) (*model.Post, error)
	UpdatePost(ctx context.Context, callerUsername string, id int64, post *model.UpdatePostDTO) (*model.Post, error)
	DeletePost(ctx context.Context, callerUsername string, id int64) error
}
