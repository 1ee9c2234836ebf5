package feed_http

import (
	"context"
	"net/http"

	"social-feed-service/internal/delivery/http/response"
	"social-feed-service/internal/logger"
	"social-feed-service/internal/model"
)

type FeedLister interface {
	ListFeed(ctx context.Context) ([]*model.Post, error)
}

type ListFeedHandler struct {
	feedService FeedLister
	log         *logger.Logger
}

func NewListFeedHandler(feedService FeedLister, log *logger.Logger) *ListFeedHandler {
	return &ListFeedHandler{
		feedService: feedService,
		log:         log,
	}
}

func (h *ListFeedHandler) ListFeed(w http.ResponseWriter, r *http.Request) {
	posts, err := h.feedService.ListFeed(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}

	if posts == nil {
		posts = []*model.Post{}
	}
	response.JSON(w, http.StatusOK, posts)
}
