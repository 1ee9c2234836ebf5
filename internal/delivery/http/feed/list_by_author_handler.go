package feed_http

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"social-feed-service/internal/delivery/http/response"
	"social-feed-service/internal/logger"
	"social-feed-service/internal/model"
)

type AuthorFeedLister interface {
	ListByAuthor(ctx context.Context, authorUsername string) ([]*model.Post, error)
}

type ListByAuthorHandler struct {
	feedService AuthorFeedLister
	log         *logger.Logger
}

func NewListByAuthorHandler(feedService AuthorFeedLister, log *logger.Logger) *ListByAuthorHandler {
	return &ListByAuthorHandler{
		feedService: feedService,
		log:         log,
	}
}

func (h *ListByAuthorHandler) ListByAuthor(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]
	if username == "" {
		response.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request"})
		return
	}

	posts, err := h.feedService.ListByAuthor(r.Context(), username)
	if err != nil {
		response.Error(w, err)
		return
	}

	if posts == nil {
		posts = []*model.Post{}
	}
	response.JSON(w, http.StatusOK, posts)
}
