package feed_http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"social-feed-service/internal/logger"
	"social-feed-service/internal/metrics"
	feed_service "social-feed-service/internal/service/feed"
)

// CallerHeader carries the authenticated username, the sole identity token
// handed over after login.
const CallerHeader = "X-Username"

var validate = validator.New()

type FeedHTTPService struct {
	feedService         feed_service.Service
	log                 *logger.Logger
	listFeedHandler     *ListFeedHandler
	listByAuthorHandler *ListByAuthorHandler
	createPostHandler   *CreatePostHandler
	updatePostHandler   *UpdatePostHandler
	deletePostHandler   *DeletePostHandler
}

func NewFeedHTTPService(feedService feed_service.Service, log *logger.Logger, provider metrics.MetricsProvider) *FeedHTTPService {
	return &FeedHTTPService{
		feedService:         feedService,
		log:                 log,
		listFeedHandler:     NewListFeedHandler(feedService, log),
		listByAuthorHandler: NewListByAuthorHandler(feedService, log),
		createPostHandler:   NewCreatePostHandler(feedService, validate, log, provider),
		updatePostHandler:   NewUpdatePostHandler(feedService, validate, log, provider),
		deletePostHandler:   NewDeletePostHandler(feedService, validate, log, provider),
	}
}

func (s *FeedHTTPService) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/posts", s.listFeedHandler.ListFeed).Methods("GET")
	router.HandleFunc("/posts", s.createPostHandler.CreatePost).Methods("POST")
	router.HandleFunc("/posts/{id}", s.updatePostHandler.UpdatePost).Methods("PATCH")
	router.HandleFunc("/posts/{id}", s.deletePostHandler.DeletePost).Methods("DELETE")
	router.HandleFunc("/users/{username}/posts", s.listByAuthorHandler.ListByAuthor).Methods("GET")
}
