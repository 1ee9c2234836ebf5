package feed_http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"social-feed-service/internal/delivery/http/response"
	"social-feed-service/internal/logger"
	"social-feed-service/internal/metrics"
	"social-feed-service/internal/model"
)

type PostCreator interface {
	CreatePost(ctx context.Context, post *model.CreatePostDTO) (*model.Post, error)
}

type CreatePostHandler struct {
	feedService PostCreator
	validate    *validator.Validate
	log         *logger.Logger
	metrics     metrics.MetricsProvider
}

func NewCreatePostHandler(feedService PostCreator, validate *validator.Validate, log *logger.Logger, provider metrics.MetricsProvider) *CreatePostHandler {
	return &CreatePostHandler{
		feedService: feedService,
		validate:    validate,
		log:         log,
		metrics:     provider,
	}
}

type createPostRequest struct {
	CallerUsername string `validate:"required"`
	Content        string `json:"content" validate:"required"`
}

func (h *CreatePostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req createPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	req.CallerUsername = r.Header.Get(CallerHeader)

	if err := h.validate.Struct(&req); err != nil {
		h.log.Debug("Create post request validation failed", slog.String("error", err.Error()))
		h.metrics.IncrementPostOperations("create", false)
		response.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request"})
		return
	}

	dto := &model.CreatePostDTO{
		AuthorUsername: req.CallerUsername,
		Content:        req.Content,
	}

	post, err := h.feedService.CreatePost(r.Context(), dto)
	if err != nil {
		h.metrics.IncrementPostOperations("create", false)
		response.Error(w, err)
		return
	}

	h.metrics.IncrementPostOperations("create", true)
	response.JSON(w, http.StatusCreated, post)
}
