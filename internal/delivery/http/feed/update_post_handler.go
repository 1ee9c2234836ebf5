package feed_http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"social-feed-service/internal/delivery/http/response"
	"social-feed-service/internal/logger"
	"social-feed-service/internal/metrics"
	"social-feed-service/internal/model"
)

type PostUpdater interface {
	UpdatePost(ctx context.Context, callerUsername string, id int64, post *model.UpdatePostDTO) (*model.Post, error)
}

type UpdatePostHandler struct {
	feedService PostUpdater
	validate    *validator.Validate
	log         *logger.Logger
	metrics     metrics.MetricsProvider
}

func NewUpdatePostHandler(feedService PostUpdater, validate *validator.Validate, log *logger.Logger, provider metrics.MetricsProvider) *UpdatePostHandler {
	return &UpdatePostHandler{
		feedService: feedService,
		validate:    validate,
		log:         log,
		metrics:     provider,
	}
}

type updatePostRequest struct {
	CallerUsername string `validate:"required"`
	PostID         int64  `validate:"required,gt=0"`
	Content        string `json:"content" validate:"required"`
}

func (h *UpdatePostHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid post id"})
		return
	}

	var req updatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	req.CallerUsername = r.Header.Get(CallerHeader)
	req.PostID = id

	if err := h.validate.Struct(&req); err != nil {
		h.log.Debug("Update post request validation failed", slog.String("error", err.Error()))
		h.metrics.IncrementPostOperations("update", false)
		response.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request"})
		return
	}

	dto := &model.UpdatePostDTO{Content: &req.Content}

	post, err := h.feedService.UpdatePost(r.Context(), req.CallerUsername, req.PostID, dto)
	if err != nil {
		h.metrics.IncrementPostOperations("update", false)
		response.Error(w, err)
		return
	}

	h.metrics.IncrementPostOperations("update", true)
	response.JSON(w, http.StatusOK, post)
}
