package feed_http

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"social-feed-service/internal/delivery/http/response"
	"social-feed-service/internal/logger"
	"social-feed-service/internal/metrics"
)

type PostDeleter interface {
	DeletePost(ctx context.Context, callerUsername string, id int64) error
}

type DeletePostHandler struct {
	feedService PostDeleter
	validate    *validator.Validate
	log         *logger.Logger
	metrics     metrics.MetricsProvider
}

func NewDeletePostHandler(feedService PostDeleter, validate *validator.Validate, log *logger.Logger, provider metrics.MetricsProvider) *DeletePostHandler {
	return &DeletePostHandler{
		feedService: feedService,
		validate:    validate,
		log:         log,
		metrics:     provider,
	}
}

type deletePostRequest struct {
	CallerUsername string `validate:"required"`
	PostID         int64  `validate:"required,gt=0"`
}

func (h *DeletePostHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid post id"})
		return
	}

	req := deletePostRequest{
		CallerUsername: r.Header.Get(CallerHeader),
		PostID:         id,
	}

	if err := h.validate.Struct(&req); err != nil {
		h.log.Debug("Delete post request validation failed", slog.String("error", err.Error()))
		h.metrics.IncrementPostOperations("delete", false)
		response.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request"})
		return
	}

	if err := h.feedService.DeletePost(r.Context(), req.CallerUsername, req.PostID); err != nil {
		h.metrics.IncrementPostOperations("delete", false)
		response.Error(w, err)
		return
	}

	h.metrics.IncrementPostOperations("delete", true)
	w.WriteHeader(http.StatusNoContent)
}
