package account_http

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

type UserAuthenticator interface {
	Login(ctx context.Context, username, password string) (*model.User, error)
}

type LoginHandler struct {
	accountService UserAuthenticator
	validate       *validator.Validate
	log            *logger.Logger
	metrics        metrics.MetricsProvider
}

func NewLoginHandler(accountService UserAuthenticator, validate *validator.Validate, log *logger.Logger, provider metrics.MetricsProvider) *LoginHandler {
	return &LoginHandler{
		accountService: accountService,
		validate:       validate,
		log:            log,
		metrics:        provider,
	}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *LoginHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		h.log.Debug("Login request validation failed", slog.String("error", err.Error()))
		h.metrics.IncrementAccountOperations("login", false)
		response.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request"})
		return
	}

	user, err := h.accountService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		h.metrics.IncrementAccountOperations("login", false)
		response.Error(w, err)
		return
	}

	h.metrics.IncrementAccountOperations("login", true)
	response.JSON(w, http.StatusOK, user)
}
