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

type UserRegistrar interface {
	Register(ctx context.Context, user *model.RegisterUserDTO) (*model.User, error)
}

type RegisterHandler struct {
	accountService UserRegistrar
	validate       *validator.Validate
	log            *logger.Logger
	metrics        metrics.MetricsProvider
}

func NewRegisterHandler(accountService UserRegistrar, validate *validator.Validate, log *logger.Logger, provider metrics.MetricsProvider) *RegisterHandler {
	return &RegisterHandler{
		accountService: accountService,
		validate:       validate,
		log:            log,
		metrics:        provider,
	}
}

type registerRequest struct {
	FirstName       string `json:"first_name" validate:"required"`
	LastName        string `json:"last_name" validate:"required"`
	Email           string `json:"email" validate:"required,contains=@"`
	Username        string `json:"username" validate:"required"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

func (h *RegisterHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		h.log.Debug("Register request validation failed", slog.String("error", err.Error()))
		h.metrics.IncrementAccountOperations("register", false)
		response.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request"})
		return
	}

	dto := &model.RegisterUserDTO{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Username:  req.Username,
		Password:  req.Password,
	}

	user, err := h.accountService.Register(r.Context(), dto)
	if err != nil {
		h.metrics.IncrementAccountOperations("register", false)
		response.Error(w, err)
		return
	}

	h.metrics.IncrementAccountOperations("register", true)
	response.JSON(w, http.StatusCreated, user)
}
