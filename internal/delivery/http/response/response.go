package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"social-feed-service/internal/custom_errors"
)

type errorBody struct {
	Error string `json:"error"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// Error maps service sentinels to HTTP statuses. Bodies stay opaque: auth
// failures get one generic message regardless of cause, and internal errors
// never echo details to the client.
func Error(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, custom_errors.ErrValidationFailed),
		errors.Is(err, custom_errors.ErrNoUpdateRows):
		JSON(w, http.StatusBadRequest, errorBody{Error: "invalid request"})
	case errors.Is(err, custom_errors.ErrInvalidCredentials):
		JSON(w, http.StatusUnauthorized, errorBody{Error: "invalid username or password"})
	case errors.Is(err, custom_errors.ErrForbidden):
		JSON(w, http.StatusForbidden, errorBody{Error: "operation not allowed"})
	case errors.Is(err, custom_errors.ErrUserNotFound):
		JSON(w, http.StatusNotFound, errorBody{Error: "user not found"})
	case errors.Is(err, custom_errors.ErrPostNotFound):
		JSON(w, http.StatusNotFound, errorBody{Error: "post not found"})
	case errors.Is(err, custom_errors.ErrUsernameExists):
		JSON(w, http.StatusConflict, errorBody{Error: "username already taken"})
	default:
		JSON(w, http.StatusInternalServerError, errorBody{Error: "internal server error"})
	}
}
