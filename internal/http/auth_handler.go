package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/adarshshan/stationaryPro/internal/auth"
	"github.com/adarshshan/stationaryPro/internal/domain"
)

type AuthHandler struct {
	auth    *auth.Service
	timeout time.Duration
}

func NewAuthHandler(authService *auth.Service, timeout time.Duration) *AuthHandler {
	return &AuthHandler{
		auth:    authService,
		timeout: timeout,
	}
}

type LoginRequestDTO struct {
	Mobile string `json:"mobile"`
	OTP    string `json:"otp"`
}

type LoginResponseDTO struct {
	Message string      `json:"message"`
	User    domain.User `json:"user"`
	Token   string      `json:"token"`
}

// POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, token, err := h.auth.Login(ctx, req.Mobile, req.OTP)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCode):
			respondMessage(w, http.StatusBadRequest, "Invalid OTP")
		case errors.Is(err, auth.ErrServerMisconfigured):
			respondMessage(w, http.StatusInternalServerError, "Server configuration error: JWT secret not found.")
		default:
			respondMessage(w, http.StatusInternalServerError, "Login failed")
		}
		return
	}

	respondJSON(w, http.StatusOK, LoginResponseDTO{
		Message: "Login successful",
		User:    user,
		Token:   token,
	})
}
