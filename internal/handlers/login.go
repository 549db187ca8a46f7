package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bloodaid/blood-donation-backend/internal/logger"
	"github.com/bloodaid/blood-donation-backend/internal/services"
)

// DonorLoginer defines the interface that the donor service must
// implement for login.
type DonorLoginer interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// DonorLoginRequest represents the JSON body for donor login.
// swagger:model DonorLoginRequest
type DonorLoginRequest struct {
	// Email
	// required: true
	// example: donor@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password"`
}

// NewDonorLoginHandler returns an HTTP handler for donor login.
// @Summary Donor login
// @Description Authenticate a donor by email and password and return a bearer token.
// @Tags donors
// @Accept json
// @Produce json
// @Param loginRequest body handlers.DonorLoginRequest true "Donor login request"
// @Success 200 {object} handlers.TokenResponse "Bearer token returned"
// @Failure 401 {object} handlers.ErrorResponse "Incorrect password"
// @Failure 404 {object} handlers.ErrorResponse "Donor not found"
// @Router /login [post]
func NewDonorLoginHandler(svc DonorLoginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req DonorLoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		token, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrDonorNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Donor not found"})
			case errors.Is(err, services.ErrInvalidCredentials):
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Incorrect password"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(TokenResponse{Token: token})
	}
}
