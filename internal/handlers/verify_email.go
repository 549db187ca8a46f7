package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bloodaid/blood-donation-backend/internal/logger"
	"github.com/bloodaid/blood-donation-backend/internal/services"
)

// EmailVerifier defines the interface for the degenerate verification
// step.
type EmailVerifier interface {
	VerifyEmail(ctx context.Context, email string) error
}

// VerifyEmailRequest represents the JSON body for email verification.
// swagger:model VerifyEmailRequest
type VerifyEmailRequest struct {
	// Email
	// required: true
	// example: donor@example.com
	Email string `json:"email"`
}

// NewVerifyEmailHandler returns an HTTP handler that flips the donor's
// verification flag. No email is actually sent anywhere; this endpoint
// only satisfies the verification-flag contract.
// @Summary Verify donor email
// @Description Marks a donor as verified. One-way; fails if already verified.
// @Tags donors
// @Accept json
// @Produce json
// @Param verifyRequest body handlers.VerifyEmailRequest true "Verification request"
// @Success 200 {object} handlers.MessageResponse "Email verified successfully"
// @Failure 400 {object} handlers.ErrorResponse "Donor already verified"
// @Failure 404 {object} handlers.ErrorResponse "Donor not found"
// @Router /verify-email [post]
func NewVerifyEmailHandler(svc EmailVerifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req VerifyEmailRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		err := svc.VerifyEmail(r.Context(), req.Email)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrDonorNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Donor not found"})
			case errors.Is(err, services.ErrAlreadyVerified):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Donor already verified"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MessageResponse{Message: "Email verified successfully"})
	}
}
