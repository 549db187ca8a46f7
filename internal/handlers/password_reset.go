package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bloodaid/blood-donation-backend/internal/logger"
	"github.com/bloodaid/blood-donation-backend/internal/services"
)

// PasswordResetter defines the reset-flow interface of the donor
// service.
type PasswordResetter interface {
	RequestPasswordReset(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, email, code, newPassword string) error
}

// RequestPasswordResetRequest represents the JSON body for requesting a
// reset code.
// swagger:model RequestPasswordResetRequest
type RequestPasswordResetRequest struct {
	// Email
	// required: true
	// example: donor@example.com
	Email string `json:"email"`
}

// RequestPasswordResetResponse carries the generated code. The HTTP
// response is the delivery channel: there is no email delivery in this
// system, which makes the code visible to whoever asked for it.
// swagger:model RequestPasswordResetResponse
type RequestPasswordResetResponse struct {
	// Success message
	// example: Password reset code generated
	Message string `json:"message"`

	// One-time 6-digit code
	// example: 482913
	ResetCode string `json:"resetCode"`
}

// ResetPasswordRequest represents the JSON body for consuming a reset
// code.
// swagger:model ResetPasswordRequest
type ResetPasswordRequest struct {
	// Email
	// required: true
	// example: donor@example.com
	Email string `json:"email"`

	// Code issued by request-password-reset
	// required: true
	// example: 482913
	Code string `json:"code"`

	// New password
	// required: true
	// example: newsecret123
	NewPassword string `json:"newPassword"`
}

// NewRequestPasswordResetHandler returns an HTTP handler that issues a
// one-time reset code with a bounded TTL.
// @Summary Request a password reset code
// @Description Generates a 6-digit single-use code with a short TTL and returns it in the response body.
// @Tags donors
// @Accept json
// @Produce json
// @Param resetRequest body handlers.RequestPasswordResetRequest true "Reset code request"
// @Success 200 {object} handlers.RequestPasswordResetResponse "Code generated"
// @Failure 404 {object} handlers.ErrorResponse "Donor not found"
// @Router /request-password-reset [post]
func NewRequestPasswordResetHandler(svc PasswordResetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RequestPasswordResetRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		code, err := svc.RequestPasswordReset(r.Context(), req.Email)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrDonorNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Donor not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(RequestPasswordResetResponse{
			Message:   "Password reset code generated",
			ResetCode: code,
		})
	}
}

// NewResetPasswordHandler returns an HTTP handler that consumes a reset
// code and replaces the password.
// @Summary Reset password
// @Description Consumes a one-time reset code and stores a new password hash. The code is invalidated on success.
// @Tags donors
// @Accept json
// @Produce json
// @Param resetPassword body handlers.ResetPasswordRequest true "Password reset request"
// @Success 200 {object} handlers.MessageResponse "Password reset successful"
// @Failure 400 {object} handlers.ErrorResponse "Invalid email or code"
// @Router /reset-password [post]
func NewResetPasswordHandler(svc PasswordResetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ResetPasswordRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		err := svc.ResetPassword(r.Context(), req.Email, req.Code, req.NewPassword)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidResetCode):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid email or code"})
			case errors.Is(err, services.ErrValidation):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MessageResponse{Message: "Password reset successful"})
	}
}
