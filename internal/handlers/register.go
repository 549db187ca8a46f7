package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bloodaid/blood-donation-backend/internal/logger"
	"github.com/bloodaid/blood-donation-backend/internal/models"
	"github.com/bloodaid/blood-donation-backend/internal/services"
)

// DonorRegisterer defines the interface that the donor service must
// implement for registration.
type DonorRegisterer interface {
	Register(ctx context.Context, reg models.DonorRegistration) error
}

// NewDonorRegisterHandler returns an HTTP handler for donor registration.
// @Summary Register a new donor
// @Description Creates a donor account with the full donor field set. Requires matching password confirmation and a unique email. Password is hashed before storing; no token is issued.
// @Tags donors
// @Accept json
// @Produce json
// @Param registration body models.DonorRegistration true "Donor registration request"
// @Success 201 {object} handlers.MessageResponse "Registration successful"
// @Failure 400 {object} handlers.ErrorResponse "Missing fields, password mismatch, or email already registered"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /register [post]
func NewDonorRegisterHandler(svc DonorRegisterer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var reg models.DonorRegistration

		if err := json.NewDecoder(r.Body).Decode(&reg); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		err := svc.Register(r.Context(), reg)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrValidation):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
			case errors.Is(err, services.ErrDonorAlreadyExists):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Email already registered"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(MessageResponse{Message: "Registration successful"})
	}
}
