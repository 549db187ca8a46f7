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

// HospitalRegisterer defines the interface that the hospital service
// must implement for registration.
type HospitalRegisterer interface {
	Register(ctx context.Context, reg models.HospitalRegistration) error
}

// NewHospitalRegisterHandler returns an HTTP handler for hospital
// registration.
// @Summary Register a new hospital
// @Description Creates a hospital account. Official email and registration number must be unique. Password is hashed before storing.
// @Tags hospitals
// @Accept json
// @Produce json
// @Param registration body models.HospitalRegistration true "Hospital registration request"
// @Success 201 {object} handlers.MessageResponse "Registration successful"
// @Failure 400 {object} handlers.ErrorResponse "Missing fields, password mismatch, or duplicate email/registration number"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /hospitals/auth/register [post]
func NewHospitalRegisterHandler(svc HospitalRegisterer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var reg models.HospitalRegistration

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
			case errors.Is(err, services.ErrHospitalAlreadyExists):
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
