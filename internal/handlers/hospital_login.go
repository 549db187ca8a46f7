package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bloodaid/blood-donation-backend/internal/logger"
	"github.com/bloodaid/blood-donation-backend/internal/services"
)

// HospitalLoginer defines the interface that the hospital service must
// implement for login.
type HospitalLoginer interface {
	Login(ctx context.Context, officialEmail, password string) (string, error)
}

// HospitalLoginRequest represents the JSON body for hospital login.
// swagger:model HospitalLoginRequest
type HospitalLoginRequest struct {
	// Official email
	// required: true
	// example: admin@generalhospital.ng
	OfficialEmail string `json:"officialEmail"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password"`
}

// NewHospitalLoginHandler returns an HTTP handler for hospital login.
// @Summary Hospital login
// @Description Authenticate a hospital by official email and password and return a bearer token.
// @Tags hospitals
// @Accept json
// @Produce json
// @Param loginRequest body handlers.HospitalLoginRequest true "Hospital login request"
// @Success 200 {object} handlers.TokenResponse "Bearer token returned"
// @Failure 401 {object} handlers.ErrorResponse "Incorrect password"
// @Failure 404 {object} handlers.ErrorResponse "Hospital not found"
// @Router /hospitals/auth/login [post]
func NewHospitalLoginHandler(svc HospitalLoginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req HospitalLoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		token, err := svc.Login(r.Context(), req.OfficialEmail, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrHospitalNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Hospital not found"})
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
