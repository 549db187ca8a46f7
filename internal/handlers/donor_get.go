package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/bloodaid/blood-donation-backend/internal/logger"
	"github.com/bloodaid/blood-donation-backend/internal/models"
	"github.com/bloodaid/blood-donation-backend/internal/services"
)

// DonorGetter defines the read side of the donor service.
type DonorGetter interface {
	List(ctx context.Context) ([]models.DonorDB, error)
	GetByID(ctx context.Context, donorID uuid.UUID) (*models.DonorDB, error)
}

// NewDonorListHandler returns an HTTP handler listing all donors.
// The password hash field is never part of the serialized record.
// @Summary List donors
// @Tags donors
// @Produce json
// @Success 200 {array} models.DonorDB "Donor records without password hashes"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users [get]
func NewDonorListHandler(svc DonorGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		donors, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(donors)
	}
}

// NewDonorGetHandler returns an HTTP handler fetching one donor by id.
// @Summary Get donor by id
// @Tags donors
// @Produce json
// @Param id path string true "Donor id"
// @Success 200 {object} models.DonorDB "Donor record without password hash"
// @Failure 404 {object} handlers.ErrorResponse "Donor not found"
// @Router /users/{id} [get]
func NewDonorGetHandler(svc DonorGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		donorID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Donor not found"})
			return
		}

		donor, err := svc.GetByID(r.Context(), donorID)
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
		json.NewEncoder(w).Encode(donor)
	}
}
