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

// DonorUpdater defines the partial-update interface of the donor
// service.
type DonorUpdater interface {
	Update(ctx context.Context, donorID uuid.UUID, upd models.DonorUpdate) (*models.DonorDB, error)
}

// NewDonorUpdateHandler returns an HTTP handler applying a partial
// donor update. Fields absent from the body keep their stored values.
// @Summary Update donor profile
// @Tags donors
// @Accept json
// @Produce json
// @Param id path string true "Donor id"
// @Param update body models.DonorUpdate true "Partial donor update"
// @Success 200 {object} models.DonorDB "Updated record without password hash"
// @Failure 400 {object} handlers.ErrorResponse "Invalid field value"
// @Failure 404 {object} handlers.ErrorResponse "Donor not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/{id} [put]
func NewDonorUpdateHandler(svc DonorUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		donorID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Donor not found"})
			return
		}

		var upd models.DonorUpdate
		if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		donor, err := svc.Update(r.Context(), donorID, upd)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrValidation):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
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
