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

// HospitalUpdater defines the partial-update interface of the hospital
// service.
type HospitalUpdater interface {
	Update(ctx context.Context, hospitalID uuid.UUID, upd models.HospitalUpdate) (*models.HospitalDB, error)
}

// NewHospitalUpdateHandler returns an HTTP handler applying a partial
// hospital update. A password in the body is re-hashed before storage.
// @Summary Update hospital profile
// @Tags hospitals
// @Accept json
// @Produce json
// @Param id path string true "Hospital id"
// @Param update body models.HospitalUpdate true "Partial hospital update"
// @Success 200 {object} models.HospitalDB "Updated record without password hash"
// @Failure 400 {object} handlers.ErrorResponse "Invalid field value"
// @Failure 404 {object} handlers.ErrorResponse "Hospital not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /hospitals/{id} [put]
func NewHospitalUpdateHandler(svc HospitalUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hospitalID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Hospital not found"})
			return
		}

		var upd models.HospitalUpdate
		if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		hospital, err := svc.Update(r.Context(), hospitalID, upd)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrValidation):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
			case errors.Is(err, services.ErrHospitalNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Hospital not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(hospital)
	}
}
