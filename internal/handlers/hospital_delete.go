package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/bloodaid/blood-donation-backend/internal/logger"
	"github.com/bloodaid/blood-donation-backend/internal/services"
)

// HospitalDeleter defines the delete interface of the hospital service.
type HospitalDeleter interface {
	Delete(ctx context.Context, hospitalID uuid.UUID) error
}

// NewHospitalDeleteHandler returns an HTTP handler removing a hospital.
// @Summary Delete hospital
// @Tags hospitals
// @Produce json
// @Param id path string true "Hospital id"
// @Success 200 {object} handlers.MessageResponse "Hospital deleted successfully"
// @Failure 404 {object} handlers.ErrorResponse "Hospital not found"
// @Router /hospitals/{id} [delete]
func NewHospitalDeleteHandler(svc HospitalDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hospitalID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Hospital not found"})
			return
		}

		err = svc.Delete(r.Context(), hospitalID)
		if err != nil {
			switch {
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
		json.NewEncoder(w).Encode(MessageResponse{Message: "Hospital deleted successfully"})
	}
}
