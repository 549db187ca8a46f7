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

// DonorDeleter defines the delete interface of the donor service.
type DonorDeleter interface {
	Delete(ctx context.Context, donorID uuid.UUID) error
}

// NewDonorDeleteHandler returns an HTTP handler removing a donor.
// @Summary Delete donor
// @Tags donors
// @Produce json
// @Param id path string true "Donor id"
// @Success 200 {object} handlers.MessageResponse "Donor deleted successfully"
// @Failure 404 {object} handlers.ErrorResponse "Donor not found"
// @Router /users/{id} [delete]
func NewDonorDeleteHandler(svc DonorDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		donorID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Donor not found"})
			return
		}

		err = svc.Delete(r.Context(), donorID)
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
		json.NewEncoder(w).Encode(MessageResponse{Message: "Donor deleted successfully"})
	}
}
