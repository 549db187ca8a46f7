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

// HospitalGetter defines the read side of the hospital service.
type HospitalGetter interface {
	List(ctx context.Context) ([]models.HospitalDB, error)
	GetByID(ctx context.Context, hospitalID uuid.UUID) (*models.HospitalDB, error)
}

// NewHospitalListHandler returns an HTTP handler listing all hospitals.
// @Summary List hospitals
// @Tags hospitals
// @Produce json
// @Success 200 {array} models.HospitalDB "Hospital records without password hashes"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /hospitals [get]
func NewHospitalListHandler(svc HospitalGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hospitals, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(hospitals)
	}
}

// NewHospitalGetHandler returns an HTTP handler fetching one hospital
// by id.
// @Summary Get hospital by id
// @Tags hospitals
// @Produce json
// @Param id path string true "Hospital id"
// @Success 200 {object} models.HospitalDB "Hospital record without password hash"
// @Failure 404 {object} handlers.ErrorResponse "Hospital not found"
// @Router /hospitals/{id} [get]
func NewHospitalGetHandler(svc HospitalGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hospitalID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Hospital not found"})
			return
		}

		hospital, err := svc.GetByID(r.Context(), hospitalID)
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
		json.NewEncoder(w).Encode(hospital)
	}
}
