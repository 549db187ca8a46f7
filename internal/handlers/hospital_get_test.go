package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/bloodaid/blood-donation-backend/internal/models"
	"github.com/bloodaid/blood-donation-backend/internal/services"
)

func TestHospitalListHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockHospitalGetter(ctrl)

	t.Run("success", func(t *testing.T) {
		hospitals := []models.HospitalDB{
			{HospitalID: uuid.New(), HospitalName: "General Hospital Lagos", PasswordHash: "hash"},
			{HospitalID: uuid.New(), HospitalName: "Teaching Hospital Ibadan", PasswordHash: "hash"},
		}

		mockSvc.EXPECT().List(gomock.Any()).Return(hospitals, nil)

		req := httptest.NewRequest(http.MethodGet, "/hospitals", nil)
		w := httptest.NewRecorder()

		NewHospitalListHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var got []models.HospitalDB
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Len(t, got, 2)
		assert.NotContains(t, w.Body.String(), "hash")
	})

	t.Run("internal error", func(t *testing.T) {
		mockSvc.EXPECT().List(gomock.Any()).Return(nil, errors.New("database error"))

		req := httptest.NewRequest(http.MethodGet, "/hospitals", nil)
		w := httptest.NewRecorder()

		NewHospitalListHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
	})
}

func TestHospitalGetHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockHospitalGetter(ctrl)
	hospitalID := uuid.New()

	t.Run("success", func(t *testing.T) {
		hospital := &models.HospitalDB{
			HospitalID:   hospitalID,
			HospitalName: "General Hospital Lagos",
			PasswordHash: "hash",
		}

		mockSvc.EXPECT().GetByID(gomock.Any(), hospitalID).Return(hospital, nil)

		req := httptest.NewRequest(http.MethodGet, "/hospitals/"+hospitalID.String(), nil)
		req = withURLParam(req, "id", hospitalID.String())
		w := httptest.NewRecorder()

		NewHospitalGetHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var got models.HospitalDB
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, hospitalID, got.HospitalID)
		assert.NotContains(t, w.Body.String(), "hash")
	})

	t.Run("malformed id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/hospitals/not-a-uuid", nil)
		req = withURLParam(req, "id", "not-a-uuid")
		w := httptest.NewRecorder()

		NewHospitalGetHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Hospital not found"}`, w.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.EXPECT().GetByID(gomock.Any(), hospitalID).Return(nil, services.ErrHospitalNotFound)

		req := httptest.NewRequest(http.MethodGet, "/hospitals/"+hospitalID.String(), nil)
		req = withURLParam(req, "id", hospitalID.String())
		w := httptest.NewRecorder()

		NewHospitalGetHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Hospital not found"}`, w.Body.String())
	})

	t.Run("internal error", func(t *testing.T) {
		mockSvc.EXPECT().GetByID(gomock.Any(), hospitalID).Return(nil, errors.New("database error"))

		req := httptest.NewRequest(http.MethodGet, "/hospitals/"+hospitalID.String(), nil)
		req = withURLParam(req, "id", hospitalID.String())
		w := httptest.NewRecorder()

		NewHospitalGetHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
	})
}
