package handlers

import (
	"bytes"
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

func TestHospitalUpdateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockHospitalUpdater(ctrl)
	hospitalID := uuid.New()

	name := "Teaching Hospital Ibadan"
	upd := models.HospitalUpdate{HospitalName: &name}

	t.Run("success", func(t *testing.T) {
		updated := &models.HospitalDB{
			HospitalID:   hospitalID,
			HospitalName: name,
			PasswordHash: "hash",
		}

		mockSvc.EXPECT().Update(gomock.Any(), hospitalID, upd).Return(updated, nil)

		body, _ := json.Marshal(upd)
		req := httptest.NewRequest(http.MethodPut, "/hospitals/"+hospitalID.String(), bytes.NewReader(body))
		req = withURLParam(req, "id", hospitalID.String())
		w := httptest.NewRecorder()

		NewHospitalUpdateHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var got models.HospitalDB
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, name, got.HospitalName)
		assert.NotContains(t, w.Body.String(), "hash")
	})

	t.Run("malformed id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/hospitals/not-a-uuid", bytes.NewReader([]byte(`{}`)))
		req = withURLParam(req, "id", "not-a-uuid")
		w := httptest.NewRecorder()

		NewHospitalUpdateHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Hospital not found"}`, w.Body.String())
	})

	t.Run("invalid JSON", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/hospitals/"+hospitalID.String(), bytes.NewReader([]byte("{invalid json}")))
		req = withURLParam(req, "id", hospitalID.String())
		w := httptest.NewRecorder()

		NewHospitalUpdateHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"invalid request body"}`, w.Body.String())
	})

	t.Run("invalid field value", func(t *testing.T) {
		mockSvc.EXPECT().
			Update(gomock.Any(), hospitalID, gomock.Any()).
			Return(nil, services.ErrValidation)

		req := httptest.NewRequest(http.MethodPut, "/hospitals/"+hospitalID.String(), bytes.NewReader([]byte(`{"hospitalType":"Charity"}`)))
		req = withURLParam(req, "id", hospitalID.String())
		w := httptest.NewRecorder()

		NewHospitalUpdateHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.EXPECT().Update(gomock.Any(), hospitalID, upd).Return(nil, services.ErrHospitalNotFound)

		body, _ := json.Marshal(upd)
		req := httptest.NewRequest(http.MethodPut, "/hospitals/"+hospitalID.String(), bytes.NewReader(body))
		req = withURLParam(req, "id", hospitalID.String())
		w := httptest.NewRecorder()

		NewHospitalUpdateHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Hospital not found"}`, w.Body.String())
	})

	t.Run("internal error", func(t *testing.T) {
		mockSvc.EXPECT().Update(gomock.Any(), hospitalID, upd).Return(nil, errors.New("database error"))

		body, _ := json.Marshal(upd)
		req := httptest.NewRequest(http.MethodPut, "/hospitals/"+hospitalID.String(), bytes.NewReader(body))
		req = withURLParam(req, "id", hospitalID.String())
		w := httptest.NewRecorder()

		NewHospitalUpdateHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
	})
}
