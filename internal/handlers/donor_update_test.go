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

func TestDonorUpdateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockDonorUpdater(ctrl)
	donorID := uuid.New()

	location := "Abuja"
	upd := models.DonorUpdate{CurrentLocation: &location}

	t.Run("success", func(t *testing.T) {
		updated := &models.DonorDB{
			DonorID:         donorID,
			Name:            "Ada Obi",
			Email:           "ada@example.com",
			CurrentLocation: "Abuja",
			PasswordHash:    "hash",
		}

		mockSvc.EXPECT().Update(gomock.Any(), donorID, upd).Return(updated, nil)

		body, _ := json.Marshal(upd)
		req := httptest.NewRequest(http.MethodPut, "/users/"+donorID.String(), bytes.NewReader(body))
		req = withURLParam(req, "id", donorID.String())
		w := httptest.NewRecorder()

		NewDonorUpdateHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var got models.DonorDB
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "Abuja", got.CurrentLocation)
		assert.NotContains(t, w.Body.String(), "hash")
	})

	t.Run("malformed id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/users/not-a-uuid", bytes.NewReader([]byte(`{}`)))
		req = withURLParam(req, "id", "not-a-uuid")
		w := httptest.NewRecorder()

		NewDonorUpdateHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Donor not found"}`, w.Body.String())
	})

	t.Run("invalid JSON", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/users/"+donorID.String(), bytes.NewReader([]byte("{invalid json}")))
		req = withURLParam(req, "id", donorID.String())
		w := httptest.NewRecorder()

		NewDonorUpdateHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"invalid request body"}`, w.Body.String())
	})

	t.Run("invalid field value", func(t *testing.T) {
		mockSvc.EXPECT().
			Update(gomock.Any(), donorID, gomock.Any()).
			Return(nil, services.ErrValidation)

		req := httptest.NewRequest(http.MethodPut, "/users/"+donorID.String(), bytes.NewReader([]byte(`{"bloodGroup":"Z+"}`)))
		req = withURLParam(req, "id", donorID.String())
		w := httptest.NewRecorder()

		NewDonorUpdateHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.EXPECT().Update(gomock.Any(), donorID, upd).Return(nil, services.ErrDonorNotFound)

		body, _ := json.Marshal(upd)
		req := httptest.NewRequest(http.MethodPut, "/users/"+donorID.String(), bytes.NewReader(body))
		req = withURLParam(req, "id", donorID.String())
		w := httptest.NewRecorder()

		NewDonorUpdateHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Donor not found"}`, w.Body.String())
	})

	t.Run("internal error", func(t *testing.T) {
		mockSvc.EXPECT().Update(gomock.Any(), donorID, upd).Return(nil, errors.New("database error"))

		body, _ := json.Marshal(upd)
		req := httptest.NewRequest(http.MethodPut, "/users/"+donorID.String(), bytes.NewReader(body))
		req = withURLParam(req, "id", donorID.String())
		w := httptest.NewRecorder()

		NewDonorUpdateHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
	})
}
