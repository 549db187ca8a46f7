package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/bloodaid/blood-donation-backend/internal/services"
)

func TestHospitalDeleteHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockHospitalDeleter(ctrl)
	hospitalID := uuid.New()

	t.Run("success", func(t *testing.T) {
		mockSvc.EXPECT().Delete(gomock.Any(), hospitalID).Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/hospitals/"+hospitalID.String(), nil)
		req = withURLParam(req, "id", hospitalID.String())
		w := httptest.NewRecorder()

		NewHospitalDeleteHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Hospital deleted successfully"}`, w.Body.String())
	})

	t.Run("malformed id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/hospitals/not-a-uuid", nil)
		req = withURLParam(req, "id", "not-a-uuid")
		w := httptest.NewRecorder()

		NewHospitalDeleteHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Hospital not found"}`, w.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.EXPECT().Delete(gomock.Any(), hospitalID).Return(services.ErrHospitalNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/hospitals/"+hospitalID.String(), nil)
		req = withURLParam(req, "id", hospitalID.String())
		w := httptest.NewRecorder()

		NewHospitalDeleteHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Hospital not found"}`, w.Body.String())
	})

	t.Run("internal error", func(t *testing.T) {
		mockSvc.EXPECT().Delete(gomock.Any(), hospitalID).Return(errors.New("database error"))

		req := httptest.NewRequest(http.MethodDelete, "/hospitals/"+hospitalID.String(), nil)
		req = withURLParam(req, "id", hospitalID.String())
		w := httptest.NewRecorder()

		NewHospitalDeleteHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
	})
}
