package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bloodaid/blood-donation-backend/internal/services"
)

func TestHospitalLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockHospitalLoginer(ctrl)

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
		expectedBody interface{}
	}{
		{
			name: "success",
			inputBody: HospitalLoginRequest{
				OfficialEmail: "admin@generalhospital.ng",
				Password:      "secret123",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "admin@generalhospital.ng", "secret123").
					Return("JWT_TOKEN", nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &TokenResponse{
				Token: "JWT_TOKEN",
			},
		},
		{
			name:         "invalid JSON",
			inputBody:    "{invalid json}",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: &ErrorResponse{
				Error: "invalid request body",
			},
		},
		{
			name: "hospital not found",
			inputBody: HospitalLoginRequest{
				OfficialEmail: "ghost@example.com",
				Password:      "secret123",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "ghost@example.com", "secret123").
					Return("", services.ErrHospitalNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: &ErrorResponse{
				Error: "Hospital not found",
			},
		},
		{
			name: "wrong password",
			inputBody: HospitalLoginRequest{
				OfficialEmail: "admin@generalhospital.ng",
				Password:      "wrong",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "admin@generalhospital.ng", "wrong").
					Return("", services.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
			expectedBody: &ErrorResponse{
				Error: "Incorrect password",
			},
		},
		{
			name: "internal error",
			inputBody: HospitalLoginRequest{
				OfficialEmail: "admin@generalhospital.ng",
				Password:      "secret123",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "admin@generalhospital.ng", "secret123").
					Return("", errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: &ErrorResponse{
				Error: "Internal server error",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			var bodyBytes []byte
			switch v := tt.inputBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPost, "/hospitals/auth/login", bytes.NewReader(bodyBytes))
			w := httptest.NewRecorder()

			handler := NewHospitalLoginHandler(mockSvc)
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			var respBody interface{}
			switch tt.expectedCode {
			case http.StatusOK:
				respBody = &TokenResponse{}
			default:
				respBody = &ErrorResponse{}
			}
			err := json.Unmarshal(w.Body.Bytes(), respBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, respBody)
		})
	}
}
