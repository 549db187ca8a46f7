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

func TestRequestPasswordResetHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockPasswordResetter(ctrl)

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
		expectedBody interface{}
	}{
		{
			name:      "success",
			inputBody: RequestPasswordResetRequest{Email: "ada@example.com"},
			mockSetup: func() {
				mockSvc.EXPECT().
					RequestPasswordReset(gomock.Any(), "ada@example.com").
					Return("482913", nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &RequestPasswordResetResponse{
				Message:   "Password reset code generated",
				ResetCode: "482913",
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
			name:      "donor not found",
			inputBody: RequestPasswordResetRequest{Email: "ghost@example.com"},
			mockSetup: func() {
				mockSvc.EXPECT().
					RequestPasswordReset(gomock.Any(), "ghost@example.com").
					Return("", services.ErrDonorNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: &ErrorResponse{
				Error: "Donor not found",
			},
		},
		{
			name:      "internal error",
			inputBody: RequestPasswordResetRequest{Email: "ada@example.com"},
			mockSetup: func() {
				mockSvc.EXPECT().
					RequestPasswordReset(gomock.Any(), "ada@example.com").
					Return("", errors.New("redis down"))
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

			req := httptest.NewRequest(http.MethodPost, "/request-password-reset", bytes.NewReader(bodyBytes))
			w := httptest.NewRecorder()

			handler := NewRequestPasswordResetHandler(mockSvc)
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			var respBody interface{}
			switch tt.expectedCode {
			case http.StatusOK:
				respBody = &RequestPasswordResetResponse{}
			default:
				respBody = &ErrorResponse{}
			}
			err := json.Unmarshal(w.Body.Bytes(), respBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, respBody)
		})
	}
}

func TestResetPasswordHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockPasswordResetter(ctrl)

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
		expectedBody interface{}
	}{
		{
			name: "success",
			inputBody: ResetPasswordRequest{
				Email:       "ada@example.com",
				Code:        "482913",
				NewPassword: "newsecret123",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					ResetPassword(gomock.Any(), "ada@example.com", "482913", "newsecret123").
					Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &MessageResponse{
				Message: "Password reset successful",
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
			name: "wrong or expired code",
			inputBody: ResetPasswordRequest{
				Email:       "ada@example.com",
				Code:        "000000",
				NewPassword: "newsecret123",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					ResetPassword(gomock.Any(), "ada@example.com", "000000", "newsecret123").
					Return(services.ErrInvalidResetCode)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: &ErrorResponse{
				Error: "Invalid email or code",
			},
		},
		{
			name: "validation error",
			inputBody: ResetPasswordRequest{
				Email: "ada@example.com",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					ResetPassword(gomock.Any(), "ada@example.com", "", "").
					Return(services.ErrValidation)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: &ErrorResponse{
				Error: services.ErrValidation.Error(),
			},
		},
		{
			name: "internal error",
			inputBody: ResetPasswordRequest{
				Email:       "ada@example.com",
				Code:        "482913",
				NewPassword: "newsecret123",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					ResetPassword(gomock.Any(), "ada@example.com", "482913", "newsecret123").
					Return(errors.New("database error"))
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

			req := httptest.NewRequest(http.MethodPost, "/reset-password", bytes.NewReader(bodyBytes))
			w := httptest.NewRecorder()

			handler := NewResetPasswordHandler(mockSvc)
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			var respBody interface{}
			switch tt.expectedCode {
			case http.StatusOK:
				respBody = &MessageResponse{}
			default:
				respBody = &ErrorResponse{}
			}
			err := json.Unmarshal(w.Body.Bytes(), respBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, respBody)
		})
	}
}
