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

	"github.com/sbilibin2017/activity-calendar/internal/models"
	"github.com/sbilibin2017/activity-calendar/internal/services"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockLoginer(ctrl)
	mockSessions := NewMockSessionStarter(ctrl)
	alice := &models.UserDB{UserID: 1, Username: "alice"}

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
		expectedBody string
		expectedJSON *LoginResponse
	}{
		{
			name:      "success",
			inputBody: LoginRequest{Username: "alice", Password: "pw"},
			mockSetup: func() {
				mockSvc.EXPECT().Login(gomock.Any(), "alice", "pw").Return(alice, nil)
				mockSessions.EXPECT().Start(gomock.Any(), gomock.Any(), alice).Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedJSON: &LoginResponse{Message: "Logged in", User: "alice"},
		},
		{
			name:         "invalid JSON",
			inputBody:    "{invalid json}",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: "Invalid request body",
		},
		{
			name:         "missing password",
			inputBody:    LoginRequest{Username: "alice"},
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: "Missing credentials",
		},
		{
			name:         "missing username",
			inputBody:    map[string]string{"password": "pw"},
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: "Missing credentials",
		},
		{
			name:      "wrong credentials",
			inputBody: LoginRequest{Username: "alice", Password: "nope"},
			mockSetup: func() {
				mockSvc.EXPECT().Login(gomock.Any(), "alice", "nope").Return(nil, services.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
			expectedBody: "Invalid credentials",
		},
		{
			name:      "rate limited",
			inputBody: LoginRequest{Username: "alice", Password: "pw"},
			mockSetup: func() {
				mockSvc.EXPECT().Login(gomock.Any(), "alice", "pw").Return(nil, services.ErrRateLimited)
			},
			expectedCode: http.StatusTooManyRequests,
			expectedBody: "Too many failed attempts. Try again later.",
		},
		{
			name:      "internal error",
			inputBody: LoginRequest{Username: "alice", Password: "pw"},
			mockSetup: func() {
				mockSvc.EXPECT().Login(gomock.Any(), "alice", "pw").Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: "Internal server error",
		},
		{
			name:      "session error",
			inputBody: LoginRequest{Username: "alice", Password: "pw"},
			mockSetup: func() {
				mockSvc.EXPECT().Login(gomock.Any(), "alice", "pw").Return(alice, nil)
				mockSessions.EXPECT().Start(gomock.Any(), gomock.Any(), alice).Return(errors.New("sign failed"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			var body []byte
			if s, ok := tt.inputBody.(string); ok {
				body = []byte(s)
			} else {
				body, _ = json.Marshal(tt.inputBody)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewReader(body))
			w := httptest.NewRecorder()

			NewLoginHandler(mockSvc, mockSessions).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedJSON != nil {
				var got LoginResponse
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&got))
				assert.Equal(t, *tt.expectedJSON, got)
				return
			}
			assert.Equal(t, tt.expectedBody, w.Body.String())
		})
	}
}
