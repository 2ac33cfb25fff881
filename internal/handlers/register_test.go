package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/metroapp/metro-map-backend/internal/models"
	"github.com/metroapp/metro-map-backend/internal/services"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	createdAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.Local)

	tests := []struct {
		name         string
		body         any
		rawBody      string
		mockSetup    func(m *MockRegisterer)
		expectedCode int
		expectedMsg  string
	}{
		{
			name: "success",
			body: RegisterRequest{Username: "alice", Password: "secret", DisplayName: "Alice", Email: "alice@example.com", SafeQuestion: "Mrs Smith"},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "alice", "secret", "Alice", "alice@example.com", "Mrs Smith").
					Return(&models.UserSummary{UserID: 1, Username: "alice", DisplayName: "Alice", CreatedAt: createdAt}, nil)
			},
			expectedCode: http.StatusCreated,
			expectedMsg:  "registration successful",
		},
		{
			name: "username taken",
			body: RegisterRequest{Username: "bob", Password: "secret", SafeQuestion: "Mrs Smith"},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "bob", "secret", "", "", "Mrs Smith").
					Return(nil, services.ErrUsernameTaken)
			},
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "username already exists",
		},
		{
			name: "display name taken",
			body: RegisterRequest{Username: "bob", Password: "secret", DisplayName: "Alice", SafeQuestion: "Mrs Smith"},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "bob", "secret", "Alice", "", "Mrs Smith").
					Return(nil, services.ErrDisplayNameTaken)
			},
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "display name already exists",
		},
		{
			name: "email taken",
			body: RegisterRequest{Username: "bob", Password: "secret", Email: "alice@example.com", SafeQuestion: "Mrs Smith"},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "bob", "secret", "", "alice@example.com", "Mrs Smith").
					Return(nil, services.ErrEmailTaken)
			},
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "email already exists",
		},
		{
			name:         "missing username",
			body:         RegisterRequest{Password: "secret", SafeQuestion: "Mrs Smith"},
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "username and password must not be empty",
		},
		{
			name:         "missing security answer",
			body:         RegisterRequest{Username: "alice", Password: "secret"},
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "security answer must not be empty",
		},
		{
			name:         "invalid json",
			rawBody:      "{invalid json}",
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "invalid request body",
		},
		{
			name: "internal error",
			body: RegisterRequest{Username: "bob", Password: "secret", SafeQuestion: "Mrs Smith"},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "bob", "secret", "", "", "Mrs Smith").
					Return(nil, errors.New("db failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedMsg:  msgInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewRegisterHandler(mockSvc, zap.NewNop().Sugar())

			var req *http.Request
			if tt.rawBody != "" {
				req = httptest.NewRequest(http.MethodPost, "/api/register", bytes.NewBufferString(tt.rawBody))
			} else {
				bodyBytes, _ := json.Marshal(tt.body)
				req = httptest.NewRequest(http.MethodPost, "/api/register", bytes.NewBuffer(bodyBytes))
			}

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]any
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedMsg, resp["message"])

			if tt.expectedCode == http.StatusCreated {
				assert.Equal(t, float64(1), resp["user_id"])
				assert.Equal(t, "alice", resp["username"])
				assert.Equal(t, models.FormatTimestamp(createdAt), resp["created_at"])
			}
		})
	}
}
