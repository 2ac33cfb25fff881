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
	"go.uber.org/zap"

	"github.com/metroapp/metro-map-backend/internal/models"
	"github.com/metroapp/metro-map-backend/internal/services"
)

func TestSecurityQuestionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		query        string
		mockSetup    func(m *MockQuestionGetter)
		expectedCode int
		expectedMsg  string
	}{
		{
			name:  "success",
			query: "?identifier=alice",
			mockSetup: func(m *MockQuestionGetter) {
				m.EXPECT().
					GetSecurityQuestion(gomock.Any(), "alice").
					Return(&models.UserDB{UserID: 7, Username: "alice"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "missing identifier",
			query:        "",
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "missing user identifier",
		},
		{
			name:  "unknown account",
			query: "?identifier=ghost",
			mockSetup: func(m *MockQuestionGetter) {
				m.EXPECT().
					GetSecurityQuestion(gomock.Any(), "ghost").
					Return(nil, services.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedMsg:  "user not found",
		},
		{
			name:  "internal error",
			query: "?identifier=alice",
			mockSetup: func(m *MockQuestionGetter) {
				m.EXPECT().
					GetSecurityQuestion(gomock.Any(), "alice").
					Return(nil, errors.New("db failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedMsg:  msgInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockQuestionGetter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewSecurityQuestionHandler(mockSvc, zap.NewNop().Sugar())

			req := httptest.NewRequest(http.MethodGet, "/api/get_security_question"+tt.query, nil)
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]any
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			if tt.expectedMsg != "" {
				assert.Equal(t, tt.expectedMsg, resp["message"])
				return
			}

			assert.Equal(t, float64(7), resp["user_id"])
			assert.Equal(t, "alice", resp["username"])
			assert.Equal(t, services.SecurityQuestion, resp["question"])
		})
	}
}

func TestVerifyAnswerHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         VerifyAnswerRequest
		mockSetup    func(m *MockAnswerVerifier)
		expectedCode int
		expectedMsg  string
	}{
		{
			name: "correct answer",
			body: VerifyAnswerRequest{UserID: 7, Answer: "Mrs Smith"},
			mockSetup: func(m *MockAnswerVerifier) {
				m.EXPECT().VerifySecurityAnswer(gomock.Any(), int64(7), "Mrs Smith").Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedMsg:  "verification successful",
		},
		{
			name: "wrong answer",
			body: VerifyAnswerRequest{UserID: 7, Answer: "Mr Jones"},
			mockSetup: func(m *MockAnswerVerifier) {
				m.EXPECT().VerifySecurityAnswer(gomock.Any(), int64(7), "Mr Jones").Return(services.ErrAnswerMismatch)
			},
			expectedCode: http.StatusUnauthorized,
			expectedMsg:  "security answer incorrect",
		},
		{
			name: "answer not set",
			body: VerifyAnswerRequest{UserID: 7, Answer: "Mrs Smith"},
			mockSetup: func(m *MockAnswerVerifier) {
				m.EXPECT().VerifySecurityAnswer(gomock.Any(), int64(7), "Mrs Smith").Return(services.ErrAnswerNotSet)
			},
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "security question not set",
		},
		{
			name: "unknown account",
			body: VerifyAnswerRequest{UserID: 99, Answer: "Mrs Smith"},
			mockSetup: func(m *MockAnswerVerifier) {
				m.EXPECT().VerifySecurityAnswer(gomock.Any(), int64(99), "Mrs Smith").Return(services.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedMsg:  "user not found",
		},
		{
			name:         "missing parameters",
			body:         VerifyAnswerRequest{UserID: 7},
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "missing required parameters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockAnswerVerifier(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewVerifyAnswerHandler(mockSvc, zap.NewNop().Sugar())

			bodyBytes, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPost, "/api/verify_security_answer", bytes.NewBuffer(bodyBytes))
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]string
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedMsg, resp["message"])
		})
	}
}
