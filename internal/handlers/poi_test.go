package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestPOIHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	records := []map[string]any{
		{"id": "B001", "name": "夫子庙", "type": "景点"},
	}

	tests := []struct {
		name         string
		query        string
		mockSetup    func(m *MockPOIProvider)
		expectedCode int
	}{
		{
			name:  "with type filter",
			query: "?city=nj&type=景点",
			mockSetup: func(m *MockPOIProvider) {
				m.EXPECT().POIs(gomock.Any(), "nj", "景点").Return(records, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:  "default city, no filter",
			query: "",
			mockSetup: func(m *MockPOIProvider) {
				m.EXPECT().POIs(gomock.Any(), "nj", "").Return(records, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:  "internal error",
			query: "?city=nj",
			mockSetup: func(m *MockPOIProvider) {
				m.EXPECT().POIs(gomock.Any(), "nj", "").Return(nil, errors.New("db failure"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockPOIProvider(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewPOIHandler(mockSvc, zap.NewNop().Sugar())

			req := httptest.NewRequest(http.MethodGet, "/api/poi"+tt.query, nil)
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == http.StatusOK {
				var resp POIListResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Len(t, resp.POIs, 1)
				assert.Equal(t, "夫子庙", resp.POIs[0]["name"])
			}
		})
	}
}

func TestNearbyPOIHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	records := []map[string]any{
		{"id": "B001", "name": "近点", "distance": 12.35},
		{"id": "B002", "name": "远点", "distance": 120.0},
	}

	tests := []struct {
		name         string
		query        string
		mockSetup    func(m *MockNearbyPOIProvider)
		expectedCode int
		expectedMsg  string
	}{
		{
			name:  "success with default radius",
			query: "?lon=118.78&lat=32.04",
			mockSetup: func(m *MockNearbyPOIProvider) {
				m.EXPECT().
					NearbyPOIs(gomock.Any(), "nj", 118.78, 32.04, 300).
					Return(records, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:  "explicit radius",
			query: "?city=sh&lon=121.47&lat=31.23&radius=500",
			mockSetup: func(m *MockNearbyPOIProvider) {
				m.EXPECT().
					NearbyPOIs(gomock.Any(), "sh", 121.47, 31.23, 500).
					Return(records, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:  "bad radius falls back to default",
			query: "?lon=118.78&lat=32.04&radius=abc",
			mockSetup: func(m *MockNearbyPOIProvider) {
				m.EXPECT().
					NearbyPOIs(gomock.Any(), "nj", 118.78, 32.04, 300).
					Return(records, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "missing coordinates",
			query:        "",
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "missing longitude/latitude parameters",
		},
		{
			name:         "non-numeric coordinates",
			query:        "?lon=abc&lat=32.04",
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "missing longitude/latitude parameters",
		},
		{
			name:         "zero longitude rejected",
			query:        "?lon=0&lat=32.04",
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "missing longitude/latitude parameters",
		},
		{
			name:         "zero latitude rejected",
			query:        "?lon=118.78&lat=0",
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "missing longitude/latitude parameters",
		},
		{
			name:  "internal error",
			query: "?lon=118.78&lat=32.04",
			mockSetup: func(m *MockNearbyPOIProvider) {
				m.EXPECT().
					NearbyPOIs(gomock.Any(), "nj", 118.78, 32.04, 300).
					Return(nil, errors.New("db failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedMsg:  msgInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockNearbyPOIProvider(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewNearbyPOIHandler(mockSvc, zap.NewNop().Sugar())

			req := httptest.NewRequest(http.MethodGet, "/api/poi/nearby"+tt.query, nil)
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedMsg != "" {
				var resp map[string]string
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedMsg, resp["message"])
				return
			}

			var resp NearbyPOIResponse
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, 2, resp.Total)
			assert.Len(t, resp.POIs, 2)
		})
	}
}
