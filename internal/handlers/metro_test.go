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

	"github.com/metroapp/metro-map-backend/internal/models"
)

func TestMetroLinesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fc := &models.FeatureCollection{
		Type: "FeatureCollection",
		Features: []models.Feature{
			{Type: "Feature", Properties: map[string]any{"name": "1号线"}},
		},
	}

	tests := []struct {
		name         string
		query        string
		mockSetup    func(m *MockLinesProvider)
		expectedCode int
	}{
		{
			name:  "explicit city",
			query: "?city=sh",
			mockSetup: func(m *MockLinesProvider) {
				m.EXPECT().Lines(gomock.Any(), "sh").Return(fc, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:  "default city",
			query: "",
			mockSetup: func(m *MockLinesProvider) {
				m.EXPECT().Lines(gomock.Any(), "nj").Return(fc, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:  "internal error",
			query: "?city=nj",
			mockSetup: func(m *MockLinesProvider) {
				m.EXPECT().Lines(gomock.Any(), "nj").Return(nil, errors.New("db failure"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockLinesProvider(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewMetroLinesHandler(mockSvc, zap.NewNop().Sugar())

			req := httptest.NewRequest(http.MethodGet, "/api/metro/lines"+tt.query, nil)
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == http.StatusOK {
				var resp models.FeatureCollection
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, "FeatureCollection", resp.Type)
				assert.Len(t, resp.Features, 1)
			} else {
				var resp map[string]string
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, msgInternalError, resp["message"])
			}
		})
	}
}

func TestMetroStationsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cols := models.NewStationColumns()
	cols.Name["0"] = "新街口"
	cols.LineName["0"] = "1号线"
	cols.Lon["0"] = 118.78
	cols.Lat["0"] = 32.04
	cols.Num["0"] = 1
	cols.Direction["0"] = "up"
	cols.X["0"] = 1

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockStationsProvider(ctrl)
		mockSvc.EXPECT().Stations(gomock.Any(), "nj").Return(cols, nil)

		handler := NewMetroStationsHandler(mockSvc, zap.NewNop().Sugar())

		req := httptest.NewRequest(http.MethodGet, "/api/metro/stations", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp map[string]map[string]any
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "新街口", resp["name"]["0"])
		assert.Equal(t, "1号线", resp["linename"]["0"])
		assert.Equal(t, float64(1), resp["x"]["0"])
	})

	t.Run("internal error", func(t *testing.T) {
		mockSvc := NewMockStationsProvider(ctrl)
		mockSvc.EXPECT().Stations(gomock.Any(), "wh").Return(nil, errors.New("db failure"))

		handler := NewMetroStationsHandler(mockSvc, zap.NewNop().Sugar())

		req := httptest.NewRequest(http.MethodGet, "/api/metro/stations?city=wh", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
