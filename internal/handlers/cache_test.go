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

func TestWarmCacheHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockCacheWarmer(ctrl)
		mockSvc.EXPECT().
			Warm(gomock.Any()).
			Return(map[string]string{
				"nj_lines":    "cached 11 lines",
				"nj_stations": "already cached",
			}, nil)

		handler := NewWarmCacheHandler(mockSvc, zap.NewNop().Sugar())

		req := httptest.NewRequest(http.MethodPost, "/api/cache/warm", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp WarmCacheResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "cache warm completed", resp.Message)
		assert.Equal(t, "already cached", resp.Results["nj_stations"])
	})

	t.Run("warm error", func(t *testing.T) {
		mockSvc := NewMockCacheWarmer(ctrl)
		mockSvc.EXPECT().Warm(gomock.Any()).Return(nil, errors.New("db failure"))

		handler := NewWarmCacheHandler(mockSvc, zap.NewNop().Sugar())

		req := httptest.NewRequest(http.MethodPost, "/api/cache/warm", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestClearCacheHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockCacheClearer(ctrl)
	mockSvc.EXPECT().ClearCache()

	handler := NewClearCacheHandler(mockSvc)

	req := httptest.NewRequest(http.MethodPost, "/api/cache/clear", nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "cache cleared", resp["message"])
}
