package handlers

import (
	"context"
	"net/http"

	"go.uber.org/zap"
)

// CacheWarmer defines the interface that the service must implement.
type CacheWarmer interface {
	Warm(ctx context.Context) (map[string]string, error)
}

// CacheClearer defines the interface that the service must implement.
type CacheClearer interface {
	ClearCache()
}

// WarmCacheResponse reports the per-region warm outcome
// swagger:model WarmCacheResponse
type WarmCacheResponse struct {
	Message string            `json:"message"`
	Results map[string]string `json:"results"`
}

// NewWarmCacheHandler returns an HTTP handler that preloads line and
// station payloads for the configured cities, skipping entries that are
// already cached.
// @Summary Warm the geo cache
// @Tags cache
// @Produce json
// @Success 200 {object} handlers.WarmCacheResponse "Per-region status"
// @Failure 500 {object} handlers.MessageResponse "Internal server error"
// @Router /cache/warm [post]
func NewWarmCacheHandler(svc CacheWarmer, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		results, err := svc.Warm(r.Context())
		if err != nil {
			log.Errorw("cache warm failed", "err", err)
			writeMessage(w, http.StatusInternalServerError, msgInternalError)
			return
		}

		writeJSON(w, http.StatusOK, WarmCacheResponse{
			Message: "cache warm completed",
			Results: results,
		})
	}
}

// NewClearCacheHandler returns an HTTP handler that drops every cached
// geo payload.
// @Summary Clear the geo cache
// @Tags cache
// @Produce json
// @Success 200 {object} handlers.MessageResponse "Cache cleared"
// @Router /cache/clear [post]
func NewClearCacheHandler(svc CacheClearer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svc.ClearCache()
		writeMessage(w, http.StatusOK, "cache cleared")
	}
}
