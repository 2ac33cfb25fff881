package handlers

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/metroapp/metro-map-backend/internal/models"
)

// defaultCity is used when the city query parameter is absent.
const defaultCity = "nj"

// LinesProvider defines the interface that the service must implement.
type LinesProvider interface {
	Lines(ctx context.Context, cityCode string) (*models.FeatureCollection, error)
}

// StationsProvider defines the interface that the service must implement.
type StationsProvider interface {
	Stations(ctx context.Context, cityCode string) (*models.StationColumns, error)
}

// NewMetroLinesHandler returns an HTTP handler serving the city's
// transit lines as a GeoJSON feature collection, cached per city.
// @Summary Get metro lines
// @Tags metro
// @Produce json
// @Param city query string false "City code" default(nj)
// @Success 200 {object} models.FeatureCollection "Feature collection"
// @Failure 500 {object} handlers.MessageResponse "Internal server error"
// @Router /metro/lines [get]
func NewMetroLinesHandler(svc LinesProvider, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		city := r.URL.Query().Get("city")
		if city == "" {
			city = defaultCity
		}

		fc, err := svc.Lines(r.Context(), city)
		if err != nil {
			log.Errorw("internal server error", "err", err)
			writeMessage(w, http.StatusInternalServerError, msgInternalError)
			return
		}

		writeJSON(w, http.StatusOK, fc)
	}
}

// NewMetroStationsHandler returns an HTTP handler serving the city's
// stations in the columnar map format, cached per city.
// @Summary Get metro stations
// @Tags metro
// @Produce json
// @Param city query string false "City code" default(nj)
// @Success 200 {object} models.StationColumns "Columnar station data"
// @Failure 500 {object} handlers.MessageResponse "Internal server error"
// @Router /metro/stations [get]
func NewMetroStationsHandler(svc StationsProvider, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		city := r.URL.Query().Get("city")
		if city == "" {
			city = defaultCity
		}

		cols, err := svc.Stations(r.Context(), city)
		if err != nil {
			log.Errorw("internal server error", "err", err)
			writeMessage(w, http.StatusInternalServerError, msgInternalError)
			return
		}

		writeJSON(w, http.StatusOK, cols)
	}
}
