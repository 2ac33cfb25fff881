package handlers

import (
	"context"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

// defaultNearbyRadius is the fallback search radius in meters.
const defaultNearbyRadius = 300

// POIProvider defines the interface that the service must implement.
type POIProvider interface {
	POIs(ctx context.Context, cityCode, poiType string) ([]map[string]any, error)
}

// NearbyPOIProvider defines the interface that the service must implement.
type NearbyPOIProvider interface {
	NearbyPOIs(ctx context.Context, cityCode string, lon, lat float64, radiusMeters int) ([]map[string]any, error)
}

// POIListResponse wraps a list of POI records
// swagger:model POIListResponse
type POIListResponse struct {
	POIs []map[string]any `json:"pois"`
}

// NearbyPOIResponse wraps nearby POI records with a total count
// swagger:model NearbyPOIResponse
type NearbyPOIResponse struct {
	POIs  []map[string]any `json:"pois"`
	Total int              `json:"total"`
}

// NewPOIHandler returns an HTTP handler listing a city's POIs,
// optionally filtered by category.
// @Summary List POIs
// @Tags poi
// @Produce json
// @Param city query string false "City code" default(nj)
// @Param type query string false "POI category filter"
// @Success 200 {object} handlers.POIListResponse "POI records"
// @Failure 500 {object} handlers.MessageResponse "Internal server error"
// @Router /poi [get]
func NewPOIHandler(svc POIProvider, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		city := r.URL.Query().Get("city")
		if city == "" {
			city = defaultCity
		}
		poiType := r.URL.Query().Get("type")

		pois, err := svc.POIs(r.Context(), city, poiType)
		if err != nil {
			log.Errorw("internal server error", "err", err)
			writeMessage(w, http.StatusInternalServerError, msgInternalError)
			return
		}

		writeJSON(w, http.StatusOK, POIListResponse{POIs: pois})
	}
}

// NewNearbyPOIHandler returns an HTTP handler for the radius-bounded POI
// search around a coordinate.
//
// A coordinate value of exactly 0 is rejected as missing; the frontend
// never sends real null-island coordinates and relies on this check.
// @Summary Find POIs near a point
// @Tags poi
// @Produce json
// @Param city query string false "City code" default(nj)
// @Param lon query number true "Longitude"
// @Param lat query number true "Latitude"
// @Param radius query int false "Search radius in meters" default(300)
// @Success 200 {object} handlers.NearbyPOIResponse "POIs within radius, closest first"
// @Failure 400 {object} handlers.MessageResponse "Missing or invalid coordinates"
// @Failure 500 {object} handlers.MessageResponse "Internal server error"
// @Router /poi/nearby [get]
func NewNearbyPOIHandler(svc NearbyPOIProvider, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		city := q.Get("city")
		if city == "" {
			city = defaultCity
		}

		lon, lonErr := strconv.ParseFloat(q.Get("lon"), 64)
		lat, latErr := strconv.ParseFloat(q.Get("lat"), 64)
		if lonErr != nil || latErr != nil || lon == 0 || lat == 0 {
			writeMessage(w, http.StatusBadRequest, "missing longitude/latitude parameters")
			return
		}

		radius := defaultNearbyRadius
		if raw := q.Get("radius"); raw != "" {
			if v, err := strconv.Atoi(raw); err == nil {
				radius = v
			}
		}

		pois, err := svc.NearbyPOIs(r.Context(), city, lon, lat, radius)
		if err != nil {
			log.Errorw("internal server error", "err", err)
			writeMessage(w, http.StatusInternalServerError, msgInternalError)
			return
		}

		writeJSON(w, http.StatusOK, NearbyPOIResponse{POIs: pois, Total: len(pois)})
	}
}
