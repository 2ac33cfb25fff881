package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/metroapp/metro-map-backend/internal/models"
	"github.com/metroapp/metro-map-backend/internal/services"
)

// FavoriteAdder defines the interface that the service must implement.
type FavoriteAdder interface {
	Add(ctx context.Context, userID int64, cityCode, stationID string) (*models.FavoriteDB, bool, error)
}

// FavoriteRemover defines the interface that the service must implement.
type FavoriteRemover interface {
	Remove(ctx context.Context, userID int64, cityCode, stationID string) error
}

// FavoriteLister defines the interface that the service must implement.
type FavoriteLister interface {
	List(ctx context.Context, userID int64) ([]models.FavoriteWithStationDB, error)
}

// FavoriteChecker defines the interface that the service must implement.
type FavoriteChecker interface {
	Check(ctx context.Context, userID int64, cityCode, stationID string) (*models.FavoriteDB, error)
}

// FavoriteRequest represents the JSON body for adding or removing a
// favorite station.
// swagger:model FavoriteRequest
type FavoriteRequest struct {
	UserID    int64  `json:"user_id"`
	CityCode  string `json:"city_code"`
	StationID string `json:"station_id"`
}

// AddFavoriteResponse represents the add-favorite result
// swagger:model AddFavoriteResponse
type AddFavoriteResponse struct {
	Message   string `json:"message"`
	FavID     int64  `json:"fav_id"`
	CreatedAt string `json:"created_at,omitempty"`
}

// FavoriteItem is one favorite joined with station metadata
// swagger:model FavoriteItem
type FavoriteItem struct {
	FavID       int64   `json:"fav_id"`
	CityCode    string  `json:"city_code"`
	StationID   string  `json:"station_id"`
	StationName string  `json:"station_name"`
	LineName    string  `json:"line_name"`
	Lon         float64 `json:"lon"`
	Lat         float64 `json:"lat"`
	CreatedAt   string  `json:"created_at"`
}

// FavoriteListResponse wraps the favorite list with a total count
// swagger:model FavoriteListResponse
type FavoriteListResponse struct {
	Favorites []FavoriteItem `json:"favorites"`
	Total     int            `json:"total"`
}

// CheckFavoriteResponse reports whether a station is favorited
// swagger:model CheckFavoriteResponse
type CheckFavoriteResponse struct {
	IsFavorite bool   `json:"is_favorite"`
	FavID      *int64 `json:"fav_id"`
}

func decodeFavoriteRequest(w http.ResponseWriter, r *http.Request) (*FavoriteRequest, bool) {
	var req FavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return nil, false
	}
	req.CityCode = strings.TrimSpace(req.CityCode)
	req.StationID = strings.TrimSpace(req.StationID)
	if req.UserID == 0 || req.CityCode == "" || req.StationID == "" {
		writeMessage(w, http.StatusBadRequest, "missing required parameters")
		return nil, false
	}
	return &req, true
}

// NewAddFavoriteHandler returns an HTTP handler for bookmarking a
// station. Adding an already-favorited station answers 200 with the
// existing favorite id instead of creating a duplicate.
// @Summary Add favorite station
// @Tags favorite
// @Accept json
// @Produce json
// @Param favoriteRequest body handlers.FavoriteRequest true "Favorite to add"
// @Success 201 {object} handlers.AddFavoriteResponse "Favorite created"
// @Success 200 {object} handlers.AddFavoriteResponse "Already favorited"
// @Failure 400 {object} handlers.MessageResponse "Missing parameters"
// @Failure 500 {object} handlers.MessageResponse "Internal server error"
// @Router /favorite/add [post]
func NewAddFavoriteHandler(svc FavoriteAdder, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeFavoriteRequest(w, r)
		if !ok {
			return
		}

		fav, created, err := svc.Add(r.Context(), req.UserID, req.CityCode, req.StationID)
		if err != nil {
			log.Errorw("internal server error", "err", err)
			writeMessage(w, http.StatusInternalServerError, msgInternalError)
			return
		}

		if !created {
			writeJSON(w, http.StatusOK, AddFavoriteResponse{
				Message: "station already favorited",
				FavID:   fav.FavID,
			})
			return
		}

		writeJSON(w, http.StatusCreated, AddFavoriteResponse{
			Message:   "station favorited",
			FavID:     fav.FavID,
			CreatedAt: models.FormatTimestamp(fav.CreatedAt),
		})
	}
}

// NewRemoveFavoriteHandler returns an HTTP handler for removing a
// bookmark.
// @Summary Remove favorite station
// @Tags favorite
// @Accept json
// @Produce json
// @Param favoriteRequest body handlers.FavoriteRequest true "Favorite to remove"
// @Success 200 {object} handlers.MessageResponse "Favorite removed"
// @Failure 400 {object} handlers.MessageResponse "Missing parameters"
// @Failure 404 {object} handlers.MessageResponse "No such favorite"
// @Failure 500 {object} handlers.MessageResponse "Internal server error"
// @Router /favorite/remove [post]
func NewRemoveFavoriteHandler(svc FavoriteRemover, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeFavoriteRequest(w, r)
		if !ok {
			return
		}

		if err := svc.Remove(r.Context(), req.UserID, req.CityCode, req.StationID); err != nil {
			switch {
			case errors.Is(err, services.ErrFavoriteNotFound):
				writeMessage(w, http.StatusNotFound, err.Error())
			default:
				log.Errorw("internal server error", "err", err)
				writeMessage(w, http.StatusInternalServerError, msgInternalError)
			}
			return
		}

		writeMessage(w, http.StatusOK, "favorite removed")
	}
}

// NewListFavoritesHandler returns an HTTP handler listing a user's
// favorites with best-effort station metadata.
// @Summary List favorite stations
// @Tags favorite
// @Produce json
// @Param user_id query int true "Account ID"
// @Success 200 {object} handlers.FavoriteListResponse "Favorites"
// @Failure 400 {object} handlers.MessageResponse "Missing or invalid user_id"
// @Failure 500 {object} handlers.MessageResponse "Internal server error"
// @Router /favorite/list [get]
func NewListFavoritesHandler(svc FavoriteLister, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := r.URL.Query().Get("user_id")
		if raw == "" {
			writeMessage(w, http.StatusBadRequest, "missing user_id parameter")
			return
		}
		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid user_id parameter")
			return
		}

		favorites, err := svc.List(r.Context(), userID)
		if err != nil {
			log.Errorw("internal server error", "err", err)
			writeMessage(w, http.StatusInternalServerError, msgInternalError)
			return
		}

		items := make([]FavoriteItem, 0, len(favorites))
		for _, f := range favorites {
			items = append(items, FavoriteItem{
				FavID:       f.FavID,
				CityCode:    f.CityCode,
				StationID:   f.StationID,
				StationName: f.StationName,
				LineName:    f.LineName,
				Lon:         f.Lon,
				Lat:         f.Lat,
				CreatedAt:   models.FormatTimestamp(f.CreatedAt),
			})
		}

		writeJSON(w, http.StatusOK, FavoriteListResponse{Favorites: items, Total: len(items)})
	}
}

// NewCheckFavoriteHandler returns an HTTP handler reporting whether a
// station is already favorited.
// @Summary Check favorite station
// @Tags favorite
// @Produce json
// @Param user_id query int true "Account ID"
// @Param city_code query string true "City code"
// @Param station_id query string true "Station name"
// @Success 200 {object} handlers.CheckFavoriteResponse "Favorite status"
// @Failure 400 {object} handlers.MessageResponse "Missing parameters"
// @Failure 500 {object} handlers.MessageResponse "Internal server error"
// @Router /favorite/check [get]
func NewCheckFavoriteHandler(svc FavoriteChecker, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		raw := q.Get("user_id")
		cityCode := strings.TrimSpace(q.Get("city_code"))
		stationID := strings.TrimSpace(q.Get("station_id"))
		if raw == "" || cityCode == "" || stationID == "" {
			writeMessage(w, http.StatusBadRequest, "missing required parameters")
			return
		}
		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid user_id parameter")
			return
		}

		fav, err := svc.Check(r.Context(), userID, cityCode, stationID)
		if err != nil {
			log.Errorw("internal server error", "err", err)
			writeMessage(w, http.StatusInternalServerError, msgInternalError)
			return
		}

		resp := CheckFavoriteResponse{}
		if fav != nil {
			resp.IsFavorite = true
			resp.FavID = &fav.FavID
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
