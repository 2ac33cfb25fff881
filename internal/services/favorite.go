package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/metroapp/metro-map-backend/internal/models"
)

// ErrFavoriteNotFound is returned when removing a favorite that does not exist.
var ErrFavoriteNotFound = errors.New("favorite not found")

// FavoriteReader defines favorite-station read operations.
type FavoriteReader interface {
	Get(ctx context.Context, userID int64, cityCode, stationID string) (*models.FavoriteDB, error)
	ListByUser(ctx context.Context, userID int64) ([]models.FavoriteWithStationDB, error)
}

// FavoriteWriter defines favorite-station write operations.
type FavoriteWriter interface {
	Insert(ctx context.Context, userID int64, cityCode, stationID string) (*models.FavoriteDB, error)
	Delete(ctx context.Context, userID int64, cityCode, stationID string) (bool, error)
}

// FavoriteService handles per-user station bookmarks.
type FavoriteService struct {
	reader FavoriteReader
	writer FavoriteWriter
	log    *zap.SugaredLogger
}

// NewFavoriteService creates a new FavoriteService instance.
func NewFavoriteService(reader FavoriteReader, writer FavoriteWriter, log *zap.SugaredLogger) *FavoriteService {
	return &FavoriteService{
		reader: reader,
		writer: writer,
		log:    log,
	}
}

// Add bookmarks a station. Idempotent by pre-check: an existing
// (user, city, station) triple returns the existing favorite with
// created=false instead of a duplicate or an error.
func (svc *FavoriteService) Add(ctx context.Context, userID int64, cityCode, stationID string) (*models.FavoriteDB, bool, error) {
	existing, err := svc.reader.Get(ctx, userID, cityCode, stationID)
	if err != nil {
		svc.log.Errorw("failed to check favorite", "err", err)
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	fav, err := svc.writer.Insert(ctx, userID, cityCode, stationID)
	if err != nil {
		svc.log.Errorw("failed to insert favorite", "err", err)
		return nil, false, err
	}
	return fav, true, nil
}

// Remove deletes the bookmark, or returns ErrFavoriteNotFound.
func (svc *FavoriteService) Remove(ctx context.Context, userID int64, cityCode, stationID string) error {
	deleted, err := svc.writer.Delete(ctx, userID, cityCode, stationID)
	if err != nil {
		svc.log.Errorw("failed to delete favorite", "err", err)
		return err
	}
	if !deleted {
		return ErrFavoriteNotFound
	}
	return nil
}

// List returns the user's bookmarks joined with best-effort station
// metadata, newest first.
func (svc *FavoriteService) List(ctx context.Context, userID int64) ([]models.FavoriteWithStationDB, error) {
	favorites, err := svc.reader.ListByUser(ctx, userID)
	if err != nil {
		svc.log.Errorw("failed to list favorites", "err", err)
		return nil, err
	}
	return favorites, nil
}

// Check reports whether the station is bookmarked; the favorite is nil
// when it is not.
func (svc *FavoriteService) Check(ctx context.Context, userID int64, cityCode, stationID string) (*models.FavoriteDB, error) {
	fav, err := svc.reader.Get(ctx, userID, cityCode, stationID)
	if err != nil {
		svc.log.Errorw("failed to check favorite", "err", err)
		return nil, err
	}
	return fav, nil
}
