package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/metroapp/metro-map-backend/internal/models"
)

// FavoriteReadRepository handles favorite-station read operations.
type FavoriteReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
	log      *zap.SugaredLogger
}

func NewFavoriteReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx, log *zap.SugaredLogger) *FavoriteReadRepository {
	return &FavoriteReadRepository{db: db, txGetter: txGetter, log: log}
}

func (r *FavoriteReadRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Get returns the favorite matching the (user, city, station) triple, or
// nil when none exists.
func (r *FavoriteReadRepository) Get(ctx context.Context, userID int64, cityCode, stationID string) (*models.FavoriteDB, error) {
	const query = `
		SELECT fav_id, user_id, city_code, station_id, created_at
		FROM user_favorite_station
		WHERE user_id = $1 AND city_code = $2 AND station_id = $3
	`

	var fav models.FavoriteDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &fav, query, userID, cityCode, stationID)

	r.log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, cityCode, stationID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &fav, nil
}

// ListByUser returns the user's favorites newest first, joined with
// best-effort station metadata. Station identifiers are free text, so a
// favorite with no catalog match falls back to the unknown-line sentinel
// and zero coordinates.
func (r *FavoriteReadRepository) ListByUser(ctx context.Context, userID int64) ([]models.FavoriteWithStationDB, error) {
	const query = `
		SELECT DISTINCT
			f.fav_id,
			f.city_code,
			f.station_id,
			f.station_id AS station_name,
			f.created_at,
			COALESCE(
				(SELECT ms.line_name FROM metro_station ms
				 WHERE ms.city_code = f.city_code
				   AND ms.station_name = f.station_id
				 LIMIT 1),
				$2
			) AS line_name,
			COALESCE(
				(SELECT ms.lon FROM metro_station ms
				 WHERE ms.city_code = f.city_code
				   AND ms.station_name = f.station_id
				 LIMIT 1),
				0
			) AS lon,
			COALESCE(
				(SELECT ms.lat FROM metro_station ms
				 WHERE ms.city_code = f.city_code
				   AND ms.station_name = f.station_id
				 LIMIT 1),
				0
			) AS lat
		FROM user_favorite_station f
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC
	`

	var favorites []models.FavoriteWithStationDB
	err := sqlx.SelectContext(ctx, r.executor(ctx), &favorites, query, userID, models.UnknownLine)

	r.log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"rows", len(favorites),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return favorites, nil
}

// FavoriteWriteRepository handles favorite-station write operations.
type FavoriteWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
	log      *zap.SugaredLogger
}

func NewFavoriteWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx, log *zap.SugaredLogger) *FavoriteWriteRepository {
	return &FavoriteWriteRepository{db: db, txGetter: txGetter, log: log}
}

func (r *FavoriteWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Insert creates a favorite and returns its id and creation time.
func (r *FavoriteWriteRepository) Insert(ctx context.Context, userID int64, cityCode, stationID string) (*models.FavoriteDB, error) {
	const query = `
		INSERT INTO user_favorite_station (user_id, city_code, station_id)
		VALUES ($1, $2, $3)
		RETURNING fav_id, user_id, city_code, station_id, created_at
	`

	var fav models.FavoriteDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &fav, query, userID, cityCode, stationID)

	r.log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, cityCode, stationID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &fav, nil
}

// Delete removes the favorite matching the triple. The second return
// value reports whether a row was actually deleted.
func (r *FavoriteWriteRepository) Delete(ctx context.Context, userID int64, cityCode, stationID string) (bool, error) {
	const query = `
		DELETE FROM user_favorite_station
		WHERE user_id = $1 AND city_code = $2 AND station_id = $3
		RETURNING fav_id
	`

	var favID int64
	err := sqlx.GetContext(ctx, r.executor(ctx), &favID, query, userID, cityCode, stationID)

	r.log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, cityCode, stationID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
