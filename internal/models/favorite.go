package models

import (
	"time"
)

// UnknownLine is the line-name sentinel used when a favorited station
// has no matching row in the station catalog.
const UnknownLine = "unknown line"

// FavoriteDB represents a favorite-station row.
type FavoriteDB struct {
	FavID     int64     `db:"fav_id"`
	UserID    int64     `db:"user_id"`
	CityCode  string    `db:"city_code"`
	StationID string    `db:"station_id"` // station name, free text
	CreatedAt time.Time `db:"created_at"`
}

// FavoriteWithStationDB is a favorite joined with best-effort station
// metadata (unknown-line sentinel and zero coordinates when unmatched).
type FavoriteWithStationDB struct {
	FavID       int64     `db:"fav_id"`
	CityCode    string    `db:"city_code"`
	StationID   string    `db:"station_id"`
	StationName string    `db:"station_name"`
	CreatedAt   time.Time `db:"created_at"`
	LineName    string    `db:"line_name"`
	Lon         float64   `db:"lon"`
	Lat         float64   `db:"lat"`
}
