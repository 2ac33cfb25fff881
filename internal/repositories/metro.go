package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/metroapp/metro-map-backend/internal/models"
)

// MetroReadRepository handles transit line and station reads. Geometry is
// rendered to GeoJSON text inside the database.
type MetroReadRepository struct {
	db  *sqlx.DB
	log *zap.SugaredLogger
}

func NewMetroReadRepository(db *sqlx.DB, log *zap.SugaredLogger) *MetroReadRepository {
	return &MetroReadRepository{db: db, log: log}
}

// ListLinesByCity returns all lines of a city ordered by line name.
func (r *MetroReadRepository) ListLinesByCity(ctx context.Context, cityCode string) ([]models.MetroLineDB, error) {
	const query = `
		SELECT
			line_id,
			city_code,
			line_name,
			ST_AsGeoJSON(line_geom) AS geometry,
			properties
		FROM metro_line
		WHERE city_code = $1
		ORDER BY line_name
	`

	var lines []models.MetroLineDB
	err := r.db.SelectContext(ctx, &lines, query, cityCode)

	r.log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{cityCode},
		"rows", len(lines),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return lines, nil
}

// ListStationsByCity returns all stations of a city ordered by line name
// then sequence number, the order the columnar response indexes rely on.
func (r *MetroReadRepository) ListStationsByCity(ctx context.Context, cityCode string) ([]models.MetroStationDB, error) {
	const query = `
		SELECT
			station_id,
			city_code,
			station_name AS name,
			line_name AS linename,
			line_number,
			lon,
			lat,
			station_num AS num,
			direction,
			properties
		FROM metro_station
		WHERE city_code = $1
		ORDER BY line_name, station_num
	`

	var stations []models.MetroStationDB
	err := r.db.SelectContext(ctx, &stations, query, cityCode)

	r.log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{cityCode},
		"rows", len(stations),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return stations, nil
}
