package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/metroapp/metro-map-backend/internal/models"
)

// POIReadRepository handles point-of-interest reads, including the
// radius-bounded spatial lookup.
type POIReadRepository struct {
	db  *sqlx.DB
	log *zap.SugaredLogger
}

func NewPOIReadRepository(db *sqlx.DB, log *zap.SugaredLogger) *POIReadRepository {
	return &POIReadRepository{db: db, log: log}
}

// ListByCity returns POIs of a city ordered by name, optionally
// filtered by category.
func (r *POIReadRepository) ListByCity(ctx context.Context, cityCode, poiType string) ([]models.POIDB, error) {
	const query = `
		SELECT
			external_id AS id,
			poi_name AS name,
			poi_type AS type,
			type_code,
			search_type,
			lon,
			lat,
			address,
			tel,
			business_area,
			properties
		FROM poi
		WHERE city_code = $1
		  AND ($2::VARCHAR = '' OR poi_type = $2)
		ORDER BY poi_name
	`

	var pois []models.POIDB
	err := r.db.SelectContext(ctx, &pois, query, cityCode, poiType)

	r.log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{cityCode, poiType},
		"rows", len(pois),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return pois, nil
}

// ListNearby returns POIs within radiusMeters of the point, annotated
// with geodesic distance in meters, closest first, capped at 500 rows.
// The radius is passed in meters straight to the geography predicate.
func (r *POIReadRepository) ListNearby(ctx context.Context, cityCode string, lon, lat float64, radiusMeters int) ([]models.NearbyPOIDB, error) {
	const query = `
		SELECT
			external_id AS id,
			poi_name AS name,
			poi_type AS type,
			type_code,
			lon,
			lat,
			address,
			tel,
			business_area,
			ST_Distance(
				location::geography,
				ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography
			) AS distance
		FROM poi
		WHERE city_code = $3
		  AND ST_DWithin(
			location::geography,
			ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography,
			$4
		  )
		ORDER BY distance
		LIMIT 500
	`

	var pois []models.NearbyPOIDB
	err := r.db.SelectContext(ctx, &pois, query, lon, lat, cityCode, radiusMeters)

	r.log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{lon, lat, cityCode, radiusMeters},
		"rows", len(pois),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return pois, nil
}
