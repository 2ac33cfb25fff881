package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"

	"go.uber.org/zap"

	"github.com/metroapp/metro-map-backend/internal/cache"
	"github.com/metroapp/metro-map-backend/internal/models"
)

// MetroReader defines line and station reads from the spatial store.
type MetroReader interface {
	ListLinesByCity(ctx context.Context, cityCode string) ([]models.MetroLineDB, error)
	ListStationsByCity(ctx context.Context, cityCode string) ([]models.MetroStationDB, error)
}

// POIReader defines POI reads, including the radius lookup.
type POIReader interface {
	ListByCity(ctx context.Context, cityCode, poiType string) ([]models.POIDB, error)
	ListNearby(ctx context.Context, cityCode string, lon, lat float64, radiusMeters int) ([]models.NearbyPOIDB, error)
}

// GeoCache is the process-wide payload cache in front of line and
// station reads.
type GeoCache interface {
	GetOrCompute(key string, compute func() (any, error)) (any, error)
	Has(key string) bool
	Clear()
}

// Line-number extraction from line names, e.g. "Line 1" -> 1,
// "S1 suburban" -> "S1".
var (
	letterCodeRe = regexp.MustCompile(`[A-Za-z][0-9]+`)
	digitsRe     = regexp.MustCompile(`[0-9]+`)
)

// GeoService serves lines, stations and POIs in the map-rendering wire
// format. Line and station reads go through the cache; POI reads do not.
type GeoService struct {
	metro      MetroReader
	poi        POIReader
	cache      GeoCache
	warmCities []string
	log        *zap.SugaredLogger
}

// NewGeoService creates a new GeoService. warmCities is the fixed region
// list the warm operation iterates.
func NewGeoService(metro MetroReader, poi POIReader, geoCache GeoCache, warmCities []string, log *zap.SugaredLogger) *GeoService {
	return &GeoService{
		metro:      metro,
		poi:        poi,
		cache:      geoCache,
		warmCities: warmCities,
		log:        log,
	}
}

// Lines returns the city's lines as a GeoJSON feature collection,
// read-through cached.
func (svc *GeoService) Lines(ctx context.Context, cityCode string) (*models.FeatureCollection, error) {
	v, err := svc.cache.GetOrCompute(cache.Key(cache.KindLines, cityCode), func() (any, error) {
		return svc.buildLines(ctx, cityCode)
	})
	if err != nil {
		return nil, err
	}
	return v.(*models.FeatureCollection), nil
}

func (svc *GeoService) buildLines(ctx context.Context, cityCode string) (*models.FeatureCollection, error) {
	lines, err := svc.metro.ListLinesByCity(ctx, cityCode)
	if err != nil {
		svc.log.Errorw("failed to list lines", "city", cityCode, "err", err)
		return nil, err
	}

	fc := &models.FeatureCollection{
		Type:     "FeatureCollection",
		Features: make([]models.Feature, 0, len(lines)),
	}
	for _, line := range lines {
		props := map[string]any{
			"name":    line.LineName,
			"line_id": line.LineID,
		}
		// The free-form bag is applied last and wins on collision.
		for k, v := range line.Properties {
			props[k] = v
		}

		var geom json.RawMessage
		if line.Geometry != nil {
			geom = json.RawMessage(*line.Geometry)
		}

		fc.Features = append(fc.Features, models.Feature{
			Type:       "Feature",
			Properties: props,
			Geometry:   geom,
		})
	}
	return fc, nil
}

// Stations returns the city's stations in the columnar wire format,
// read-through cached.
func (svc *GeoService) Stations(ctx context.Context, cityCode string) (*models.StationColumns, error) {
	v, err := svc.cache.GetOrCompute(cache.Key(cache.KindStations, cityCode), func() (any, error) {
		return svc.buildStations(ctx, cityCode)
	})
	if err != nil {
		return nil, err
	}
	return v.(*models.StationColumns), nil
}

func (svc *GeoService) buildStations(ctx context.Context, cityCode string) (*models.StationColumns, error) {
	stations, err := svc.metro.ListStationsByCity(ctx, cityCode)
	if err != nil {
		svc.log.Errorw("failed to list stations", "city", cityCode, "err", err)
		return nil, err
	}

	cols := models.NewStationColumns()
	for i, st := range stations {
		// The frontend keys every column by twice the row position.
		idx := strconv.Itoa(i * 2)
		cols.Name[idx] = st.Name
		cols.LineName[idx] = st.LineName
		cols.Lon[idx] = st.Lon
		cols.Lat[idx] = st.Lat
		cols.Num[idx] = st.Num
		cols.Direction[idx] = st.Direction
		cols.X[idx] = resolveLineNumber(st.LineNumber, st.LineName)
	}
	return cols, nil
}

// resolveLineNumber prefers the stored value, coerced to int when purely
// numeric, and otherwise derives a number from the line-name text.
func resolveLineNumber(stored *string, lineName string) any {
	if stored != nil && *stored != "" {
		if n, err := strconv.Atoi(*stored); err == nil {
			return n
		}
		return *stored
	}
	return extractLineNumber(lineName)
}

// extractLineNumber pulls a line number out of a line name: a letter
// followed by digits keeps the short code ("S1"), otherwise the first
// digit run becomes an int, otherwise 0.
func extractLineNumber(lineName string) any {
	if m := letterCodeRe.FindString(lineName); m != "" {
		return m
	}
	if m := digitsRe.FindString(lineName); m != "" {
		n, err := strconv.Atoi(m)
		if err == nil {
			return n
		}
	}
	return 0
}

// POIs returns the city's POIs as flat records with the property bag
// merged over the fixed fields (bag wins on collision). Not cached.
func (svc *GeoService) POIs(ctx context.Context, cityCode, poiType string) ([]map[string]any, error) {
	pois, err := svc.poi.ListByCity(ctx, cityCode, poiType)
	if err != nil {
		svc.log.Errorw("failed to list POIs", "city", cityCode, "type", poiType, "err", err)
		return nil, err
	}

	records := make([]map[string]any, 0, len(pois))
	for _, p := range pois {
		record := map[string]any{
			"id":            p.ID,
			"name":          p.Name,
			"type":          p.Type,
			"type_code":     p.TypeCode,
			"search_type":   p.SearchType,
			"lon":           p.Lon,
			"lat":           p.Lat,
			"address":       p.Address,
			"tel":           p.Tel,
			"business_area": p.BusinessArea,
		}
		for k, v := range p.Properties {
			record[k] = v
		}
		records = append(records, record)
	}
	return records, nil
}

// NearbyPOIs returns POIs within radiusMeters of the point, closest
// first, distance in meters rounded to two decimals.
func (svc *GeoService) NearbyPOIs(ctx context.Context, cityCode string, lon, lat float64, radiusMeters int) ([]map[string]any, error) {
	pois, err := svc.poi.ListNearby(ctx, cityCode, lon, lat, radiusMeters)
	if err != nil {
		svc.log.Errorw("failed to list nearby POIs", "city", cityCode, "err", err)
		return nil, err
	}

	records := make([]map[string]any, 0, len(pois))
	for _, p := range pois {
		records = append(records, map[string]any{
			"id":            p.ID,
			"name":          p.Name,
			"type":          p.Type,
			"type_code":     p.TypeCode,
			"lon":           p.Lon,
			"lat":           p.Lat,
			"address":       p.Address,
			"tel":           p.Tel,
			"business_area": p.BusinessArea,
			"distance":      math.Round(p.Distance*100) / 100,
		})
	}
	return records, nil
}

// Warm populates line and station entries for the configured city list,
// skipping keys that are already cached, and reports a per-region status
// map.
func (svc *GeoService) Warm(ctx context.Context) (map[string]string, error) {
	results := make(map[string]string)

	for _, city := range svc.warmCities {
		linesKey := cache.Key(cache.KindLines, city)
		if svc.cache.Has(linesKey) {
			results[city+"_lines"] = "already cached"
		} else {
			fc, err := svc.Lines(ctx, city)
			if err != nil {
				return nil, err
			}
			results[city+"_lines"] = fmt.Sprintf("cached %d lines", len(fc.Features))
		}

		stationsKey := cache.Key(cache.KindStations, city)
		if svc.cache.Has(stationsKey) {
			results[city+"_stations"] = "already cached"
		} else {
			cols, err := svc.Stations(ctx, city)
			if err != nil {
				return nil, err
			}
			results[city+"_stations"] = fmt.Sprintf("cached %d stations", len(cols.Name))
		}
	}

	return results, nil
}

// ClearCache drops every cached geo payload.
func (svc *GeoService) ClearCache() {
	svc.cache.Clear()
}
