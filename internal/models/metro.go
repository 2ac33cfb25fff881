package models

import (
	"encoding/json"
)

// MetroLineDB represents a transit line row with its geometry already
// rendered to GeoJSON text by ST_AsGeoJSON.
type MetroLineDB struct {
	LineID     int64       `db:"line_id"`
	CityCode   string      `db:"city_code"`
	LineName   string      `db:"line_name"`
	Geometry   *string     `db:"geometry"`
	Properties PropertyBag `db:"properties"`
}

// MetroStationDB represents a transit station row.
type MetroStationDB struct {
	StationID  int64       `db:"station_id"`
	CityCode   string      `db:"city_code"`
	Name       string      `db:"name"`
	LineName   string      `db:"linename"`
	LineNumber *string     `db:"line_number"`
	Lon        float64     `db:"lon"`
	Lat        float64     `db:"lat"`
	Num        int         `db:"num"`
	Direction  string      `db:"direction"`
	Properties PropertyBag `db:"properties"`
}

// Feature is a single GeoJSON feature in the line response.
type Feature struct {
	Type       string          `json:"type"`
	Properties map[string]any  `json:"properties"`
	Geometry   json.RawMessage `json:"geometry"`
}

// FeatureCollection is the wire format for /api/metro/lines.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// StationColumns is the columnar wire format for /api/metro/stations:
// seven parallel maps keyed by the synthetic string index "0", "2", "4", ...
// The x column carries the line number, an int for plain numeric lines or
// the original short code (e.g. "S1") otherwise.
type StationColumns struct {
	Name      map[string]string  `json:"name"`
	LineName  map[string]string  `json:"linename"`
	Lon       map[string]float64 `json:"lon"`
	Lat       map[string]float64 `json:"lat"`
	Num       map[string]int     `json:"num"`
	Direction map[string]string  `json:"direction"`
	X         map[string]any     `json:"x"`
}

// NewStationColumns returns a StationColumns with all maps allocated.
func NewStationColumns() *StationColumns {
	return &StationColumns{
		Name:      make(map[string]string),
		LineName:  make(map[string]string),
		Lon:       make(map[string]float64),
		Lat:       make(map[string]float64),
		Num:       make(map[string]int),
		Direction: make(map[string]string),
		X:         make(map[string]any),
	}
}
