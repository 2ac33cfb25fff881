package models

// POIDB represents a point-of-interest row, column aliases matching the
// wire field names.
type POIDB struct {
	ID           string      `db:"id"` // external_id
	Name         string      `db:"name"`
	Type         string      `db:"type"`
	TypeCode     *string     `db:"type_code"`
	SearchType   *string     `db:"search_type"`
	Lon          float64     `db:"lon"`
	Lat          float64     `db:"lat"`
	Address      *string     `db:"address"`
	Tel          *string     `db:"tel"`
	BusinessArea *string     `db:"business_area"`
	Properties   PropertyBag `db:"properties"`
}

// NearbyPOIDB is a POI row annotated with its geodesic distance in meters
// from the query point.
type NearbyPOIDB struct {
	ID           string  `db:"id"`
	Name         string  `db:"name"`
	Type         string  `db:"type"`
	TypeCode     *string `db:"type_code"`
	Lon          float64 `db:"lon"`
	Lat          float64 `db:"lat"`
	Address      *string `db:"address"`
	Tel          *string `db:"tel"`
	BusinessArea *string `db:"business_area"`
	Distance     float64 `db:"distance"`
}
