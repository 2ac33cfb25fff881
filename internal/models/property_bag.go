package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// PropertyBag is a free-form JSONB column scanned into a map.
// A NULL column scans to a nil map.
type PropertyBag map[string]any

func (b *PropertyBag) Scan(src any) error {
	if src == nil {
		*b = nil
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, b)
	case string:
		return json.Unmarshal([]byte(v), b)
	default:
		return fmt.Errorf("cannot scan %T into PropertyBag", src)
	}
}

func (b PropertyBag) Value() (driver.Value, error) {
	if b == nil {
		return nil, nil
	}
	return json.Marshal(b)
}
