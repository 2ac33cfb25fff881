package models

import (
	"time"
)

const timestampLayout = "2006-01-02 15:04:05"

// FormatTimestamp renders a timestamp in the local timezone as
// "YYYY-MM-DD HH:MM:SS", the format the web frontend expects.
func FormatTimestamp(t time.Time) string {
	return t.Local().Format(timestampLayout)
}

// FormatTimestampPtr is FormatTimestamp for nullable columns; nil stays nil.
func FormatTimestampPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := FormatTimestamp(*t)
	return &s
}
