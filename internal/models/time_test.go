package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatTimestamp(t *testing.T) {
	ts := time.Date(2024, 5, 1, 9, 5, 3, 0, time.Local)
	assert.Equal(t, "2024-05-01 09:05:03", FormatTimestamp(ts))
}

func TestFormatTimestampPtr(t *testing.T) {
	assert.Nil(t, FormatTimestampPtr(nil))

	ts := time.Date(2024, 5, 1, 9, 5, 3, 0, time.Local)
	got := FormatTimestampPtr(&ts)
	assert.NotNil(t, got)
	assert.Equal(t, "2024-05-01 09:05:03", *got)
}
