package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestVenezuelaTime(t *testing.T) {
	_, offset := VenezuelaTime().Zone()
	assert.Equal(t, -4*60*60, offset)
}

func TestFormatTimestamp(t *testing.T) {
	ts := time.Date(2025, time.July, 9, 18, 30, 5, 0, time.UTC)
	assert.Equal(t, "2025-07-09 18:30:05", FormatTimestamp(ts))
}
