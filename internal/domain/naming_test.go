package domain

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOutputPath_ExplicitOverride(t *testing.T) {
	now := time.Date(2025, 8, 30, 12, 0, 0, 0, time.UTC)
	path := OutputPath("./exports", "custom.csv", now)
	assert.Equal(t, filepath.Join("exports", "custom.csv"), path)
}

func TestOutputPath_AutoNameUsesCentralDate(t *testing.T) {
	// 03:00 UTC on Jan 2 is still Jan 1 in America/Chicago.
	now := time.Date(2025, 1, 2, 3, 0, 0, 0, time.UTC)
	path := OutputPath(".", "", now)
	assert.Equal(t, filepath.Join(".", "ransom_live_pull_20250101.csv"), path)
}

func TestOutputPath_AutoNameSameDay(t *testing.T) {
	// Midday UTC is the same calendar date in Chicago.
	now := time.Date(2025, 8, 30, 18, 0, 0, 0, time.UTC)
	path := OutputPath("out", "", now)
	assert.Equal(t, filepath.Join("out", "ransom_live_pull_20250830.csv"), path)
}
