package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{"space separated with microseconds", "2025-10-13 13:17:14.652100", time.Date(2025, 10, 13, 13, 17, 14, 652100000, time.UTC)},
		{"space separated without fraction", "2025-10-13 13:17:14", time.Date(2025, 10, 13, 13, 17, 14, 0, time.UTC)},
		{"iso T form", "2025-10-13T13:17:14", time.Date(2025, 10, 13, 13, 17, 14, 0, time.UTC)},
		{"iso T form with fraction", "2025-10-13T13:17:14.5", time.Date(2025, 10, 13, 13, 17, 14, 500000000, time.UTC)},
		{"zulu suffix", "2025-10-13T13:17:14Z", time.Date(2025, 10, 13, 13, 17, 14, 0, time.UTC)},
		{"explicit utc offset", "2025-10-13T13:17:14+00:00", time.Date(2025, 10, 13, 13, 17, 14, 0, time.UTC)},
		{"positive offset converts to utc", "2025-10-13T13:17:14+02:00", time.Date(2025, 10, 13, 11, 17, 14, 0, time.UTC)},
		{"negative offset converts to utc", "2025-10-13 13:17:14.250000-05:00", time.Date(2025, 10, 13, 18, 17, 14, 250000000, time.UTC)},
		{"date only", "2025-10-13", time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)},
		{"surrounding whitespace", "  2025-10-13 13:17:14  ", time.Date(2025, 10, 13, 13, 17, 14, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDate(tt.input)
			require.True(t, ok)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestParseDate_ZuluMatchesExplicitOffset(t *testing.T) {
	zulu, ok := ParseDate("2025-01-01T00:00:00Z")
	require.True(t, ok)
	offset, ok := ParseDate("2025-01-01T00:00:00+00:00")
	require.True(t, ok)
	assert.True(t, zulu.Equal(offset))
}

func TestParseDate_Unparsable(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"garbage", "not-a-date"},
		{"wrong order", "13/10/2025"},
		{"month only", "2025-10"},
		{"bare Z", "Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := ParseDate(tt.input)
			assert.False(t, ok)
		})
	}
}
