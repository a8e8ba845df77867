package domain

import (
	"strings"
	"time"
)

// offsetLayouts are tried first and cover inputs carrying an explicit UTC
// offset. A trailing "Z" is rewritten to "+00:00" before matching, so the
// Zulu forms are handled here too.
var offsetLayouts = []string{
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999Z07:00",
}

// naiveLayouts cover offset-free inputs, which the API documents as UTC.
var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// ParseDate normalizes one of the feed's heterogeneous date strings to a UTC
// instant. Layouts are tried in order and the first success wins. Returns
// false for empty, whitespace-only, or unparsable input; it never errors.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if strings.HasSuffix(s, "Z") {
		s = strings.TrimSuffix(s, "Z") + "+00:00"
	}

	for _, layout := range offsetLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
