package domain

import (
	"fmt"
	"strings"
)

// Flatten projects one raw record into its fixed-column export shape.
// Absent fields flatten to empty strings; nothing here can fail.
func Flatten(r Record) ExportRow {
	return ExportRow{
		IDBase64:        idFromDetailURL(r.URL),
		Victim:          r.Victim,
		Domain:          r.Domain,
		Country:         r.Country,
		Group:           r.Group,
		Activity:        r.Activity,
		AttackDate:      r.AttackDate,
		Discovered:      r.Discovered,
		Description:     r.Description,
		ClaimURL:        r.ClaimURL,
		DetailURL:       r.URL,
		ScreenshotURL:   r.Screenshot,
		PressURLs:       pressURLs(r.Press),
		DuplicatesCount: duplicatesCount(r.Duplicates),
	}
}

// idFromDetailURL extracts the leak-site posting ID: the last path segment
// after stripping trailing slashes. Empty input yields an empty ID.
func idFromDetailURL(url string) string {
	url = strings.TrimRight(url, "/")
	if url == "" {
		return ""
	}
	if i := strings.LastIndex(url, "/"); i >= 0 {
		return url[i+1:]
	}
	return url
}

// pressURLs flattens the loosely typed press field: lists are joined with
// "|" (non-string elements dropped), a bare string passes through, anything
// else is stringified, and absent/null becomes empty.
func pressURLs(press any) string {
	switch v := press.(type) {
	case nil:
		return ""
	case []any:
		parts := make([]string, 0, len(v))
		for _, p := range v {
			if s, ok := p.(string); ok {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, "|")
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// duplicatesCount returns the length of the duplicates list, 0 when the
// field is absent or not list-shaped.
func duplicatesCount(duplicates any) int {
	if list, ok := duplicates.([]any); ok {
		return len(list)
	}
	return 0
}
