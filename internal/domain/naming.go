package domain

import (
	"fmt"
	"path/filepath"
	"time"
)

// exportTimezone is the calendar used for auto-generated filenames. Export
// consumers work US business hours, so the file date follows Central Time.
const exportTimezone = "America/Chicago"

// OutputPath resolves the export file path. An explicit filename overrides
// auto-naming; otherwise the name is ransom_live_pull_<YYYYMMDD>.csv using
// the Central Time calendar date, or the UTC date when the timezone database
// is unavailable.
func OutputPath(outDir, explicit string, now time.Time) string {
	if explicit != "" {
		return filepath.Join(outDir, explicit)
	}

	loc, err := time.LoadLocation(exportTimezone)
	if err != nil {
		loc = time.UTC
	}
	name := fmt.Sprintf("ransom_live_pull_%s.csv", now.In(loc).Format("20060102"))
	return filepath.Join(outDir, name)
}
