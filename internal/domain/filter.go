package domain

import (
	"slices"
	"strings"
	"time"
)

// usCountrySpellings are the country values the feed uses for US victims.
var usCountrySpellings = map[string]struct{}{
	"US":            {},
	"UNITED STATES": {},
	"USA":           {},
}

// sortKeyMax orders records whose sort key fails to parse after everything
// else.
var sortKeyMax = time.Date(9999, time.December, 31, 23, 59, 59, 999999000, time.UTC)

// FilterStats counts records excluded by FilterSortRecent, by reason.
// Exclusions are silent by contract; the counts exist for metrics and debug
// logging only.
type FilterStats struct {
	NonUS          int
	UnparsableDate int
	BeforeCutoff   int
}

// IsUSVictim reports whether the record's country, upper-cased, is one of
// the US spellings. Absent country excludes.
func IsUSVictim(r Record) bool {
	_, ok := usCountrySpellings[strings.ToUpper(r.Country)]
	return ok
}

// ReferenceDate returns the instant used to test a record against the
// cutoff: discovered, else attackdate, else the generic date field.
func ReferenceDate(r Record) (time.Time, bool) {
	s := r.Discovered
	if s == "" {
		s = r.AttackDate
	}
	if s == "" {
		s = r.Date
	}
	return ParseDate(s)
}

// sortKey is the ordering instant: discovered, else attackdate. Unlike
// ReferenceDate it does not fall back to the generic date field, so a record
// admitted via that field alone sorts last.
func sortKey(r Record) time.Time {
	s := r.Discovered
	if s == "" {
		s = r.AttackDate
	}
	if t, ok := ParseDate(s); ok {
		return t
	}
	return sortKeyMax
}

// FilterSortRecent returns the US records whose reference date is at or
// after cutoff, sorted ascending by sort key. The sort is stable: records
// with equal keys keep their input order. Excluded records are counted in
// the returned stats, never reported otherwise.
func FilterSortRecent(records []Record, cutoff time.Time) ([]Record, FilterStats) {
	var stats FilterStats
	kept := make([]Record, 0, len(records))
	for _, r := range records {
		if !IsUSVictim(r) {
			stats.NonUS++
			continue
		}
		ref, ok := ReferenceDate(r)
		if !ok {
			stats.UnparsableDate++
			continue
		}
		if ref.Before(cutoff) {
			stats.BeforeCutoff++
			continue
		}
		kept = append(kept, r)
	}

	slices.SortStableFunc(kept, func(a, b Record) int {
		return sortKey(a).Compare(sortKey(b))
	})
	return kept, stats
}
