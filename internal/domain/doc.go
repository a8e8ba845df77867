// Package domain models ransomware.live victim reports.
//
// # Data Source
//
// Records come from the ransomware.live v2 API recent-victims endpoint
// (https://api.ransomware.live/v2/recentvictims), a JSON array of objects
// describing victims recently claimed on ransomware group leak sites. The
// feed is community-maintained and loosely shaped: every field is optional,
// and a handful of fields change type between records.
//
// # Field Conventions
//
// Date strings:
//
//	The feed mixes several formats in the same response, all UTC unless an
//	explicit offset is present:
//
//	  "2025-10-13 13:17:14.652100"   space-separated with microseconds
//	  "2025-10-13T13:17:14"          ISO 8601 without offset
//	  "2025-10-13T13:17:14Z"         ISO 8601 with Zulu suffix
//	  "2025-10-13"                   date only
//
//	[ParseDate] tries an ordered list of layouts and reports failure rather
//	than returning an error; records with unparsable dates are dropped by
//	the filter, never surfaced.
//
// Country:
//
//	Free-text. US victims appear as "US", "USA", or "United States" in
//	varying case. [FilterSortRecent] matches all three, case-insensitively.
//
// press:
//
//	Absent, null, a single string, or a list of URL strings depending on the
//	record. Flattened to a "|"-joined string; non-string list elements are
//	dropped.
//
// duplicates:
//
//	A list of references to duplicate postings of the same victim. Only its
//	length survives flattening.
//
// # Reference Date
//
// A record's eligibility against the cutoff is tested on its reference date:
// discovered, else attackdate, else the generic date field. The sort key uses
// only discovered/attackdate. The asymmetry matches upstream behavior: a
// record admitted via the generic date field alone sorts to the end.
//
// # ID Derivation
//
// The export id_base64 is the last path segment of the record's detail URL
// (the leak-site posting ID, base64 upstream), empty when the URL is absent.
package domain
